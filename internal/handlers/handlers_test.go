package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/nikharmsingh/leetcode-scraper/internal/apperrors"
	"github.com/nikharmsingh/leetcode-scraper/internal/leetcode"
	"github.com/nikharmsingh/leetcode-scraper/internal/logger"
	"github.com/nikharmsingh/leetcode-scraper/internal/models"
	"github.com/nikharmsingh/leetcode-scraper/internal/repositories"
	"github.com/nikharmsingh/leetcode-scraper/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.InitNopLogger()
	os.Exit(m.Run())
}

type fakeCatalog struct {
	problems  []models.ProblemSummary
	total     int
	pageErr   error
	counts    models.DifficultyCounts
	countsErr error
	stats     models.SubmissionStats
	statsErr  error
}

func (f *fakeCatalog) FetchPage(ctx context.Context, sess leetcode.Session, skip, limit int, filters leetcode.Filters) ([]models.ProblemSummary, int, error) {
	if f.pageErr != nil {
		return nil, 0, f.pageErr
	}
	return f.problems, f.total, nil
}

func (f *fakeCatalog) FetchAggregateCounts(ctx context.Context, sess leetcode.Session) (models.DifficultyCounts, error) {
	if f.countsErr != nil {
		return models.DifficultyCounts{}, f.countsErr
	}
	return f.counts, nil
}

func (f *fakeCatalog) FetchUserStats(ctx context.Context, sess leetcode.Session, username string) (models.SubmissionStats, error) {
	if f.statsErr != nil {
		return models.SubmissionStats{}, f.statsErr
	}
	return f.stats, nil
}

type testEnv struct {
	router *gin.Engine
	store  *repositories.MemorySolvedStore
	tokens *services.TokenService
}

func newTestEnv(t *testing.T, catalog *fakeCatalog) *testEnv {
	t.Helper()
	store := repositories.NewMemorySolvedStore()
	tokens := services.NewTokenService("test-secret")
	problems := services.NewProblemService(catalog, store, nil, 0)
	stats := services.NewStatsService(catalog)

	router := gin.New()
	NewProblemHandler(problems, tokens).RegisterRoutes(router)
	NewStatsHandler(stats).RegisterRoutes(router)
	return &testEnv{router: router, store: store, tokens: tokens}
}

func (e *testEnv) do(t *testing.T, method, target, body string, userID int) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID > 0 {
		access, _, err := e.tokens.GenerateTokens(userID, "tester")
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: access})
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func catalogWith(ids ...string) *fakeCatalog {
	problems := make([]models.ProblemSummary, 0, len(ids))
	for _, id := range ids {
		problems = append(problems, models.ProblemSummary{
			ID:         id,
			Title:      "Problem " + id,
			Difficulty: models.DifficultyEasy,
		})
	}
	return &fakeCatalog{problems: problems, total: len(problems)}
}

func TestGetProblemsAnonymous(t *testing.T) {
	env := newTestEnv(t, catalogWith("1", "2"))
	require.NoError(t, env.store.UpsertSolved(context.Background(), 7, "1", true))

	w := env.do(t, http.MethodGet, "/problems", "", 0)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, float64(2), body["total"])
	assert.Equal(t, float64(1), body["current_page"])
	assert.Equal(t, float64(1), body["total_pages"])
	assert.Equal(t, float64(50), body["per_page"])

	for _, p := range body["problems"].([]any) {
		assert.False(t, p.(map[string]any)["solved"].(bool))
	}
}

func TestGetProblemsAuthenticatedSolvedOverlay(t *testing.T) {
	env := newTestEnv(t, catalogWith("1", "2"))
	require.NoError(t, env.store.UpsertSolved(context.Background(), 7, "2", true))

	w := env.do(t, http.MethodGet, "/problems", "", 7)
	require.Equal(t, http.StatusOK, w.Code)

	problems := decode(t, w)["problems"].([]any)
	assert.False(t, problems[0].(map[string]any)["solved"].(bool))
	assert.True(t, problems[1].(map[string]any)["solved"].(bool))
}

func TestGetProblemsBadPagination(t *testing.T) {
	env := newTestEnv(t, catalogWith())

	for _, target := range []string{
		"/problems?page=0",
		"/problems?page=abc",
		"/problems?per_page=0",
		"/problems?per_page=xyz",
	} {
		w := env.do(t, http.MethodGet, target, "", 0)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		body := decode(t, w)
		assert.Equal(t, "error", body["status"])
		assert.NotEmpty(t, body["message"])
	}
}

func TestGetProblemsUpstreamFailure(t *testing.T) {
	env := newTestEnv(t, &fakeCatalog{pageErr: apperrors.ErrUpstream})

	w := env.do(t, http.MethodGet, "/problems", "", 0)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "error", decode(t, w)["status"])
}

func TestToggleSolvedRequiresAuth(t *testing.T) {
	env := newTestEnv(t, catalogWith())

	w := env.do(t, http.MethodPost, "/problems/solved", `{"problem_id":"42","solved":true}`, 0)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "error", decode(t, w)["status"])
}

func TestToggleSolvedRoundTrip(t *testing.T) {
	env := newTestEnv(t, catalogWith())

	w := env.do(t, http.MethodPost, "/problems/solved", `{"problem_id":"42","solved":true}`, 7)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", decode(t, w)["status"])

	ids, err := env.store.ListSolvedIDs(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, ids["42"])

	w = env.do(t, http.MethodPost, "/problems/solved", `{"problem_id":"42","solved":false}`, 7)
	require.Equal(t, http.StatusOK, w.Code)

	ids, err = env.store.ListSolvedIDs(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, ids["42"])
}

func TestToggleSolvedBadBody(t *testing.T) {
	env := newTestEnv(t, catalogWith())

	w := env.do(t, http.MethodPost, "/problems/solved", `{"solved":true}`, 7)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProblemCounts(t *testing.T) {
	env := newTestEnv(t, &fakeCatalog{counts: models.DifficultyCounts{All: 10, Easy: 5, Medium: 3, Hard: 2}})

	w := env.do(t, http.MethodGet, "/problems/counts", "", 0)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "success", body["status"])
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(10), data["total"])
	by := data["byDifficulty"].(map[string]any)
	assert.Equal(t, float64(5), by["Easy"])
	assert.Equal(t, float64(3), by["Medium"])
	assert.Equal(t, float64(2), by["Hard"])
}

func TestGetUserStats(t *testing.T) {
	env := newTestEnv(t, &fakeCatalog{
		stats: models.SubmissionStats{
			Profile:  models.UserProfile{Username: "alice"},
			Accepted: map[models.Difficulty]int{models.DifficultyEasy: 80},
		},
		counts: models.DifficultyCounts{All: 3657, Easy: 885, Medium: 1880, Hard: 892},
	})

	w := env.do(t, http.MethodGet, "/users/alice/stats", "", 0)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "success", body["status"])
	data := body["data"].(map[string]any)
	profile := data["profile"].(map[string]any)
	assert.Equal(t, "alice", profile["username"])
	assert.Equal(t, float64(80), data["submitStats"].(map[string]any)["Easy"])
	assert.Equal(t, float64(885), data["totalProblems"].(map[string]any)["Easy"])
}

func TestGetUserStatsNotFound(t *testing.T) {
	env := newTestEnv(t, &fakeCatalog{statsErr: apperrors.ErrNotFound})

	w := env.do(t, http.MethodGet, "/users/nonexistent_user/stats", "", 0)
	require.Equal(t, http.StatusNotFound, w.Code)

	body := decode(t, w)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "User not found", body["message"])
}

func TestGetUserStatsUpstreamFailure(t *testing.T) {
	env := newTestEnv(t, &fakeCatalog{statsErr: apperrors.ErrUpstream})

	w := env.do(t, http.MethodGet, "/users/alice/stats", "", 0)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "error", decode(t, w)["status"])
}
