package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nikharmsingh/leetcode-scraper/internal/apperrors"
	"github.com/nikharmsingh/leetcode-scraper/internal/leetcode"
	"github.com/nikharmsingh/leetcode-scraper/internal/logger"
	"github.com/nikharmsingh/leetcode-scraper/internal/models"
	"github.com/nikharmsingh/leetcode-scraper/internal/repositories"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Catalog is the slice of the external catalog client the services consume.
type Catalog interface {
	FetchPage(ctx context.Context, sess leetcode.Session, skip, limit int, filters leetcode.Filters) ([]models.ProblemSummary, int, error)
	FetchAggregateCounts(ctx context.Context, sess leetcode.Session) (models.DifficultyCounts, error)
	FetchUserStats(ctx context.Context, sess leetcode.Session, username string) (models.SubmissionStats, error)
}

// ListParams are the validated-on-entry inputs of a listing request.
// Difficulty accepts any casing of easy/medium/hard, or "all"/empty for
// unfiltered. A nil UserID means an anonymous request.
type ListParams struct {
	Page       int
	PerPage    int
	Search     string
	Difficulty string
	UserID     *int
	Session    leetcode.Session
}

// ProblemService assembles catalog pages with per-user solved state.
type ProblemService struct {
	catalog  Catalog
	solved   repositories.SolvedStore
	cache    Cache
	cacheTTL time.Duration
}

func NewProblemService(catalog Catalog, solved repositories.SolvedStore, cache Cache, ttl time.Duration) *ProblemService {
	return &ProblemService{catalog: catalog, solved: solved, cache: cache, cacheTTL: ttl}
}

// ListProblems fetches one catalog page and overlays the requesting user's
// solved flags. Out-of-range pagination is rejected, never clamped. The
// upstream total drives the pagination math even though paid-only items are
// dropped post-fetch, so a page can be shorter than per_page while more pages
// remain; correcting for that would need a second unfiltered count per
// request and still drift on upstream recounts.
func (s *ProblemService) ListProblems(ctx context.Context, params ListParams) (*models.ProblemPage, error) {
	if params.Page < 1 {
		return nil, fmt.Errorf("%w: page must be >= 1", apperrors.ErrInvalidArgument)
	}
	if params.PerPage < 1 {
		return nil, fmt.Errorf("%w: per_page must be >= 1", apperrors.ErrInvalidArgument)
	}

	filters := leetcode.Filters{Search: params.Search}
	switch diff := strings.TrimSpace(params.Difficulty); {
	case diff == "" || strings.EqualFold(diff, "all"):
		// unfiltered
	case models.IsKnownDifficulty(diff):
		filters.Difficulty = models.NormalizeDifficulty(diff)
	default:
		return nil, fmt.Errorf("%w: unknown difficulty %q", apperrors.ErrInvalidArgument, params.Difficulty)
	}

	anonymous := params.UserID == nil
	cacheKey := fmt.Sprintf("problems:page=%d:per=%d:q=%s:diff=%s",
		params.Page, params.PerPage, params.Search, filters.Difficulty)

	if anonymous && s.cache != nil {
		var cached models.ProblemPage
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	skip := (params.Page - 1) * params.PerPage

	var (
		problems  []models.ProblemSummary
		total     int
		solvedIDs map[string]bool
	)

	// Catalog fetch and solved lookup are independent; run both and join.
	// Either failure aborts the whole response, a page is never returned
	// with the solved overlay silently missing.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		problems, total, err = s.catalog.FetchPage(gctx, params.Session, skip, params.PerPage, filters)
		return err
	})
	if !anonymous {
		userID := *params.UserID
		g.Go(func() error {
			var err error
			solvedIDs, err = s.solved.ListSolvedIDs(gctx, userID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range problems {
		problems[i].Solved = solvedIDs[problems[i].ID]
	}
	if problems == nil {
		problems = []models.ProblemSummary{}
	}

	page := &models.ProblemPage{
		Problems:    problems,
		Total:       total,
		CurrentPage: params.Page,
		TotalPages:  (total + params.PerPage - 1) / params.PerPage,
		PerPage:     params.PerPage,
	}

	if anonymous && s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, page, s.cacheTTL); err != nil {
			logger.Log.Warn("Failed to cache problem page", zap.String("key", cacheKey), zap.Error(err))
		}
	}
	return page, nil
}

// ToggleSolved records the user's solved flag for a problem.
func (s *ProblemService) ToggleSolved(ctx context.Context, userID int, req *models.ToggleSolvedRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err)
	}
	return s.solved.UpsertSolved(ctx, userID, req.ProblemID, req.Solved)
}

// AggregateCounts returns the catalog's total and per-difficulty counts,
// served through the cache when possible.
func (s *ProblemService) AggregateCounts(ctx context.Context, sess leetcode.Session) (models.DifficultyCounts, error) {
	const cacheKey = "problems:counts"

	if s.cache != nil {
		var cached models.DifficultyCounts
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	counts, err := s.catalog.FetchAggregateCounts(ctx, sess)
	if err != nil {
		return models.DifficultyCounts{}, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, counts, s.cacheTTL); err != nil {
			logger.Log.Warn("Failed to cache aggregate counts", zap.Error(err))
		}
	}
	return counts, nil
}
