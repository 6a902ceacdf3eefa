package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/nikharmsingh/leetcode-scraper/internal/apperrors"
	"github.com/nikharmsingh/leetcode-scraper/internal/leetcode"
	"github.com/nikharmsingh/leetcode-scraper/internal/logger"
	"github.com/nikharmsingh/leetcode-scraper/internal/middlewares"
	"github.com/nikharmsingh/leetcode-scraper/internal/models"
	"github.com/nikharmsingh/leetcode-scraper/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProblemHandler struct {
	problems     *services.ProblemService
	tokenService *services.TokenService
}

func NewProblemHandler(problems *services.ProblemService, tokenService *services.TokenService) *ProblemHandler {
	return &ProblemHandler{
		problems:     problems,
		tokenService: tokenService,
	}
}

// sessionFromRequest picks up the caller's own catalog-site session, if they
// forwarded one. The session stays a per-request value all the way down.
func sessionFromRequest(c *gin.Context) leetcode.Session {
	return leetcode.Session{
		SessionToken: c.GetHeader("X-Leetcode-Session"),
		CSRFToken:    c.GetHeader("X-Leetcode-Csrf"),
	}
}

func renderError(c *gin.Context, err error) {
	c.JSON(apperrors.StatusCode(err), gin.H{
		"status":  "error",
		"message": err.Error(),
	})
}

// GetProblems returns one page of the catalog with the requesting user's
// solved flags merged in.
func (h *ProblemHandler) GetProblems(c *gin.Context) {
	page, err := intQuery(c, "page", 1)
	if err != nil {
		renderError(c, err)
		return
	}
	perPage, err := intQuery(c, "per_page", 50)
	if err != nil {
		renderError(c, err)
		return
	}

	params := services.ListParams{
		Page:       page,
		PerPage:    perPage,
		Search:     c.Query("search"),
		Difficulty: c.DefaultQuery("difficulty", "all"),
		Session:    sessionFromRequest(c),
	}
	if userID, ok := middlewares.UserIDFromContext(c); ok {
		params.UserID = &userID
	}

	result, err := h.problems.ListProblems(c.Request.Context(), params)
	if err != nil {
		logger.Log.Error("Failed to list problems",
			zap.Int("page", page),
			zap.Int("per_page", perPage),
			zap.Error(err))
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"problems":     result.Problems,
		"total":        result.Total,
		"current_page": result.CurrentPage,
		"total_pages":  result.TotalPages,
		"per_page":     result.PerPage,
	})
}

// ToggleSolved records the authenticated user's solved flag for a problem.
func (h *ProblemHandler) ToggleSolved(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Authorization required"})
		return
	}

	var req models.ToggleSolvedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	if err := h.problems.ToggleSolved(c.Request.Context(), userID, &req); err != nil {
		logger.Log.Error("Failed to toggle solved flag",
			zap.Int("user_id", userID),
			zap.String("problem_id", req.ProblemID),
			zap.Error(err))
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// GetProblemCounts returns the catalog's aggregate per-difficulty totals.
func (h *ProblemHandler) GetProblemCounts(c *gin.Context) {
	counts, err := h.problems.AggregateCounts(c.Request.Context(), sessionFromRequest(c))
	if err != nil {
		logger.Log.Error("Failed to get problem counts", zap.Error(err))
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"total":        counts.All,
			"byDifficulty": counts.ByDifficulty(),
		},
	})
}

func intQuery(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", apperrors.ErrInvalidArgument, name)
	}
	return n, nil
}

// RegisterRoutes registers the problem handler routes.
func (h *ProblemHandler) RegisterRoutes(router *gin.Engine) {
	problemGroup := router.Group("/problems")
	{
		problemGroup.GET("", middlewares.OptionalAuthMiddleware(h.tokenService), h.GetProblems)
		problemGroup.GET("/counts", h.GetProblemCounts)
		problemGroup.POST("/solved", middlewares.AuthMiddleware(h.tokenService), h.ToggleSolved)
	}
}
