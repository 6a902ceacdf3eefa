package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/nikharmsingh/leetcode-scraper/internal/apperrors"
	"github.com/nikharmsingh/leetcode-scraper/internal/logger"
	"github.com/nikharmsingh/leetcode-scraper/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StatsHandler struct {
	stats *services.StatsService
}

func NewStatsHandler(stats *services.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// GetUserStats returns a catalog user's accepted-submission counts alongside
// the catalog-wide per-difficulty totals.
func (h *StatsHandler) GetUserStats(c *gin.Context) {
	username := strings.TrimSpace(c.Param("username"))
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "username is required"})
		return
	}

	stats, err := h.stats.GetUserStats(c.Request.Context(), sessionFromRequest(c), username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "User not found"})
			return
		}
		logger.Log.Error("Failed to get user stats",
			zap.String("username", username),
			zap.Error(err))
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"profile":       stats.Profile,
			"submitStats":   stats.SubmitStats,
			"totalProblems": stats.TotalProblems,
		},
	})
}

// RegisterRoutes registers the stats handler routes.
func (h *StatsHandler) RegisterRoutes(router *gin.Engine) {
	userGroup := router.Group("/users")
	{
		userGroup.GET("/:username/stats", h.GetUserStats)
	}
}
