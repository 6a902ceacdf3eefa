package services

import (
	"context"

	"github.com/nikharmsingh/leetcode-scraper/internal/leetcode"
	"github.com/nikharmsingh/leetcode-scraper/internal/models"

	"golang.org/x/sync/errgroup"
)

// StatsService combines a user's accepted-submission counts with the
// catalog-wide per-difficulty totals.
type StatsService struct {
	catalog Catalog
}

func NewStatsService(catalog Catalog) *StatsService {
	return &StatsService{catalog: catalog}
}

// GetUserStats issues the user-stats and aggregate-counts queries
// concurrently and joins them by difficulty. An unknown username surfaces
// the catalog client's ErrNotFound; any other failure on either call aborts
// the response.
func (s *StatsService) GetUserStats(ctx context.Context, sess leetcode.Session, username string) (*models.UserStats, error) {
	var (
		subStats models.SubmissionStats
		counts   models.DifficultyCounts
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		subStats, err = s.catalog.FetchUserStats(gctx, sess, username)
		return err
	})
	g.Go(func() error {
		var err error
		counts, err = s.catalog.FetchAggregateCounts(gctx, sess)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &models.UserStats{
		Profile:       subStats.Profile,
		SubmitStats:   subStats.Accepted,
		TotalProblems: counts.ByDifficulty(),
	}, nil
}
