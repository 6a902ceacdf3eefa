package leetcode

import (
	"context"
	"fmt"

	"github.com/nikharmsingh/leetcode-scraper/internal/apperrors"
	"github.com/nikharmsingh/leetcode-scraper/internal/models"
)

const aggregateCountsQuery = `
query allQuestionsCount {
    allQuestionsCount {
        difficulty
        count
    }
}`

const userStatsQuery = `
query userSubmitStats($username: String!) {
    matchedUser(username: $username) {
        username
        profile {
            realName
            ranking
        }
        submitStatsGlobal {
            acSubmissionNum {
                difficulty
                count
            }
        }
    }
}`

type difficultyCount struct {
	Difficulty *string `json:"difficulty"`
	Count      *int    `json:"count"`
}

// FetchAggregateCounts fetches the catalog's total problem count and the
// per-difficulty totals in a single round trip.
func (c *Client) FetchAggregateCounts(ctx context.Context, sess Session) (models.DifficultyCounts, error) {
	var data struct {
		AllQuestionsCount []difficultyCount `json:"allQuestionsCount"`
	}
	if err := c.query(ctx, sess, aggregateCountsQuery, nil, &data); err != nil {
		return models.DifficultyCounts{}, err
	}
	if len(data.AllQuestionsCount) == 0 {
		return models.DifficultyCounts{}, fmt.Errorf("%w: question counts missing from response", apperrors.ErrUpstream)
	}

	var counts models.DifficultyCounts
	for _, dc := range data.AllQuestionsCount {
		if dc.Difficulty == nil || dc.Count == nil {
			return models.DifficultyCounts{}, fmt.Errorf("%w: count entry missing required fields", apperrors.ErrUpstream)
		}
		switch models.NormalizeDifficulty(*dc.Difficulty) {
		case models.DifficultyEasy:
			counts.Easy = *dc.Count
		case models.DifficultyMedium:
			counts.Medium = *dc.Count
		case models.DifficultyHard:
			counts.Hard = *dc.Count
		case "All":
			counts.All = *dc.Count
		}
	}
	return counts, nil
}

// FetchUserStats fetches a user's public profile and accepted-submission
// counts. An unknown username resolves to a null matchedUser upstream and is
// reported as ErrNotFound.
func (c *Client) FetchUserStats(ctx context.Context, sess Session, username string) (models.SubmissionStats, error) {
	var data struct {
		MatchedUser *struct {
			Username string `json:"username"`
			Profile  *struct {
				RealName string `json:"realName"`
				Ranking  int    `json:"ranking"`
			} `json:"profile"`
			SubmitStatsGlobal *struct {
				AcSubmissionNum []difficultyCount `json:"acSubmissionNum"`
			} `json:"submitStatsGlobal"`
		} `json:"matchedUser"`
	}
	if err := c.query(ctx, sess, userStatsQuery, map[string]any{"username": username}, &data); err != nil {
		return models.SubmissionStats{}, err
	}

	mu := data.MatchedUser
	if mu == nil {
		return models.SubmissionStats{}, fmt.Errorf("%w: user not found", apperrors.ErrNotFound)
	}
	if mu.SubmitStatsGlobal == nil {
		return models.SubmissionStats{}, fmt.Errorf("%w: submit stats missing from response", apperrors.ErrUpstream)
	}

	stats := models.SubmissionStats{
		Profile:  models.UserProfile{Username: mu.Username},
		Accepted: make(map[models.Difficulty]int),
	}
	if mu.Profile != nil {
		stats.Profile.RealName = mu.Profile.RealName
		stats.Profile.Ranking = mu.Profile.Ranking
	}
	for _, dc := range mu.SubmitStatsGlobal.AcSubmissionNum {
		if dc.Difficulty == nil || dc.Count == nil {
			return models.SubmissionStats{}, fmt.Errorf("%w: submission count entry missing required fields", apperrors.ErrUpstream)
		}
		key := models.NormalizeDifficulty(*dc.Difficulty)
		if key == "All" {
			continue
		}
		stats.Accepted[key] = *dc.Count
	}
	return stats, nil
}
