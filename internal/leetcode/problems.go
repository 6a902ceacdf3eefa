package leetcode

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/nikharmsingh/leetcode-scraper/internal/apperrors"
	"github.com/nikharmsingh/leetcode-scraper/internal/models"
)

const problemListQuery = `
query problemsetQuestionList($categorySlug: String, $limit: Int, $skip: Int, $filters: QuestionListFilterInput) {
    problemsetQuestionList: questionList(
        categorySlug: $categorySlug
        limit: $limit
        skip: $skip
        filters: $filters
    ) {
        total: totalNum
        questions: data {
            questionId
            title
            titleSlug
            difficulty
            acRate
            paidOnly: isPaidOnly
        }
    }
}`

// Filters narrows a page fetch. Difficulty is a canonical label
// (Easy/Medium/Hard); empty means unfiltered.
type Filters struct {
	Search     string
	Difficulty models.Difficulty
}

type rawQuestion struct {
	QuestionID *string  `json:"questionId"`
	Title      *string  `json:"title"`
	TitleSlug  *string  `json:"titleSlug"`
	Difficulty *string  `json:"difficulty"`
	AcRate     *float64 `json:"acRate"`
	PaidOnly   bool     `json:"paidOnly"`
}

type problemListData struct {
	ProblemsetQuestionList *struct {
		Total     *int          `json:"total"`
		Questions []rawQuestion `json:"questions"`
	} `json:"problemsetQuestionList"`
}

// FetchPage fetches one page of problem summaries plus the upstream total.
// Paid-only items are dropped after the fetch, so a page may carry fewer than
// limit items while more pages remain; the upstream total is returned as-is
// and callers must not infer end-of-results from a short page.
func (c *Client) FetchPage(ctx context.Context, sess Session, skip, limit int, filters Filters) ([]models.ProblemSummary, int, error) {
	gqlFilters := map[string]any{
		"orderBy":   "FRONTEND_ID",
		"sortOrder": "ASCENDING",
	}
	if filters.Search != "" {
		gqlFilters["searchKeywords"] = filters.Search
	}
	if filters.Difficulty != "" {
		gqlFilters["difficulty"] = strings.ToUpper(filters.Difficulty)
	}

	variables := map[string]any{
		"categorySlug": "",
		"limit":        limit,
		"skip":         skip,
		"filters":      gqlFilters,
	}

	var data problemListData
	if err := c.query(ctx, sess, problemListQuery, variables, &data); err != nil {
		return nil, 0, err
	}

	list := data.ProblemsetQuestionList
	if list == nil || list.Total == nil {
		return nil, 0, fmt.Errorf("%w: problem list missing from response", apperrors.ErrUpstream)
	}

	problems := make([]models.ProblemSummary, 0, len(list.Questions))
	for _, q := range list.Questions {
		if q.PaidOnly {
			continue
		}
		if q.QuestionID == nil || q.Title == nil || q.TitleSlug == nil || q.Difficulty == nil || q.AcRate == nil {
			return nil, 0, fmt.Errorf("%w: question entry missing required fields", apperrors.ErrUpstream)
		}
		problems = append(problems, models.ProblemSummary{
			ID:             *q.QuestionID,
			Title:          *q.Title,
			Difficulty:     models.NormalizeDifficulty(*q.Difficulty),
			AcceptanceRate: roundRate(*q.AcRate),
			URL:            fmt.Sprintf("https://leetcode.com/problems/%s/", *q.TitleSlug),
		})
	}

	return problems, *list.Total, nil
}

// roundRate rounds to one decimal place, halves away from zero.
func roundRate(x float64) float64 {
	return math.Round(x*10) / 10
}
