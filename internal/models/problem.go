package models

import "strings"

// Difficulty is the canonical mixed-case difficulty label. The upstream
// catalog uses uppercase enum tokens (EASY/MEDIUM/HARD); everything past the
// client boundary speaks the canonical form.
type Difficulty = string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// NormalizeDifficulty maps any casing of easy/medium/hard to the canonical
// label. Unrecognized values pass through unchanged, so the function is
// idempotent for all inputs.
func NormalizeDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy
	case "medium":
		return DifficultyMedium
	case "hard":
		return DifficultyHard
	default:
		return s
	}
}

// IsKnownDifficulty reports whether s normalizes to one of the three
// canonical difficulty labels.
func IsKnownDifficulty(s string) bool {
	switch NormalizeDifficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ProblemSummary is one row of the problem listing. IDs are opaque strings:
// the catalog's numeric question IDs are never used for arithmetic, only as
// merge keys against solved records.
type ProblemSummary struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Difficulty       Difficulty `json:"difficulty"`
	AcceptanceRate   float64    `json:"acceptance_rate"`
	TotalAccepted    int        `json:"total_accepted,omitempty"`
	TotalSubmissions int        `json:"total_submissions,omitempty"`
	URL              string     `json:"url"`
	Solved           bool       `json:"solved"`
}

// ProblemPage is the assembled listing response payload.
type ProblemPage struct {
	Problems    []ProblemSummary `json:"problems"`
	Total       int              `json:"total"`
	CurrentPage int              `json:"current_page"`
	TotalPages  int              `json:"total_pages"`
	PerPage     int              `json:"per_page"`
}

// DifficultyCounts holds the catalog's own aggregate totals. These come from
// a dedicated counts query, never from summing a page (pages are partial).
type DifficultyCounts struct {
	All    int `json:"total"`
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

// ByDifficulty returns the per-difficulty totals keyed by canonical label.
func (c DifficultyCounts) ByDifficulty() map[Difficulty]int {
	return map[Difficulty]int{
		DifficultyEasy:   c.Easy,
		DifficultyMedium: c.Medium,
		DifficultyHard:   c.Hard,
	}
}
