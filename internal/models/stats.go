package models

// UserProfile is the subset of the catalog's public profile this system
// consumes.
type UserProfile struct {
	Username string `json:"username"`
	RealName string `json:"real_name,omitempty"`
	Ranking  int    `json:"ranking,omitempty"`
}

// SubmissionStats is a user's accepted-submission counts from the catalog,
// keyed by canonical difficulty.
type SubmissionStats struct {
	Profile  UserProfile        `json:"profile"`
	Accepted map[Difficulty]int `json:"accepted"`
}

// UserStats combines a user's own accepted counts with the catalog-wide
// per-difficulty totals, so a client can render "solved X of Y".
type UserStats struct {
	Profile       UserProfile        `json:"profile"`
	SubmitStats   map[Difficulty]int `json:"submitStats"`
	TotalProblems map[Difficulty]int `json:"totalProblems"`
}
