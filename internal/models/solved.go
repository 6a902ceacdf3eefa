package models

import (
	"errors"
	"strings"
	"time"
)

// SolvedRecord tracks whether a user marked a catalog problem as solved.
// (user_id, problem_id) is the unique key; rows are upserted in place and
// never deleted, un-solving just flips the flag off.
type SolvedRecord struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	ProblemID string    `db:"problem_id"`
	Solved    bool      `db:"solved"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type ToggleSolvedRequest struct {
	ProblemID string `json:"problem_id" binding:"required"`
	Solved    bool   `json:"solved"`
}

func (r *ToggleSolvedRequest) Validate() error {
	if strings.TrimSpace(r.ProblemID) == "" {
		return errors.New("problem_id cannot be empty")
	}
	return nil
}
