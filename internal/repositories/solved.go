package repositories

import (
	"context"
	"fmt"

	"github.com/nikharmsingh/leetcode-scraper/internal/apperrors"

	"github.com/jmoiron/sqlx"
)

// SolvedStore persists the per-(user, problem) solved flag.
type SolvedStore interface {
	// UpsertSolved records the flag with last-write-wins semantics. The
	// upsert is a single atomic statement, so concurrent toggles for the
	// same key serialize in the database, not in application code.
	UpsertSolved(ctx context.Context, userID int, problemID string, solved bool) error
	// ListSolvedIDs returns the IDs of problems the user currently has
	// marked solved. A user with no records gets an empty set.
	ListSolvedIDs(ctx context.Context, userID int) (map[string]bool, error)
}

type solvedStore struct {
	db *sqlx.DB
}

func NewSolvedStore(db *sqlx.DB) SolvedStore {
	return &solvedStore{db: db}
}

func (s *solvedStore) UpsertSolved(ctx context.Context, userID int, problemID string, solved bool) error {
	query := `INSERT INTO solved_problems (user_id, problem_id, solved)
              VALUES (?, ?, ?)
              ON DUPLICATE KEY UPDATE solved = VALUES(solved), updated_at = CURRENT_TIMESTAMP`

	if _, err := s.db.ExecContext(ctx, query, userID, problemID, solved); err != nil {
		return fmt.Errorf("%w: failed to upsert solved flag: %v", apperrors.ErrStorage, err)
	}
	return nil
}

func (s *solvedStore) ListSolvedIDs(ctx context.Context, userID int) (map[string]bool, error) {
	query := `SELECT problem_id FROM solved_problems WHERE user_id = ? AND solved = 1`

	var problemIDs []string
	if err := s.db.SelectContext(ctx, &problemIDs, query, userID); err != nil {
		return nil, fmt.Errorf("%w: failed to list solved problem IDs: %v", apperrors.ErrStorage, err)
	}

	solved := make(map[string]bool, len(problemIDs))
	for _, id := range problemIDs {
		solved[id] = true
	}
	return solved, nil
}
