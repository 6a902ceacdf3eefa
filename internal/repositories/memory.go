package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/nikharmsingh/leetcode-scraper/internal/models"
)

// MemorySolvedStore is an in-memory SolvedStore with the same upsert
// semantics as the MySQL store. Used by tests and useful for running the
// server without a database.
type MemorySolvedStore struct {
	mu      sync.RWMutex
	records map[int]map[string]*models.SolvedRecord
}

func NewMemorySolvedStore() *MemorySolvedStore {
	return &MemorySolvedStore{records: make(map[int]map[string]*models.SolvedRecord)}
}

func (s *MemorySolvedStore) UpsertSolved(ctx context.Context, userID int, problemID string, solved bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byProblem, ok := s.records[userID]
	if !ok {
		byProblem = make(map[string]*models.SolvedRecord)
		s.records[userID] = byProblem
	}

	now := time.Now().UTC()
	if rec, ok := byProblem[problemID]; ok {
		rec.Solved = solved
		rec.UpdatedAt = now
		return nil
	}
	byProblem[problemID] = &models.SolvedRecord{
		UserID:    userID,
		ProblemID: problemID,
		Solved:    solved,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return nil
}

func (s *MemorySolvedStore) ListSolvedIDs(ctx context.Context, userID int) (map[string]bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	solved := make(map[string]bool)
	for id, rec := range s.records[userID] {
		if rec.Solved {
			solved[id] = true
		}
	}
	return solved, nil
}

// Record returns the stored record for a key, or nil. Test helper.
func (s *MemorySolvedStore) Record(userID int, problemID string) *models.SolvedRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rec, ok := s.records[userID][problemID]; ok {
		copied := *rec
		return &copied
	}
	return nil
}
