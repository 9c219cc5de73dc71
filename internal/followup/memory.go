package followup

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store for tests and single-instance
// deployments without a database. A single mutex serializes check and
// increment, so the cap holds under concurrency.
type MemoryStore struct {
	mu     sync.Mutex
	counts map[string]map[string]int // scope key -> base question -> count
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{counts: make(map[string]map[string]int)}
}

// ScopeTotal sums followUpCount across all records in the scope.
func (s *MemoryStore) ScopeTotal(_ context.Context, scope Scope) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalLocked(scope), nil
}

// Record increments the count for (scope, baseQuestion), enforcing the cap
// atomically.
func (s *MemoryStore) Record(_ context.Context, scope Scope, baseQuestion string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.totalLocked(scope) >= MaxFollowUps {
		return &BudgetExceededError{Scope: scope}
	}

	byQuestion := s.counts[scope.Key()]
	if byQuestion == nil {
		byQuestion = make(map[string]int)
		s.counts[scope.Key()] = byQuestion
	}
	byQuestion[baseQuestion]++
	return nil
}

// Close is a no-op; the store holds no external resources.
func (s *MemoryStore) Close() {}

func (s *MemoryStore) totalLocked(scope Scope) int {
	total := 0
	for _, count := range s.counts[scope.Key()] {
		total += count
	}
	return total
}
