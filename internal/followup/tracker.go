package followup

import "context"

// Store persists follow-up tracking records. Implementations must make
// Record atomic with respect to the cap: two concurrent Record calls for
// the same scope must never push the scope total past MaxFollowUps.
type Store interface {
	// ScopeTotal sums followUpCount across all records in the scope.
	ScopeTotal(ctx context.Context, scope Scope) (int, error)
	// Record increments the count for (scope, baseQuestion), creating the
	// record with count 1 on first use. Returns *BudgetExceededError when
	// the scope total is already at the cap.
	Record(ctx context.Context, scope Scope, baseQuestion string) error
	// Close releases any resources held by the store.
	Close()
}

// Tracker enforces the follow-up budget on top of a Store. Records are
// never deleted here; their lifecycle is managed externally.
type Tracker struct {
	store Store
}

// NewTracker creates a Tracker backed by the given store.
func NewTracker(store Store) *Tracker {
	return &Tracker{store: store}
}

// Check returns *BudgetExceededError when the scope has already used its
// full follow-up budget. The authoritative enforcement happens again inside
// Record; this pre-check exists so callers can fail before paying for an
// external completion call.
func (t *Tracker) Check(ctx context.Context, scope Scope) error {
	total, err := t.store.ScopeTotal(ctx, scope)
	if err != nil {
		return err
	}
	if total >= MaxFollowUps {
		return &BudgetExceededError{Scope: scope}
	}
	return nil
}

// Record charges one follow-up against the scope's budget for the given
// base question.
func (t *Tracker) Record(ctx context.Context, scope Scope, baseQuestion string) error {
	return t.store.Record(ctx, scope, baseQuestion)
}
