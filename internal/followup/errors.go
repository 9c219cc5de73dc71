package followup

import "fmt"

// BudgetExceededError indicates the follow-up cap has been reached for a
// scope. It is distinct from input validation failures so callers can
// message "limit reached" specifically.
type BudgetExceededError struct {
	Scope Scope
}

func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("follow-up limit reached for %s", e.Scope)
}

// StoreError wraps persistence failures in the tracking store.
type StoreError struct {
	Op    string
	Cause error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("follow-up store %s failed: %v", e.Op, e.Cause)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}
