package throttle

import (
	"errors"
	"fmt"
)

// ErrBudgetExceeded indicates a single request can never fit the
// per-window budget. Raised only in strict mode; in non-strict mode the
// throttle waits for a fresh window instead.
var ErrBudgetExceeded = errors.New("request exceeds per-window token budget")

// BudgetExceededError reports a strict-mode rejection with enough detail
// for the caller to shrink the request.
type BudgetExceededError struct {
	Requested int // Tokens requested
	Budget    int // Effective per-window budget
}

// Error implements the error interface.
func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("request of %d tokens exceeds budget of %d tokens per minute", e.Requested, e.Budget)
}

// Unwrap returns ErrBudgetExceeded so callers can match with errors.Is.
func (e *BudgetExceededError) Unwrap() error {
	return ErrBudgetExceeded
}
