package throttle

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/randalmurphal/throttlekit/tokens"
)

// DefaultTokensPerMinute is the default TPM limit, matching a common
// entry-tier Claude API key.
const DefaultTokensPerMinute = 30_000

// DefaultMargin is the default safety factor applied to the TPM limit.
// Budgeting to 85% of the nominal limit leaves headroom for estimation
// error and concurrent traffic on the same key.
const DefaultMargin = 0.85

// DefaultSubAgentFraction is the share of a total TPM limit a sub-agent
// may use by default.
const DefaultSubAgentFraction = 0.5

// Window is the rolling interval over which token consumption accumulates.
const Window = time.Minute

// ResetBuffer is added to window waits to tolerate clock and scheduler
// skew, so the next window has genuinely started when the caller resumes.
const ResetBuffer = 500 * time.Millisecond

// Throttle tracks token usage within a rolling one-minute window and
// blocks callers that would exceed the budget until the window resets.
//
// The configuration is fixed once the throttle is in use: the WithX
// methods are for construction-time chaining only. The window state is
// guarded by a mutex, so a single Throttle may be shared across
// goroutines; the lock is never held while waiting.
type Throttle struct {
	tpm           int
	margin        float64
	budgetCap     int
	chunkSize     int
	chunkSizeSet  bool
	charsPerToken float64
	strict        bool
	counter       tokens.Counter
	clock         Clock

	budget int

	mu          sync.Mutex
	used        int
	windowStart time.Time
}

// New creates a throttle for the given tokens-per-minute limit.
// If tokensPerMinute is <= 0, DefaultTokensPerMinute is used.
//
//	th := throttle.New(30_000).WithMargin(0.9).WithStrict(true)
func New(tokensPerMinute int) *Throttle {
	if tokensPerMinute <= 0 {
		tokensPerMinute = DefaultTokensPerMinute
	}
	t := &Throttle{
		tpm:           tokensPerMinute,
		margin:        DefaultMargin,
		charsPerToken: tokens.DefaultCharsPerToken,
		counter:       tokens.NewEstimatingCounter(),
		clock:         realClock{},
	}
	t.derive()
	t.windowStart = t.clock.Now()
	return t
}

// NewSubAgent creates a throttle pre-configured for sub-agent use: its
// effective budget is capped to a fraction of the total TPM limit, so a
// sub-agent cannot starve the main session sharing the same API key.
// If totalTPM is <= 0, DefaultTokensPerMinute is used; if fraction is
// outside (0, 1], DefaultSubAgentFraction is used.
//
//	th := throttle.NewSubAgent(30_000, 0)   // 15K TPM ceiling
//	th := throttle.NewSubAgent(30_000, 0.4) // 12K TPM ceiling
func NewSubAgent(totalTPM int, fraction float64) *Throttle {
	if fraction <= 0 || fraction > 1 {
		fraction = DefaultSubAgentFraction
	}
	return New(totalTPM).WithMargin(fraction)
}

// WithMargin sets the safety factor applied to the TPM limit.
// Values outside (0, 1] are ignored.
func (t *Throttle) WithMargin(margin float64) *Throttle {
	if margin > 0 && margin <= 1 {
		t.margin = margin
		t.derive()
	}
	return t
}

// WithBudgetCap sets a hard cap on the effective per-window budget,
// applied as min(cap, tpm*margin). Useful when several agents share one
// key and each must stay under an absolute ceiling. A cap <= 0 removes it.
func (t *Throttle) WithBudgetCap(limit int) *Throttle {
	if limit < 0 {
		limit = 0
	}
	t.budgetCap = limit
	t.derive()
	return t
}

// WithChunkSize sets the maximum tokens per chunk yielded by Consume.
// Defaults to the effective budget. Values <= 0 restore the default.
func (t *Throttle) WithChunkSize(size int) *Throttle {
	if size > 0 {
		t.chunkSize = size
		t.chunkSizeSet = true
	} else {
		t.chunkSizeSet = false
	}
	t.derive()
	return t
}

// WithCharsPerToken sets the character-to-token ratio used for estimation
// and chunk sizing. Values <= 0 are ignored.
func (t *Throttle) WithCharsPerToken(ratio float64) *Throttle {
	if ratio > 0 {
		t.charsPerToken = ratio
		t.counter = tokens.NewEstimatingCounterWithRatio(ratio)
	}
	return t
}

// WithCounter sets a custom token counter for Estimate and Consume.
// Chunk character limits are still derived from the chars-per-token
// ratio, which the counter does not change.
func (t *Throttle) WithCounter(counter tokens.Counter) *Throttle {
	if counter != nil {
		t.counter = counter
	}
	return t
}

// WithStrict controls strict mode. When strict, a single request larger
// than the effective budget fails with a BudgetExceededError instead of
// waiting for a window that can never fit it.
func (t *Throttle) WithStrict(strict bool) *Throttle {
	t.strict = strict
	return t
}

// WithClock sets a custom clock and restarts the window on it.
// Intended for tests.
func (t *Throttle) WithClock(clock Clock) *Throttle {
	if clock != nil {
		t.clock = clock
		t.mu.Lock()
		t.used = 0
		t.windowStart = clock.Now()
		t.mu.Unlock()
	}
	return t
}

// derive recomputes the effective budget and the dependent chunk size.
func (t *Throttle) derive() {
	budget := int(float64(t.tpm) * t.margin)
	if t.budgetCap > 0 && t.budgetCap < budget {
		budget = t.budgetCap
	}
	if budget < 1 {
		budget = 1
	}
	t.budget = budget
	if !t.chunkSizeSet {
		t.chunkSize = budget
	}
}

// Estimate estimates the token count of text. Non-empty text always
// estimates to at least one token.
func (t *Throttle) Estimate(text string) int {
	n := t.counter.Count(text)
	if n < 1 {
		return 1
	}
	return n
}

// Wait reserves tokenCount tokens from the current window, blocking until
// the next window when the budget is exhausted. It returns the duration
// actually waited, zero when the request was admitted immediately.
//
// In strict mode, a request larger than the effective budget fails with a
// *BudgetExceededError without mutating the window. In non-strict mode
// such a request is admitted after the wait and charged in full, briefly
// pushing usage past the budget for that window; the overshoot is bounded
// by a single request.
//
// Cancelling the context aborts the wait without charging the request.
func (t *Throttle) Wait(ctx context.Context, tokenCount int) (time.Duration, error) {
	if t.strict && tokenCount > t.budget {
		return 0, &BudgetExceededError{Requested: tokenCount, Budget: t.budget}
	}

	t.mu.Lock()
	now := t.clock.Now()
	if now.Sub(t.windowStart) >= Window {
		t.used = 0
		t.windowStart = now
	}

	if t.used+tokenCount <= t.budget {
		t.used += tokenCount
		t.mu.Unlock()
		return 0, nil
	}

	wait := Window - now.Sub(t.windowStart) + ResetBuffer
	if wait < 0 {
		wait = 0
	}
	t.mu.Unlock()

	// Sleep outside the lock so concurrent readers are not blocked.
	if err := t.clock.Sleep(ctx, wait); err != nil {
		return 0, err
	}

	// The granted request becomes the first charge of the fresh window.
	t.mu.Lock()
	t.used = tokenCount
	t.windowStart = t.clock.Now()
	t.mu.Unlock()

	return wait, nil
}

// Remaining returns the tokens left in the current window, rolling the
// window first if it has expired.
func (t *Throttle) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	if now.Sub(t.windowStart) >= Window {
		t.used = 0
		t.windowStart = now
	}

	remaining := t.budget - t.used
	if remaining < 0 {
		return 0
	}
	return remaining
}

// UntilReset returns the time until the current window resets. It is a
// read-only probe and does not roll the window.
func (t *Throttle) UntilReset() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	left := Window - t.clock.Now().Sub(t.windowStart)
	if left < 0 {
		return 0
	}
	return left
}

// Reset clears the usage window. For manual recovery or testing.
func (t *Throttle) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.used = 0
	t.windowStart = t.clock.Now()
}

// TokensPerMinute returns the configured TPM limit.
func (t *Throttle) TokensPerMinute() int { return t.tpm }

// Budget returns the effective per-window token budget.
func (t *Throttle) Budget() int { return t.budget }

// ChunkSize returns the maximum tokens per chunk yielded by Consume.
func (t *Throttle) ChunkSize() int { return t.chunkSize }

// Used returns the tokens consumed in the current window without rolling it.
func (t *Throttle) Used() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.used
}

// Strict reports whether strict mode is enabled.
func (t *Throttle) Strict() bool { return t.strict }

// String summarizes the throttle state for logging and debugging.
func (t *Throttle) String() string {
	return fmt.Sprintf("Throttle(tpm=%d, budget=%d, used=%d, remaining=%d, strict=%v)",
		t.tpm, t.budget, t.Used(), t.Remaining(), t.strict)
}
