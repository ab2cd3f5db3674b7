package model

import (
	"sync"
	"time"
)

// Usage tracks throttled token consumption for a model.
type Usage struct {
	Tokens   int           // Total tokens admitted
	Requests int           // Total admissions
	Waits    int           // Admissions that had to wait for a window
	WaitTime time.Duration // Total time spent waiting
}

// Add adds the given usage to this usage.
func (u *Usage) Add(other Usage) {
	u.Tokens += other.Tokens
	u.Requests += other.Requests
	u.Waits += other.Waits
	u.WaitTime += other.WaitTime
}

// UsageTracker aggregates throttle activity across models. It is safe
// for concurrent use.
type UsageTracker struct {
	mu     sync.RWMutex
	totals map[ModelName]Usage
}

// NewUsageTracker creates a new usage tracker.
func NewUsageTracker() *UsageTracker {
	return &UsageTracker{
		totals: make(map[ModelName]Usage),
	}
}

// Record adds one admission for the given model: the tokens charged and
// how long the admission waited (zero for the fast path).
func (t *UsageTracker) Record(model ModelName, tokens int, waited time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	u := t.totals[model]
	u.Tokens += tokens
	u.Requests++
	if waited > 0 {
		u.Waits++
		u.WaitTime += waited
	}
	t.totals[model] = u
}

// Usage returns the usage for a specific model.
func (t *UsageTracker) Usage(model ModelName) Usage {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.totals[model]
}

// Summary returns a copy of all usage totals.
func (t *UsageTracker) Summary() map[ModelName]Usage {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make(map[ModelName]Usage, len(t.totals))
	for k, v := range t.totals {
		result[k] = v
	}
	return result
}

// Total returns aggregated usage across all models.
func (t *UsageTracker) Total() Usage {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var total Usage
	for _, u := range t.totals {
		total.Add(u)
	}
	return total
}

// Reset clears all tracked usage.
func (t *UsageTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.totals = make(map[ModelName]Usage)
}
