package throttle

import (
	"context"
	"time"
)

// Clock abstracts time for the throttle so tests can drive the window
// without real sleeps. Implementations must be monotonic: elapsed time
// computed from Now readings must not jump with wall-clock adjustments.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// Sleep blocks for d or until the context is cancelled, whichever
	// comes first. Returns the context's error when interrupted.
	Sleep(ctx context.Context, d time.Duration) error
}

// realClock uses the system clock. time.Time carries a monotonic reading
// on Linux/macOS/Windows, so subtraction is immune to wall-clock changes.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
