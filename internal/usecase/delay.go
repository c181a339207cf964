package usecase

import (
	"context"
	"time"
)

// waitFor simulates provider latency but aborts when the request context is
// cancelled, so an abandoned request never completes against stale state.
func waitFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
