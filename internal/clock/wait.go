// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// Wait blocks for d or until ctx is done. A non-positive d only reports ctx.Err().
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
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
