// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// AttemptStore counts evaluation attempts per client within fixed windows.
type AttemptStore interface {
	// Increment records one attempt for key and returns the number of attempts
	// seen in the current window, including this one. The window starts with
	// the first attempt and lasts for the given duration.
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
}
