// Package workers provides the background jobs that keep local state and the
// remote API converged without blocking user-facing operations.
package workers

import (
	"context"
	"time"
)

// Job is a background task with an explicit lifecycle. Start launches the
// job's goroutine and returns immediately; Stop blocks until the goroutine
// has fully exited. Both are safe to call repeatedly.
type Job interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
