// Package workers runs the background jobs of the vault daemon: periodic
// integrity maintenance and relocking of temporarily unlocked folders at
// session boundaries.
package workers

import "context"

// Worker is a background job.
//
// Start launches the job in its own goroutine and returns immediately. The
// job ends when ctx is cancelled or Stop is called. Stop blocks until the
// goroutine has exited and is a no-op for a job that is not running.
//
// Example implementation:
//
//	type MyWorker struct{ loop }
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    w.start(ctx, func(ctx context.Context) { <-ctx.Done() })
//	}
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
