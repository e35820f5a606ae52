package workers

import (
	"context"
	"sync"
)

// Workers starts and stops a set of workers together.
type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		if worker != nil {
			worker.Start(ctx)
		}
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		if w.workers[i] != nil {
			w.workers[i].Stop()
		}
	}
}

// loop is the goroutine bookkeeping shared by the workers of this package.
type loop struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// start stops a running loop, then runs fn in a new goroutine with a
// context that Stop cancels.
func (l *loop) start(ctx context.Context, fn func(ctx context.Context)) {
	l.Stop()

	l.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.wg.Add(1)
	l.mu.Unlock()

	go func() {
		defer l.wg.Done()
		fn(jobCtx)
	}()
}

func (l *loop) Stop() {
	l.mu.Lock()
	cancel := l.cancel
	l.cancel = nil
	l.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	l.wg.Wait()
}
