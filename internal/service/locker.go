package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/MKhiriev/phantom-vault/internal/metrics"
)

// profileLocker hands out one exclusive lock per profile id.
type profileLocker struct {
	mu      sync.Mutex
	sems    map[string]*semaphore.Weighted
	timeout time.Duration
	metrics *metrics.Metrics
}

// newProfileLocker returns a locker. A zero timeout waits until the
// caller's context is done.
func newProfileLocker(timeout time.Duration, m *metrics.Metrics) *profileLocker {
	return &profileLocker{
		sems:    make(map[string]*semaphore.Weighted),
		timeout: timeout,
		metrics: m,
	}
}

func (l *profileLocker) sem(profileID string) *semaphore.Weighted {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.sems[profileID]
	if !ok {
		s = semaphore.NewWeighted(1)
		l.sems[profileID] = s
	}
	return s
}

// acquire blocks until the profile lock is held and returns its release
// function. It fails with ErrLockTimeout when the bound elapses and with the
// context error when ctx is cancelled first.
func (l *profileLocker) acquire(ctx context.Context, profileID string) (func(), error) {
	s := l.sem(profileID)
	waitCtx := ctx
	if l.timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	start := time.Now()
	if err := s.Acquire(waitCtx, 1); err != nil {
		timedOut := ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded)
		l.metrics.RecordLockWait(time.Since(start), timedOut)
		if timedOut {
			return nil, ErrLockTimeout
		}
		return nil, err
	}
	l.metrics.RecordLockWait(time.Since(start), false)

	var once sync.Once
	return func() { once.Do(func() { s.Release(1) }) }, nil
}
