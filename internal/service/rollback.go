package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/phantom-vault/internal/logger"
)

// rollback is a stack of undo steps collected while an operation makes
// changes. run undoes them in reverse order unless commit was called first.
type rollback struct {
	steps     []rollbackStep
	committed bool
}

type rollbackStep struct {
	name string
	undo func() error
}

func (r *rollback) push(name string, undo func() error) {
	r.steps = append(r.steps, rollbackStep{name: name, undo: undo})
}

// commit drops every collected step.
func (r *rollback) commit() {
	r.committed = true
	r.steps = nil
}

// run undoes the collected steps and logs the ones that fail. It is meant
// to be deferred and is a no-op after commit.
func (r *rollback) run(ctx context.Context) error {
	if r.committed {
		return nil
	}
	var errs []error
	for i := len(r.steps) - 1; i >= 0; i-- {
		step := r.steps[i]
		if err := step.undo(); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "rollback.run").Str("step", step.name).Msg("rollback step failed")
			errs = append(errs, err)
		}
	}
	r.steps = nil
	return errors.Join(errs...)
}
