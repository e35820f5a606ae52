// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/phantom-vault/internal/logger"
	"github.com/MKhiriev/phantom-vault/internal/service"
)

var _ Worker = (*RelockWorker)(nil)

// RelockWorker relocks the temporarily unlocked folders of every profile
// whenever a session boundary is signalled through Trigger.
type RelockWorker struct {
	loop

	manager service.VaultManager
	trigger chan struct{}
	logger  *logger.Logger
}

func NewRelockWorker(manager service.VaultManager, logger *logger.Logger) *RelockWorker {
	return &RelockWorker{
		manager: manager,
		trigger: make(chan struct{}, 1),
		logger:  logger,
	}
}

// Trigger requests a relock pass. Requests arriving while one is pending
// are merged into it.
func (w *RelockWorker) Trigger() {
	select {
	case w.trigger <- struct{}{}:
	default:
	}
}

func (w *RelockWorker) Start(ctx context.Context) {
	w.start(ctx, w.run)
}

func (w *RelockWorker) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.trigger:
			w.RelockNow(ctx)
		}
	}
}

// RelockNow runs one relock pass and reports whether every folder was
// relocked.
func (w *RelockWorker) RelockNow(ctx context.Context) bool {
	results := w.manager.RelockAll(ctx)

	ok := true
	relocked := 0
	for id, res := range results {
		relocked += len(res.RelockedFolders)
		if res.Success {
			continue
		}
		ok = false
		w.logger.Error().
			Str("func", "RelockWorker.RelockNow").
			Str("profile_id", id).
			Strs("failed_folders", res.FailedFolders).
			Str("error_kind", string(res.ErrorKind)).
			Msg(res.Error)
	}
	w.logger.Info().
		Str("func", "RelockWorker.RelockNow").
		Int("profiles", len(results)).
		Int("relocked", relocked).
		Msg("relock pass finished")
	return ok
}
