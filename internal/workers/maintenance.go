// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/phantom-vault/internal/logger"
	"github.com/MKhiriev/phantom-vault/internal/service"
)

var _ Worker = (*MaintenanceWorker)(nil)

// MaintenanceWorker validates every profile vault on a fixed period and
// lets the manager repair and report what it finds.
type MaintenanceWorker struct {
	loop

	manager  service.VaultManager
	interval time.Duration
	logger   *logger.Logger
}

func NewMaintenanceWorker(manager service.VaultManager, interval time.Duration, logger *logger.Logger) *MaintenanceWorker {
	return &MaintenanceWorker{manager: manager, interval: interval, logger: logger}
}

// Start runs a maintenance pass every interval. A non-positive interval
// disables the worker.
func (w *MaintenanceWorker) Start(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Info().Str("func", "MaintenanceWorker.Start").Msg("maintenance worker disabled")
		return
	}
	w.start(ctx, w.run)
}

func (w *MaintenanceWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			w.runOnce(ctx)
		}
	}
}

func (w *MaintenanceWorker) runOnce(ctx context.Context) {
	start := time.Now()
	reports := w.manager.PerformMaintenance(ctx)

	invalid := 0
	for id, report := range reports {
		if report.Valid {
			continue
		}
		invalid++
		w.logger.Warn().
			Str("func", "MaintenanceWorker.runOnce").
			Str("profile_id", id).
			Int("issues", len(report.Issues)).
			Msg("profile vault has integrity issues")
	}
	w.logger.Info().
		Str("func", "MaintenanceWorker.runOnce").
		Int("profiles", len(reports)).
		Int("invalid", invalid).
		Dur("duration", time.Since(start)).
		Msg("maintenance pass finished")
}
