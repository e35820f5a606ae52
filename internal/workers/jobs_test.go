package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/phantom-vault/internal/logger"
	"github.com/MKhiriev/phantom-vault/internal/mock"
	"github.com/MKhiriev/phantom-vault/models"
)

// ── MaintenanceWorker ────────────────────────────────────────────────────────

func TestMaintenanceWorker_RunsOnEveryTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mock.NewMockVaultManager(ctrl)

	var calls atomic.Int32
	manager.EXPECT().PerformMaintenance(gomock.Any()).
		DoAndReturn(func(ctx context.Context) map[string]models.IntegrityReport {
			calls.Add(1)
			return map[string]models.IntegrityReport{
				"alice": {ProfileID: "alice", Valid: true},
				"bob":   {ProfileID: "bob", Issues: []models.IntegrityIssue{{Kind: models.IssueStaleStaging}}},
			}
		}).
		MinTimes(2)

	w := NewMaintenanceWorker(manager, 5*time.Millisecond, logger.Nop())
	w.Start(context.Background())
	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, 2*time.Second, time.Millisecond)
	w.Stop()

	after := calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, calls.Load(), "no pass may run after Stop")
}

func TestMaintenanceWorker_DisabledInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mock.NewMockVaultManager(ctrl)

	// no PerformMaintenance expectation: a zero interval never ticks
	w := NewMaintenanceWorker(manager, 0, logger.Nop())
	w.Start(context.Background())
	time.Sleep(10 * time.Millisecond)
	w.Stop()
}

// ── RelockWorker ─────────────────────────────────────────────────────────────

func TestRelockWorker_RelockNow(t *testing.T) {
	tests := []struct {
		name    string
		results map[string]models.UnlockResult
		want    bool
	}{
		{
			name:    "no profiles",
			results: map[string]models.UnlockResult{},
			want:    true,
		},
		{
			name: "all relocked",
			results: map[string]models.UnlockResult{
				"alice": {Success: true, RelockedFolders: []string{"f1"}},
				"bob":   {Success: true},
			},
			want: true,
		},
		{
			name: "one profile failed",
			results: map[string]models.UnlockResult{
				"alice": {Success: true},
				"bob": {
					Error:         "1 folder(s) left temporarily unlocked",
					ErrorKind:     models.ErrorKindAuth,
					FailedFolders: []string{"f2"},
				},
			},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			manager := mock.NewMockVaultManager(ctrl)
			manager.EXPECT().RelockAll(gomock.Any()).Return(tt.results)

			w := NewRelockWorker(manager, logger.Nop())
			assert.Equal(t, tt.want, w.RelockNow(context.Background()))
		})
	}
}

func TestRelockWorker_Trigger(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mock.NewMockVaultManager(ctrl)

	var calls atomic.Int32
	manager.EXPECT().RelockAll(gomock.Any()).
		DoAndReturn(func(ctx context.Context) map[string]models.UnlockResult {
			calls.Add(1)
			return map[string]models.UnlockResult{}
		}).
		Times(1)

	w := NewRelockWorker(manager, logger.Nop())

	// pending triggers are merged into one pass
	w.Trigger()
	w.Trigger()
	w.Trigger()

	w.Start(context.Background())
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	w.Stop()
}

func TestRelockWorker_NoTriggerNoRelock(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mock.NewMockVaultManager(ctrl)

	w := NewRelockWorker(manager, logger.Nop())
	w.Start(context.Background())
	time.Sleep(10 * time.Millisecond)
	w.Stop()
}
