package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/MKhiriev/phantom-vault/internal/adapter"
	"github.com/MKhiriev/phantom-vault/internal/config"
	"github.com/MKhiriev/phantom-vault/internal/crypto"
	"github.com/MKhiriev/phantom-vault/internal/logger"
	"github.com/MKhiriev/phantom-vault/internal/metrics"
	"github.com/MKhiriev/phantom-vault/internal/server"
	"github.com/MKhiriev/phantom-vault/internal/service"
	"github.com/MKhiriev/phantom-vault/internal/store"
	"github.com/MKhiriev/phantom-vault/internal/workers"
	"github.com/MKhiriev/phantom-vault/models"
)

// Set with -ldflags "-X main.buildVersion=...".
var (
	buildVersion = "dev"
	buildDate    string
	buildCommit  string
)

const shutdownTimeout = 30 * time.Second

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("phantomd", config.DefaultLogLevel).Fatal().Err(err).Msg("error getting configs")
	}

	log := newLogger(cfg.App)
	redacted := *cfg
	redacted.Backup.AccessKey, redacted.Backup.SecretKey = "***", "***"
	log.Debug().Any("config", redacted).Msg("received configs")

	if err = run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("phantomd stopped with error")
	}
}

func run(cfg *config.StructuredConfig, log *logger.Logger) error {
	ctx, cancel := context.WithCancel(log.WithContext(context.Background()))
	defer cancel()

	appInfo, err := service.NewAppInfoService(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		return fmt.Errorf("error creating app info service: %w", err)
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer storages.Close()

	m := metrics.NewMetrics()
	var metricsServer server.Server
	if cfg.Metrics.Address != "" {
		if metricsServer, err = server.NewServer(m.Handler(), cfg.Metrics, log); err != nil {
			return fmt.Errorf("error creating metrics server: %w", err)
		}
		go metricsServer.RunServer()
	}

	backup, err := newBackupTarget(ctx, cfg.Backup, log)
	if err != nil {
		return fmt.Errorf("error creating backup target: %w", err)
	}

	reporter := service.MultiReporter{
		service.NewLogReporter(log),
		service.NewJournalReporter(storages.Journal),
	}

	manager, err := service.NewVaultManager(cfg.Vault, crypto.NewEngine(), reporter, backup, m, log)
	if err != nil {
		return fmt.Errorf("error creating vault manager: %w", err)
	}

	relock := workers.NewRelockWorker(manager, log)
	jobs := workers.NewWorkers(
		workers.NewMaintenanceWorker(manager, cfg.Workers.MaintenanceInterval, log),
		relock,
	)

	// vaults left inconsistent by a crash are handled before any new work
	manager.PerformMaintenance(ctx)
	jobs.Start(ctx)

	log.Info().
		Str("version", appInfo.GetAppVersion(ctx)).
		Str("vault_root", cfg.Vault.RootDir).
		Bool("backup", backup != nil).
		Msg("phantomd started")

	waitForShutdown(log, relock)

	jobs.Stop()

	stopCtx, stop := context.WithTimeout(log.WithContext(context.WithoutCancel(ctx)), shutdownTimeout)
	defer stop()
	if !relock.RelockNow(stopCtx) {
		log.Warn().Msg("some folders could not be relocked before exit")
	}
	if metricsServer != nil {
		metricsServer.Shutdown(stopCtx)
	}

	log.Info().Msg("phantomd Shutdown gracefully")
	return nil
}

// waitForShutdown blocks until a stop signal arrives. Session signals
// trigger a relock pass in the meantime.
func waitForShutdown(log *logger.Logger, relock *workers.RelockWorker) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, append(stopSignals(), sessionSignals()...)...)
	defer signal.Stop(ch)

	for sig := range ch {
		if isSessionSignal(sig) {
			log.Info().Str("signal", sig.String()).Msg("session boundary, relocking temporary folders")
			relock.Trigger()
			continue
		}
		log.Info().Str("signal", sig.String()).Msg("shutting down")
		return
	}
}

func isSessionSignal(sig os.Signal) bool {
	for _, s := range sessionSignals() {
		if s == sig {
			return true
		}
	}
	return false
}

func newBackupTarget(ctx context.Context, cfg config.Backup, log *logger.Logger) (service.BackupTarget, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	api, err := adapter.NewMinioClient(cfg)
	if err != nil {
		return nil, err
	}
	return adapter.NewVaultBackup(ctx, api, cfg, log)
}

func newLogger(cfg config.App) *logger.Logger {
	if cfg.LogFile != "" {
		return logger.NewFileLogger("phantomd", cfg.LogLevel, cfg.LogFile)
	}
	return logger.NewLogger("phantomd", cfg.LogLevel)
}

func printBuildInfo() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
