// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container of the
// phantom-vault daemon. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, an optional JSON or YAML file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as logging.
	App App `envPrefix:"APP_"`

	// Vault holds the engine settings shared by every profile vault.
	Vault Vault `envPrefix:"VAULT_"`

	// Storage holds the recovery journal settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Backup holds the object storage settings for vault backups.
	Backup Backup `envPrefix:"BACKUP_"`

	// Metrics holds the Prometheus listener settings.
	Metrics Metrics `envPrefix:"METRICS_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// FilePath is the optional path to a JSON (.json) or YAML (.yaml, .yml)
	// configuration file. Populated via the CONFIG environment variable or
	// the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// App holds process-level configuration.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", "warn", "error").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile, when set, sends logs to this file instead of stdout.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Vault holds engine settings.
type Vault struct {
	// RootDir contains one sub-directory per profile vault.
	// Env: VAULT_ROOT_DIR
	RootDir string `env:"ROOT_DIR"`

	// AllowedRoots restricts which paths may be locked: a folder must lie
	// strictly inside one of them. Defaults to the user's home directory.
	// Set it to "/" to allow any absolute path outside RootDir.
	// Env: VAULT_ALLOWED_ROOTS (comma separated)
	AllowedRoots []string `env:"ALLOWED_ROOTS" envSeparator:","`

	// KDFIterations is the PBKDF2 work factor for folder keys and the
	// pbkdf2 verifier.
	// Env: VAULT_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`

	// KDFAlgorithm selects the vault verifier KDF: "pbkdf2-sha256" or
	// "argon2id".
	// Env: VAULT_KDF_ALGORITHM
	KDFAlgorithm string `env:"KDF_ALGORITHM"`

	// Workers bounds per-file parallelism inside one operation.
	// Env: VAULT_WORKERS
	Workers int `env:"WORKERS"`

	// Compression is applied before encryption: "zstd" or "none".
	// Env: VAULT_COMPRESSION
	Compression string `env:"COMPRESSION"`

	// DecoyCount is the number of empty decoy directories created per lock.
	// Env: VAULT_DECOY_COUNT
	DecoyCount int `env:"DECOY_COUNT"`

	// WipePasses is the number of random overwrite passes applied to the
	// original files after a lock. Zero counts as unset and falls back to
	// DefaultWipePasses; a negative value removes the originals without
	// overwriting them.
	// Env: VAULT_WIPE_PASSES
	WipePasses int `env:"WIPE_PASSES"`

	// LockTimeout bounds the wait for the per-profile lock. Zero waits
	// until the operation context is done.
	// Env: VAULT_LOCK_TIMEOUT
	LockTimeout time.Duration `env:"LOCK_TIMEOUT"`

	// AutoRepair lets scheduled maintenance repair recoverable issues.
	// Env: VAULT_AUTO_REPAIR
	AutoRepair bool `env:"AUTO_REPAIR"`
}

// Storage groups the storage settings used outside the profile vaults.
type Storage struct {
	// Journal holds the recovery journal database settings.
	Journal Journal `envPrefix:"JOURNAL_"`
}

// Journal holds the SQLite recovery journal settings.
type Journal struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_JOURNAL_DSN
	DSN string `env:"DSN"`
}

// Backup holds object storage settings for vault backups.
type Backup struct {
	// Enabled turns the backup adapter on.
	// Env: BACKUP_ENABLED
	Enabled bool `env:"ENABLED"`

	// Endpoint is the S3-compatible endpoint in host:port form.
	// Env: BACKUP_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// AccessKey and SecretKey authenticate against the endpoint.
	// Env: BACKUP_ACCESS_KEY, BACKUP_SECRET_KEY
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`

	// Bucket receives the vault archives.
	// Env: BACKUP_BUCKET
	Bucket string `env:"BUCKET"`

	// Region is passed to bucket creation.
	// Env: BACKUP_REGION
	Region string `env:"REGION"`

	// UseSSL selects https.
	// Env: BACKUP_USE_SSL
	UseSSL bool `env:"USE_SSL"`
}

// Metrics holds the Prometheus listener settings.
type Metrics struct {
	// Address is the host:port of the /metrics listener. Empty disables it.
	// Env: METRICS_ADDRESS
	Address string `env:"ADDRESS"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// MaintenanceInterval is the period of the integrity maintenance job.
	// Env: WORKERS_MAINTENANCE_INTERVAL
	MaintenanceInterval time.Duration `env:"MAINTENANCE_INTERVAL"`
}

// Default values applied to fields left unset by every other source.
const (
	DefaultLogLevel            = "info"
	DefaultKDFIterations       = 100_000
	DefaultKDFAlgorithm        = "pbkdf2-sha256"
	DefaultWorkers             = 4
	DefaultCompression         = "zstd"
	DefaultDecoyCount          = 2
	DefaultWipePasses          = 3
	DefaultMaintenanceInterval = time.Hour
)

func defaults() *StructuredConfig {
	cfg := &StructuredConfig{
		App: App{LogLevel: DefaultLogLevel},
		Vault: Vault{
			KDFIterations: DefaultKDFIterations,
			KDFAlgorithm:  DefaultKDFAlgorithm,
			Workers:       DefaultWorkers,
			Compression:   DefaultCompression,
			DecoyCount:    DefaultDecoyCount,
			WipePasses:    DefaultWipePasses,
		},
		Workers: Workers{MaintenanceInterval: DefaultMaintenanceInterval},
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		cfg.Vault.RootDir = home + "/.phantomvault/vaults"
		cfg.Storage.Journal.DSN = home + "/.phantomvault/recovery.db"
		cfg.Vault.AllowedRoots = []string{home}
	}
	return cfg
}

// GetStructuredConfig loads, merges, and validates the configuration using
// the process environment and command-line arguments.
func GetStructuredConfig() (*StructuredConfig, error) {
	return Load(os.Args[1:])
}

// Load is GetStructuredConfig with explicit arguments. Sources are applied
// in the following priority order (an earlier source wins for every field
// it sets):
//  1. Environment variables
//  2. Command-line flags
//  3. Config file (path resolved from sources 1 and 2)
//  4. Defaults
func Load(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile().
		withDefaults().
		build()
}
