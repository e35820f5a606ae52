// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"
	"slices"
)

const minKDFIterations = 1000

var (
	logLevels    = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}
	kdfs         = []string{"pbkdf2-sha256", "argon2id"}
	compressions = []string{"zstd", "none"}
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// sentinels wrapped with a description otherwise.
func (cfg *StructuredConfig) validate() error {
	if !slices.Contains(logLevels, cfg.App.LogLevel) {
		return fmt.Errorf("%w: log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
	}

	v := cfg.Vault
	switch {
	case v.RootDir == "" || !filepath.IsAbs(v.RootDir):
		return fmt.Errorf("%w: root dir must be an absolute path", ErrInvalidVaultConfigs)
	case v.KDFIterations < minKDFIterations:
		return fmt.Errorf("%w: kdf iterations %d below %d", ErrInvalidVaultConfigs, v.KDFIterations, minKDFIterations)
	case !slices.Contains(kdfs, v.KDFAlgorithm):
		return fmt.Errorf("%w: kdf algorithm %q", ErrInvalidVaultConfigs, v.KDFAlgorithm)
	case !slices.Contains(compressions, v.Compression):
		return fmt.Errorf("%w: compression %q", ErrInvalidVaultConfigs, v.Compression)
	case v.Workers < 1:
		return fmt.Errorf("%w: workers must be positive", ErrInvalidVaultConfigs)
	case v.DecoyCount < 0:
		return fmt.Errorf("%w: decoy count must not be negative", ErrInvalidVaultConfigs)
	case v.LockTimeout < 0:
		return fmt.Errorf("%w: lock timeout must not be negative", ErrInvalidVaultConfigs)
	}
	for _, root := range v.AllowedRoots {
		if !filepath.IsAbs(root) {
			return fmt.Errorf("%w: allowed root %q is not absolute", ErrInvalidVaultConfigs, root)
		}
	}

	if cfg.Storage.Journal.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Backup.Enabled && (cfg.Backup.Endpoint == "" || cfg.Backup.Bucket == "") {
		return ErrInvalidBackupConfigs
	}

	if cfg.Workers.MaintenanceInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
