package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of a JSON or YAML config file.
type fileConfig struct {
	App struct {
		LogLevel string `json:"log_level" yaml:"log_level"`
		LogFile  string `json:"log_file" yaml:"log_file"`
	} `json:"app" yaml:"app"`

	Vault struct {
		RootDir       string   `json:"root_dir" yaml:"root_dir"`
		AllowedRoots  []string `json:"allowed_roots" yaml:"allowed_roots"`
		KDFIterations int      `json:"kdf_iterations" yaml:"kdf_iterations"`
		KDFAlgorithm  string   `json:"kdf_algorithm" yaml:"kdf_algorithm"`
		Workers       int      `json:"workers" yaml:"workers"`
		Compression   string   `json:"compression" yaml:"compression"`
		DecoyCount    int      `json:"decoy_count" yaml:"decoy_count"`
		WipePasses    int      `json:"wipe_passes" yaml:"wipe_passes"`
		LockTimeout   Duration `json:"lock_timeout" yaml:"lock_timeout"`
		AutoRepair    bool     `json:"auto_repair" yaml:"auto_repair"`
	} `json:"vault" yaml:"vault"`

	Storage struct {
		Journal struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"journal" yaml:"journal"`
	} `json:"storage" yaml:"storage"`

	Backup struct {
		Enabled   bool   `json:"enabled" yaml:"enabled"`
		Endpoint  string `json:"endpoint" yaml:"endpoint"`
		AccessKey string `json:"access_key" yaml:"access_key"`
		SecretKey string `json:"secret_key" yaml:"secret_key"`
		Bucket    string `json:"bucket" yaml:"bucket"`
		Region    string `json:"region" yaml:"region"`
		UseSSL    bool   `json:"use_ssl" yaml:"use_ssl"`
	} `json:"backup" yaml:"backup"`

	Metrics struct {
		Address string `json:"address" yaml:"address"`
	} `json:"metrics" yaml:"metrics"`

	Workers struct {
		MaintenanceInterval Duration `json:"maintenance_interval" yaml:"maintenance_interval"`
	} `json:"workers" yaml:"workers"`
}

// parseFile dispatches on the file extension.
func parseFile(path string) (*StructuredConfig, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAML(path)
	case ".json", "":
		return parseJSON(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var fc fileConfig
	if err := json.NewDecoder(jsonFile).Decode(&fc); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}
	return fc.toStructured(), nil
}

func parseYAML(yamlFilePath string) (*StructuredConfig, error) {
	data, err := os.ReadFile(yamlFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a yaml file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("error decoding yaml configs: %w", err)
	}
	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: fc.App.LogLevel,
			LogFile:  fc.App.LogFile,
		},
		Vault: Vault{
			RootDir:       fc.Vault.RootDir,
			AllowedRoots:  fc.Vault.AllowedRoots,
			KDFIterations: fc.Vault.KDFIterations,
			KDFAlgorithm:  fc.Vault.KDFAlgorithm,
			Workers:       fc.Vault.Workers,
			Compression:   fc.Vault.Compression,
			DecoyCount:    fc.Vault.DecoyCount,
			WipePasses:    fc.Vault.WipePasses,
			LockTimeout:   time.Duration(fc.Vault.LockTimeout),
			AutoRepair:    fc.Vault.AutoRepair,
		},
		Storage: Storage{
			Journal: Journal{DSN: fc.Storage.Journal.DSN},
		},
		Backup: Backup{
			Enabled:   fc.Backup.Enabled,
			Endpoint:  fc.Backup.Endpoint,
			AccessKey: fc.Backup.AccessKey,
			SecretKey: fc.Backup.SecretKey,
			Bucket:    fc.Backup.Bucket,
			Region:    fc.Backup.Region,
			UseSSL:    fc.Backup.UseSSL,
		},
		Metrics: Metrics{Address: fc.Metrics.Address},
		Workers: Workers{MaintenanceInterval: time.Duration(fc.Workers.MaintenanceInterval)},
	}
}

// Duration is a wrapper around time.Duration that supports JSON and YAML
// unmarshaling from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	if n, err := time.ParseDuration(s); err == nil {
		*d = Duration(n)
		return nil
	}
	var ns int64
	if err := value.Decode(&ns); err != nil {
		return fmt.Errorf("invalid duration %q", s)
	}
	*d = Duration(time.Duration(ns))
	return nil
}
