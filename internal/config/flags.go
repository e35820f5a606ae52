package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-c/-config config file path (.json, .yaml, .yml)
//	-log-level zerolog level
//	-log-file log file path
//	-vault-root vault root directory
//	-allowed-roots comma separated lockable roots
//	-kdf-iterations PBKDF2 work factor
//	-kdf-algorithm verifier KDF (pbkdf2-sha256, argon2id)
//	-workers per-operation file parallelism
//	-compression zstd or none
//	-decoys decoy directories per lock
//	-wipe-passes overwrite passes for original files
//	-lock-timeout per-profile lock wait (e.g. "5s")
//	-auto-repair repair recoverable issues during maintenance
//	-journal recovery journal SQLite path
//	-backup-endpoint, -backup-bucket, -backup-access-key, -backup-secret-key
//	-backup-ssl use https for backups
//	-metrics-address Prometheus listener [host]:[port]
//	-maintenance-interval integrity maintenance period (e.g. "1h")
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("phantomd", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		configPath          string
		logLevel            string
		logFile             string
		vaultRoot           string
		allowedRoots        string
		kdfIterations       int
		kdfAlgorithm        string
		workers             int
		compression         string
		decoys              int
		wipePasses          int
		lockTimeout         time.Duration
		autoRepair          bool
		journalDSN          string
		backupEndpoint      string
		backupBucket        string
		backupAccessKey     string
		backupSecretKey     string
		backupSSL           bool
		metricsAddress      NetAddress
		maintenanceInterval time.Duration
	)

	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&vaultRoot, "vault-root", "", "Vault root directory")
	fs.StringVar(&allowedRoots, "allowed-roots", "", "Comma separated lockable roots")
	fs.IntVar(&kdfIterations, "kdf-iterations", 0, "PBKDF2 iterations")
	fs.StringVar(&kdfAlgorithm, "kdf-algorithm", "", "Verifier KDF")
	fs.IntVar(&workers, "workers", 0, "Per-operation file parallelism")
	fs.StringVar(&compression, "compression", "", "Compression (zstd, none)")
	fs.IntVar(&decoys, "decoys", 0, "Decoy directories per lock")
	fs.IntVar(&wipePasses, "wipe-passes", 0, "Overwrite passes for original files (negative removes without overwriting)")
	fs.DurationVar(&lockTimeout, "lock-timeout", 0, "Per-profile lock wait (e.g., 5s)")
	fs.BoolVar(&autoRepair, "auto-repair", false, "Repair recoverable issues during maintenance")
	fs.StringVar(&journalDSN, "journal", "", "Recovery journal SQLite path")
	fs.StringVar(&backupEndpoint, "backup-endpoint", "", "Backup endpoint host:port")
	fs.StringVar(&backupBucket, "backup-bucket", "", "Backup bucket")
	fs.StringVar(&backupAccessKey, "backup-access-key", "", "Backup access key")
	fs.StringVar(&backupSecretKey, "backup-secret-key", "", "Backup secret key")
	fs.BoolVar(&backupSSL, "backup-ssl", false, "Use https for backups")
	fs.Var(&metricsAddress, "metrics-address", "Metrics net address host:port")
	fs.DurationVar(&maintenanceInterval, "maintenance-interval", 0, "Maintenance period (e.g., 1h)")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Join(ErrInvalidFlags, err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
			LogFile:  logFile,
		},
		Vault: Vault{
			RootDir:       vaultRoot,
			AllowedRoots:  splitList(allowedRoots),
			KDFIterations: kdfIterations,
			KDFAlgorithm:  kdfAlgorithm,
			Workers:       workers,
			Compression:   compression,
			DecoyCount:    decoys,
			WipePasses:    wipePasses,
			LockTimeout:   lockTimeout,
			AutoRepair:    autoRepair,
		},
		Storage: Storage{
			Journal: Journal{DSN: journalDSN},
		},
		Backup: Backup{
			Enabled:   backupEndpoint != "",
			Endpoint:  backupEndpoint,
			AccessKey: backupAccessKey,
			SecretKey: backupSecretKey,
			Bucket:    backupBucket,
			UseSSL:    backupSSL,
		},
		Metrics: Metrics{Address: metricsAddress.String()},
		Workers: Workers{MaintenanceInterval: maintenanceInterval},
		FilePath: configPath,
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
