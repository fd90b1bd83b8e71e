package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/2beens/fitcal/pkg"
)

const (
	StorageMemory   = "memory"
	StorageDisk     = "disk"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"

	defaultSlotName            = "fitness_calendar_data"
	defaultViewsCacheSizeMB    = 64
	defaultImportAllowedPerMin = 10
	defaultDriveBackupFolder   = "fitcal-backup"
)

type Config struct {
	Host           string   `toml:"host"`
	Port           int      `toml:"port"`
	AllowedOrigins []string `toml:"allowed_origins"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	Environment   string `toml:"environment"`
	// storage
	StorageBackend  string `toml:"storage_backend"`
	StorageSlotName string `toml:"storage_slot_name"`
	DiskStorePath   string `toml:"disk_store_path"`
	RedisHost       string `toml:"redis_host"`
	RedisPort       string `toml:"redis_port"`
	PostgresHost    string `toml:"postgres_host"`
	PostgresPort    string `toml:"postgres_port"`
	PostgresDBName  string `toml:"postgres_db_name"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// misc
	ImportRateLimitAllowedPerMin int    `toml:"import_rate_limit_allowed_per_min"`
	ViewsCacheSizeMB             int    `toml:"views_cache_size_mb"`
	DriveBackupFolder            string `toml:"drive_backup_folder"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

// Load reads the toml file and returns the config of the given env, with
// defaults filled in.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] is missing", env)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func (c *Config) applyDefaults() {
	if c.StorageBackend == "" {
		c.StorageBackend = StorageMemory
	}
	if c.StorageSlotName == "" {
		c.StorageSlotName = defaultSlotName
	}
	if c.ViewsCacheSizeMB <= 0 {
		c.ViewsCacheSizeMB = defaultViewsCacheSizeMB
	}
	if c.ImportRateLimitAllowedPerMin <= 0 {
		c.ImportRateLimitAllowedPerMin = defaultImportAllowedPerMin
	}
	if c.DriveBackupFolder == "" {
		c.DriveBackupFolder = defaultDriveBackupFolder
	}
}

func (c *Config) Validate() error {
	switch c.StorageBackend {
	case StorageMemory:
	case StorageDisk:
		if c.DiskStorePath == "" {
			return fmt.Errorf("storage backend [%s] needs disk_store_path", c.StorageBackend)
		}
	case StorageRedis:
		if c.RedisHost == "" || c.RedisPort == "" {
			return fmt.Errorf("storage backend [%s] needs redis_host and redis_port", c.StorageBackend)
		}
	case StoragePostgres:
		if c.PostgresHost == "" || c.PostgresPort == "" || c.PostgresDBName == "" {
			return fmt.Errorf("storage backend [%s] needs postgres_host, postgres_port and postgres_db_name", c.StorageBackend)
		}
	default:
		return fmt.Errorf("unknown storage backend: %s", c.StorageBackend)
	}
	return nil
}

// RedisEnabled tells whether a redis connection is configured, which is also
// needed for the import rate limiter.
func (c *Config) RedisEnabled() bool {
	return c.RedisHost != "" && c.RedisPort != ""
}

// LoadEnvFile loads secrets (FITCAL_REDIS_PASS, SENTRY_DSN, ...) from a .env
// file into the process env. A missing file is not an error, and variables
// already set in the env win.
func LoadEnvFile(path string) error {
	exists, err := pkg.PathExists(path, false)
	if err != nil {
		return fmt.Errorf("check env file [%s]: %w", path, err)
	}
	if !exists {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file [%s]: %w", path, err)
	}
	return nil
}
