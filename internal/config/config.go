package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Storage backends.
const (
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
)

// Config holds the complete application configuration.
type Config struct {
	Lang    string        `mapstructure:"lang"`
	Storage StorageConfig `mapstructure:"storage"`
	Export  ExportConfig  `mapstructure:"export"`
	Logging LoggingConfig `mapstructure:"logging"`
	Cache   CacheConfig   `mapstructure:"cache"`
}

// StorageConfig selects and configures the key-value backend.
type StorageConfig struct {
	Type  string      `mapstructure:"type"`
	Path  string      `mapstructure:"path"`
	Redis RedisConfig `mapstructure:"redis"`
}

// RedisConfig configures the Redis backend.
type RedisConfig struct {
	Addr        string `mapstructure:"addr"`
	Password    string `mapstructure:"password"`
	DB          int    `mapstructure:"db"`
	Prefix      string `mapstructure:"prefix"`
	DialTimeout string `mapstructure:"dial_timeout"`
}

// ExportConfig controls where exported reports are written.
type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CacheConfig sizes the rendered report cache.
type CacheConfig struct {
	Size int `mapstructure:"size"`
}

// Load reads configuration from the optional file at configPath, from
// LOGBOOK_* environment variables and from flags, in increasing order of
// precedence. A missing file is not an error.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	if err := setDefaults(v); err != nil {
		return nil, err
	}

	v.SetEnvPrefix("LOGBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	if flags != nil {
		bindFlag(v, flags, "lang", "lang")
		bindFlag(v, flags, "storage.path", "db")
		bindFlag(v, flags, "storage.type", "storage")
		bindFlag(v, flags, "logging.level", "log-level")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultDir is the per-user data directory, ~/.logbook.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".logbook"), nil
}

// DefaultConfigPath is ~/.logbook/config.yaml.
func DefaultConfigPath() string {
	dir, err := DefaultDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

func setDefaults(v *viper.Viper) error {
	dir, err := DefaultDir()
	if err != nil {
		return err
	}

	v.SetDefault("lang", "")

	v.SetDefault("storage.type", StorageSQLite)
	v.SetDefault("storage.path", filepath.Join(dir, "logbook.db"))
	v.SetDefault("storage.redis.addr", "localhost:6379")
	v.SetDefault("storage.redis.password", "")
	v.SetDefault("storage.redis.db", 0)
	v.SetDefault("storage.redis.prefix", "logbook:")
	v.SetDefault("storage.redis.dial_timeout", "5s")

	v.SetDefault("export.dir", ".")

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")

	v.SetDefault("cache.size", 32)
	return nil
}

// bindFlag lets an explicitly set flag override file and env values.
// Unset flags are not bound so their zero defaults never shadow the
// defaults above.
func bindFlag(v *viper.Viper, flags *pflag.FlagSet, key, name string) {
	if f := flags.Lookup(name); f != nil && f.Changed {
		_ = v.BindPFlag(key, f)
	}
}

// Validate checks cross-field constraints.
func Validate(cfg *Config) error {
	switch cfg.Storage.Type {
	case StorageSQLite:
		if cfg.Storage.Path == "" {
			return fmt.Errorf("%w: storage.path is required for sqlite", ErrInvalidConfig)
		}
	case StorageRedis:
		if cfg.Storage.Redis.Addr == "" {
			return fmt.Errorf("%w: storage.redis.addr is required for redis", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage.type %q", ErrInvalidConfig, cfg.Storage.Type)
	}

	switch cfg.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format must be console or json, got %q", ErrInvalidConfig, cfg.Logging.Format)
	}

	if cfg.Cache.Size < 0 {
		return fmt.Errorf("%w: cache.size must not be negative", ErrInvalidConfig)
	}
	return nil
}
