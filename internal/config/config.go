package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig  `yaml:"server" envconfig:"SERVER"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Loader  LoaderConfig  `yaml:"loader" envconfig:"LOADER"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" envconfig:"MAX_UPLOAD_BYTES" default:"10485760" validate:"min=1024"`
	RateLimit       RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains rate limiting configuration
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED" default:"true"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" default:"10"`
	Burst   int     `yaml:"burst" envconfig:"BURST" default:"20"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" envconfig:"FORMAT" default:"json" validate:"oneof=json text"`
	Output string `yaml:"output" envconfig:"OUTPUT" default:"stdout" validate:"oneof=stdout stderr"`
}

// LoaderConfig contains the table-loading policy knobs. Defaults match the
// published "Tabel Harga Berdasarkan Komoditas" layout.
type LoaderConfig struct {
	IdentifierLabel   string `yaml:"identifier_label" envconfig:"IDENTIFIER_LABEL" default:"Komoditas (Rp)" validate:"required"`
	CanonicalLabel    string `yaml:"canonical_label" envconfig:"CANONICAL_LABEL" default:"Provinsi" validate:"required"`
	SequenceLabel     string `yaml:"sequence_label" envconfig:"SEQUENCE_LABEL" default:"No"`
	PrimaryDateLayout string `yaml:"primary_date_layout" envconfig:"PRIMARY_DATE_LAYOUT" default:"02/01/2006" validate:"required"`
}

// Load loads configuration from environment variables and an optional YAML
// file. Environment variables win over file values; file values win over
// defaults.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("RICEPULSE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	configFile := getConfigFilePath()
	if _, err := os.Stat(configFile); err == nil {
		fileCfg, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(cfg, *fileCfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// getConfigFilePath returns the config file location, overridable via env.
func getConfigFilePath() string {
	if path := os.Getenv("RICEPULSE_CONFIG_FILE"); path != "" {
		return path
	}
	return "config.yaml"
}

// mergeConfigs overlays file values onto the env-derived config. A file
// value only applies where the corresponding env var was not set, so the
// precedence is env > file > default.
func mergeConfigs(env, file Config) Config {
	merged := env

	overlayInt := func(envKey string, dst *int, src int) {
		if src != 0 && os.Getenv(envKey) == "" {
			*dst = src
		}
	}
	overlayInt64 := func(envKey string, dst *int64, src int64) {
		if src != 0 && os.Getenv(envKey) == "" {
			*dst = src
		}
	}
	overlayFloat := func(envKey string, dst *float64, src float64) {
		if src != 0 && os.Getenv(envKey) == "" {
			*dst = src
		}
	}
	overlayString := func(envKey string, dst *string, src string) {
		if src != "" && os.Getenv(envKey) == "" {
			*dst = src
		}
	}
	overlayDuration := func(envKey string, dst *time.Duration, src time.Duration) {
		if src != 0 && os.Getenv(envKey) == "" {
			*dst = src
		}
	}

	overlayInt("RICEPULSE_SERVER_PORT", &merged.Server.Port, file.Server.Port)
	overlayDuration("RICEPULSE_SERVER_READ_TIMEOUT", &merged.Server.ReadTimeout, file.Server.ReadTimeout)
	overlayDuration("RICEPULSE_SERVER_WRITE_TIMEOUT", &merged.Server.WriteTimeout, file.Server.WriteTimeout)
	overlayDuration("RICEPULSE_SERVER_IDLE_TIMEOUT", &merged.Server.IdleTimeout, file.Server.IdleTimeout)
	overlayDuration("RICEPULSE_SERVER_SHUTDOWN_TIMEOUT", &merged.Server.ShutdownTimeout, file.Server.ShutdownTimeout)
	overlayInt64("RICEPULSE_SERVER_MAX_UPLOAD_BYTES", &merged.Server.MaxUploadBytes, file.Server.MaxUploadBytes)
	overlayFloat("RICEPULSE_SERVER_RATE_LIMIT_RPS", &merged.Server.RateLimit.RPS, file.Server.RateLimit.RPS)
	overlayInt("RICEPULSE_SERVER_RATE_LIMIT_BURST", &merged.Server.RateLimit.Burst, file.Server.RateLimit.Burst)

	overlayString("RICEPULSE_LOGGING_LEVEL", &merged.Logging.Level, file.Logging.Level)
	overlayString("RICEPULSE_LOGGING_FORMAT", &merged.Logging.Format, file.Logging.Format)
	overlayString("RICEPULSE_LOGGING_OUTPUT", &merged.Logging.Output, file.Logging.Output)

	overlayString("RICEPULSE_LOADER_IDENTIFIER_LABEL", &merged.Loader.IdentifierLabel, file.Loader.IdentifierLabel)
	overlayString("RICEPULSE_LOADER_CANONICAL_LABEL", &merged.Loader.CanonicalLabel, file.Loader.CanonicalLabel)
	overlayString("RICEPULSE_LOADER_SEQUENCE_LABEL", &merged.Loader.SequenceLabel, file.Loader.SequenceLabel)
	overlayString("RICEPULSE_LOADER_PRIMARY_DATE_LAYOUT", &merged.Loader.PrimaryDateLayout, file.Loader.PrimaryDateLayout)

	return merged
}
