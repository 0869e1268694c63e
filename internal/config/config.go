// Package config loads application configuration from an optional YAML
// file overridden by SALESIQ_-prefixed environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"salesiq/internal/loader"
)

// EnvPrefix is the environment variable prefix for all settings
const EnvPrefix = "SALESIQ"

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" envconfig:"SERVER"`
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Dataset   DatasetConfig   `yaml:"dataset" envconfig:"DATASET"`
	RateLimit RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL"`
	Format string `yaml:"format" envconfig:"FORMAT"`
}

// DatasetConfig locates the records to analyze. Dir holds the six entity
// CSV files under their conventional names; if Workbook is set it names a
// single Excel workbook loaded instead of the CSV directory.
type DatasetConfig struct {
	Dir        string `yaml:"dir" envconfig:"DIR"`
	Workbook   string `yaml:"workbook" envconfig:"WORKBOOK"`
	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR"`
}

// RateLimitConfig contains API rate limiting configuration
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED"`
	RPS     float64 `yaml:"rps" envconfig:"RPS"`
	Burst   int     `yaml:"burst" envconfig:"BURST"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Dataset: DatasetConfig{
			Dir:        "data",
			ReportsDir: "reports",
		},
		RateLimit: RateLimitConfig{
			Enabled: true,
			RPS:     100,
			Burst:   50,
		},
	}
}

// Load builds the configuration: defaults, then the YAML file if one
// exists, then environment overrides, then validation.
func Load() (*Config, error) {
	cfg := Default()

	if path := configFilePath(); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// configFilePath returns the config file to read: SALESIQ_CONFIG_FILE if
// set, otherwise salesiq.yml in the working directory if present.
func configFilePath() string {
	if path := os.Getenv(EnvPrefix + "_CONFIG_FILE"); path != "" {
		return path
	}
	if _, err := os.Stat("salesiq.yml"); err == nil {
		return "salesiq.yml"
	}
	return ""
}

// Validate checks configuration invariants
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}
	if c.Dataset.Dir == "" && c.Dataset.Workbook == "" {
		return fmt.Errorf("dataset dir or workbook must be set")
	}
	if c.RateLimit.Enabled && c.RateLimit.RPS <= 0 {
		return fmt.Errorf("rate limit rps must be positive, got %g", c.RateLimit.RPS)
	}
	return nil
}

// DataPaths returns the conventional CSV file paths under the dataset dir
func (c *Config) DataPaths() loader.Paths {
	return loader.Paths{
		Merchants:    filepath.Join(c.Dataset.Dir, "merchants.csv"),
		Items:        filepath.Join(c.Dataset.Dir, "items.csv"),
		Invoices:     filepath.Join(c.Dataset.Dir, "invoices.csv"),
		InvoiceItems: filepath.Join(c.Dataset.Dir, "invoice_items.csv"),
		Transactions: filepath.Join(c.Dataset.Dir, "transactions.csv"),
		Customers:    filepath.Join(c.Dataset.Dir, "customers.csv"),
	}
}

// NewLogger builds the application logger from the logging configuration
func NewLogger(cfg LoggingConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "text" {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}
