// ABOUTME: Configuration loading and parsing for the prestasi client
// ABOUTME: YAML files with environment variable expansion plus env overrides

package config

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"
)

// Config represents the complete client configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig holds the prediction API endpoint configuration.
type ServerConfig struct {
	BaseURL string `yaml:"base_url" env:"PRESTASI_BASE_URL"`

	Timeout time.Duration `yaml:"-"`

	// Raw string value for YAML unmarshaling
	TimeoutRaw string `yaml:"timeout" env:"PRESTASI_TIMEOUT"`
}

// StorageConfig holds local file paths for the token and prediction history.
type StorageConfig struct {
	TokenPath   string `yaml:"token_path" env:"PRESTASI_TOKEN_PATH"`
	HistoryPath string `yaml:"history_path" env:"PRESTASI_HISTORY_PATH"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"PRESTASI_LOG_LEVEL"`
	Format string `yaml:"format" env:"PRESTASI_LOG_FORMAT"`
}

// DefaultBaseURL is used when no config file or override names an endpoint.
const DefaultBaseURL = "http://localhost:8000/api/v1"

// Load reads the configuration file at path and returns a parsed Config.
// Environment variables in the format ${VAR_NAME} are expanded inside the
// YAML, then PRESTASI_* environment variables override individual fields.
// A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err == nil {
		expandedData := expandEnvVars(string(data))
		if err := yaml.Unmarshal([]byte(expandedData), cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := envconfig.Process(context.Background(), cfg); err != nil {
		return nil, fmt.Errorf("applying environment overrides: %w", err)
	}

	cfg.applyDefaults()

	if err := parseDurations(cfg); err != nil {
		return nil, fmt.Errorf("parsing durations: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = DefaultBaseURL
	}
	if c.Server.TimeoutRaw == "" {
		c.Server.TimeoutRaw = "30s"
	}
	if c.Storage.TokenPath == "" {
		c.Storage.TokenPath = filepath.Join(configDir(), "token")
	}
	if c.Storage.HistoryPath == "" {
		c.Storage.HistoryPath = filepath.Join(configDir(), "history.db")
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "warn"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding
// environment variable values. Unset variables become empty strings.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// Validate checks that all configuration fields are usable.
// Returns an error describing the first validation failure encountered.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Server.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("server.base_url %q is not a valid URL", c.Server.BaseURL)
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be \"text\" or \"json\", got %q", c.Logging.Format)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}

	return nil
}

// parseDurations converts the raw duration strings into time.Duration values.
func parseDurations(cfg *Config) error {
	var err error

	cfg.Server.Timeout, err = time.ParseDuration(cfg.Server.TimeoutRaw)
	if err != nil {
		return fmt.Errorf("parsing server.timeout %q: %w", cfg.Server.TimeoutRaw, err)
	}

	return nil
}

// DefaultPath resolves the config file location: PRESTASI_CONFIG if set,
// otherwise config.yaml under the user config directory.
func DefaultPath() string {
	if p := os.Getenv("PRESTASI_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(configDir(), "config.yaml")
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "prestasi")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "prestasi"
	}
	return filepath.Join(home, ".config", "prestasi")
}
