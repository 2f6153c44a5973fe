// Package config handles application configuration from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/scamshield/railshield/internal/catalog"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Validation ValidationConfig `yaml:"validation"`
	RateLimits RateLimitConfig  `yaml:"rate_limits"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"` // sqlite, memory
	Path   string `yaml:"path"`   // for sqlite
}

// ValidationConfig overrides the community vote thresholds.
type ValidationConfig struct {
	VerifyThreshold   int `yaml:"verify_threshold"`
	EscalateThreshold int `yaml:"escalate_threshold"`
	DisputeThreshold  int `yaml:"dispute_threshold"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	t := catalog.DefaultThresholds()
	return &Config{
		Server: ServerConfig{
			Port: 5000,
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			Path:   "./data/railshield.db",
		},
		Validation: ValidationConfig{
			VerifyThreshold:   t.Verified,
			EscalateThreshold: t.Escalated,
			DisputeThreshold:  t.Disputed,
		},
		RateLimits: RateLimitConfig{
			RequestsPerMinute: 60,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Thresholds maps the configured overrides onto the catalog thresholds.
func (c *Config) Thresholds() catalog.Thresholds {
	t := catalog.DefaultThresholds()
	t.Verified = c.Validation.VerifyThreshold
	t.Escalated = c.Validation.EscalateThreshold
	t.Disputed = c.Validation.DisputeThreshold
	return t
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s (run with --generate-config to create one)", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Interpolate environment variables
	content := interpolateEnvVars(string(data))

	cfg := DefaultConfig()
	if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// GenerateSample creates a sample configuration file.
func GenerateSample(path string) error {
	sample := `# RailShield Configuration
# See documentation for all options

server:
  port: 5000

database:
  driver: sqlite  # sqlite or memory
  path: ./data/railshield.db

# Community vote thresholds
validation:
  verify_threshold: 10
  escalate_threshold: 25
  dispute_threshold: -5

rate_limits:
  requests_per_minute: 60

logging:
  level: info  # debug, info, warn, error
  format: json # json or text
`
	return os.WriteFile(path, []byte(sample), 0644)
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}

	if c.Database.Driver != "sqlite" && c.Database.Driver != "memory" {
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}

	if c.Database.Driver == "sqlite" && c.Database.Path == "" {
		return fmt.Errorf("database path is required for the sqlite driver")
	}

	if c.Validation.EscalateThreshold <= c.Validation.VerifyThreshold {
		return fmt.Errorf("escalate_threshold (%d) must be above verify_threshold (%d)",
			c.Validation.EscalateThreshold, c.Validation.VerifyThreshold)
	}

	if c.Validation.DisputeThreshold >= c.Validation.VerifyThreshold {
		return fmt.Errorf("dispute_threshold (%d) must be below verify_threshold (%d)",
			c.Validation.DisputeThreshold, c.Validation.VerifyThreshold)
	}

	return nil
}

// interpolateEnvVars replaces ${VAR_NAME} with environment variable values.
func interpolateEnvVars(content string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	return re.ReplaceAllStringFunc(content, func(match string) string {
		varName := strings.TrimPrefix(strings.TrimSuffix(match, "}"), "${")
		if value := os.Getenv(varName); value != "" {
			return value
		}
		return match // Keep original if not set
	})
}
