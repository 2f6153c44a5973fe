package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/scamshield/railshield/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestDefaultConfig pins the shipped defaults.
func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 10, cfg.Validation.VerifyThreshold)
	assert.Equal(t, 25, cfg.Validation.EscalateThreshold)
	assert.Equal(t, -5, cfg.Validation.DisputeThreshold)
	assert.Equal(t, 60, cfg.RateLimits.RequestsPerMinute)
	assert.Equal(t, "info", cfg.Logging.Level)

	assert.NoError(t, cfg.Validate())
}

// TestThresholdsMapping verifies config overrides reach the vote thresholds.
func TestThresholdsMapping(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Validation.VerifyThreshold = 5
	cfg.Validation.EscalateThreshold = 12
	cfg.Validation.DisputeThreshold = -3

	th := cfg.Thresholds()
	assert.Equal(t, 5, th.Verified)
	assert.Equal(t, 12, th.Escalated)
	assert.Equal(t, -3, th.Disputed)
}

// TestLoad verifies partial files overlay the defaults.
func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
database:
  driver: memory
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Database.Driver)
	// Untouched sections keep their defaults.
	assert.Equal(t, 10, cfg.Validation.VerifyThreshold)
	assert.Equal(t, 60, cfg.RateLimits.RequestsPerMinute)
}

// TestLoad_MissingFile verifies the guidance error.
func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

// TestLoad_EnvInterpolation verifies ${VAR} substitution.
func TestLoad_EnvInterpolation(t *testing.T) {
	t.Setenv("RAILSHIELD_TEST_PORT", "9090")
	path := writeConfig(t, `
server:
  port: ${RAILSHIELD_TEST_PORT}
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
}

// TestValidate covers the rejection table.
func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		errHas string
	}{
		{"zero port", func(c *config.Config) { c.Server.Port = 0 }, "invalid port"},
		{"port too high", func(c *config.Config) { c.Server.Port = 70000 }, "invalid port"},
		{"unknown driver", func(c *config.Config) { c.Database.Driver = "postgres" }, "unsupported database driver"},
		{"sqlite without path", func(c *config.Config) { c.Database.Path = "" }, "database path is required"},
		{"escalate below verify", func(c *config.Config) { c.Validation.EscalateThreshold = 5 }, "escalate_threshold"},
		{"dispute above verify", func(c *config.Config) { c.Validation.DisputeThreshold = 15 }, "dispute_threshold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errHas)
		})
	}
}

// TestGenerateSample verifies the sample file round-trips through Load.
func TestGenerateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, config.GenerateSample(path))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}
