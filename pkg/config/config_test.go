package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hrmockd.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()
	cfg := Default()

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 30*time.Minute, cfg.OAuth.TokenTTL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Zero(t, cfg.Dataset.Seed)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_DefaultsOnly(t *testing.T) {
	t.Parallel()
	cfg, err := load("", map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	t.Parallel()
	path := writeFile(t, `
server:
  host: 127.0.0.1
  port: 8081
  shutdownTimeout: 2s
dataset:
  seed: 99
oauth:
  tokenTTL: 5m
log:
  level: DEBUG
  format: json
cors:
  allowedOrigins: [https://a.example]
`)

	cfg, err := load(path, map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout, "unset keys keep defaults")
	assert.Equal(t, int64(99), cfg.Dataset.Seed)
	assert.Equal(t, 5*time.Minute, cfg.OAuth.TokenTTL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, []string{"https://a.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "127.0.0.1:8081", cfg.Server.Addr())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "server:\n  port: 8081\ndataset:\n  seed: 1\n")

	cfg, err := load(path, map[string]string{
		"PORT":                 "9090",
		"HRMOCKD_SEED":         "7",
		"HRMOCKD_TOKEN_SECRET": "s3cret",
		"HRMOCKD_TOKEN_TTL":    "1h",
		"HRMOCKD_CORS_ORIGINS": "https://a.example,https://b.example",
		"HRMOCKD_LOG_FORMAT":   "JSON",
	})
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, int64(7), cfg.Dataset.Seed)
	assert.Equal(t, "s3cret", cfg.OAuth.TokenSecret)
	assert.Equal(t, time.Hour, cfg.OAuth.TokenTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Parallel()
	_, err := load("", map[string]string{"PORT": "not-a-number"})
	assert.Error(t, err)
}

func TestLoad_Validation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		env   map[string]string
		field string
	}{
		{"port too large", map[string]string{"PORT": "70000"}, "Server.Port"},
		{"port zero", map[string]string{"PORT": "0"}, "Server.Port"},
		{"bad level", map[string]string{"HRMOCKD_LOG_LEVEL": "trace"}, "Log.Level"},
		{"bad format", map[string]string{"HRMOCKD_LOG_FORMAT": "xml"}, "Log.Format"},
		{"zero ttl", map[string]string{"HRMOCKD_TOKEN_TTL": "0s"}, "OAuth.TokenTTL"},
		{"metrics path", map[string]string{"HRMOCKD_METRICS_PATH": "metrics"}, "Metrics.Path"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := load("", tt.env)
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %T: %v", err, err)
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, 400, verr.StatusCode())
		})
	}
}

func TestLoad_FileErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := load(filepath.Join(t.TempDir(), "absent.yaml"), map[string]string{})
		var cerr *ConfigError
		require.ErrorAs(t, err, &cerr)
		assert.Contains(t, cerr.Path, "absent.yaml")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "server: [unclosed\n")
		_, err := load(path, map[string]string{})
		var cerr *ConfigError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, path, cerr.Path)
	})

	t.Run("wrong type", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "server:\n  port: lots\n")
		_, err := load(path, map[string]string{})
		var cerr *ConfigError
		assert.ErrorAs(t, err, &cerr)
	})
}

func TestValidate_NormalizesCase(t *testing.T) {
	t.Parallel()
	cfg := Default()
	cfg.Log.Level = "WARN"
	cfg.Log.Format = "Json"

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_SampleFile(t *testing.T) {
	t.Parallel()
	cfg, err := load(filepath.Join("..", "..", "examples", "hrmockd.yaml"), map[string]string{})
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "127.0.0.1:3000", cfg.Server.Addr())
	assert.Equal(t, int64(42), cfg.Dataset.Seed)
	assert.Equal(t, 30*time.Minute, cfg.OAuth.TokenTTL)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Metrics.Enabled)
}
