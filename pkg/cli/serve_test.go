package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/hrmockd/pkg/config"
)

func parseServeFlags(t *testing.T, args ...string) (*serveFlags, *pflag.FlagSet) {
	t.Helper()
	var f serveFlags
	fl := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	f.register(fl)
	require.NoError(t, fl.Parse(args))
	return &f, fl
}

func TestServeFlags_OverrideOnlyWhenSet(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Server.Port = 4000
	cfg.Log.Level = "debug"

	f, fl := parseServeFlags(t, "--seed", "42", "--metrics=false", "--cors-origin", "https://a.example,https://b.example")
	require.NoError(t, f.apply(fl, cfg))

	assert.Equal(t, 4000, cfg.Server.Port, "unset flag keeps config value")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, int64(42), cfg.Dataset.Seed)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestServeFlags_AllOverrides(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	f, fl := parseServeFlags(t,
		"-p", "8080",
		"--host", "127.0.0.1",
		"--log-level", "WARN",
		"--log-format", "json",
		"--token-ttl", "5m",
	)
	require.NoError(t, f.apply(fl, cfg))

	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr())
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 5*time.Minute, cfg.OAuth.TokenTTL)
}

func TestServeFlags_Invalid(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	f, fl := parseServeFlags(t, "--port", "70000")
	err := f.apply(fl, cfg)

	var ve *config.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Server.Port", ve.Field)
}

func TestNewServer(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Dataset.Seed = 42
	cfg.Log.Format = "json"

	var logs bytes.Buffer
	srv, log, err := newServer(cfg, &logs)
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.Equal(t, ":3000", srv.Addr())
	assert.Contains(t, logs.String(), `"msg":"dataset generated"`)
	assert.Contains(t, logs.String(), `"records":277`)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, cfg.Metrics.Path, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewServer_MetricsDisabled(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Metrics.Enabled = false

	srv, _, err := newServer(cfg, &bytes.Buffer{})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServeCommand_BadConfigFile(t *testing.T) {
	t.Parallel()

	code, _, errOut := run(t, "serve", "--config", "/nonexistent/hrmockd.yaml")
	assert.Equal(t, 1, code)
	assert.NotEmpty(t, errOut)
}
