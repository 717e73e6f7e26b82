// Package config loads hrmockd runtime configuration.
//
// Values are layered, later layers winning: built-in defaults, an optional
// YAML file, then environment variables. Command-line flags are applied on
// top by the CLI before the final Validate call.
package config

import (
	"net"
	"strconv"
	"time"
)

// Defaults.
const (
	DefaultPort            = 3000
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultTokenTTL        = 30 * time.Minute
	DefaultTokenIssuer     = "hrmockd"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultMetricsPath     = "/metrics"
)

// Config is the full runtime configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Dataset DatasetConfig `yaml:"dataset"`
	OAuth   OAuthConfig   `yaml:"oauth"`
	Log     LogConfig     `yaml:"log"`
	CORS    CORSConfig    `yaml:"cors"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host            string        `yaml:"host" env:"HRMOCKD_HOST"`
	Port            int           `yaml:"port" env:"PORT" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"readTimeout" env:"HRMOCKD_READ_TIMEOUT" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"writeTimeout" env:"HRMOCKD_WRITE_TIMEOUT" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout" env:"HRMOCKD_SHUTDOWN_TIMEOUT" validate:"gt=0"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// DatasetConfig controls generation. A zero seed draws fresh entropy.
type DatasetConfig struct {
	Seed int64 `yaml:"seed" env:"HRMOCKD_SEED"`
}

// OAuthConfig configures the token endpoint. An empty secret means a
// random per-process signing key.
type OAuthConfig struct {
	TokenSecret string        `yaml:"tokenSecret" env:"HRMOCKD_TOKEN_SECRET"`
	TokenTTL    time.Duration `yaml:"tokenTTL" env:"HRMOCKD_TOKEN_TTL" validate:"gt=0"`
	Issuer      string        `yaml:"issuer" env:"HRMOCKD_TOKEN_ISSUER" validate:"required"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level  string `yaml:"level" env:"HRMOCKD_LOG_LEVEL" validate:"oneof=debug info warn warning error"`
	Format string `yaml:"format" env:"HRMOCKD_LOG_FORMAT" validate:"oneof=text json"`
}

// CORSConfig lists allowed origins. Empty means every origin.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowedOrigins" env:"HRMOCKD_CORS_ORIGINS" envSeparator:","`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"HRMOCKD_METRICS_ENABLED"`
	Path    string `yaml:"path" env:"HRMOCKD_METRICS_PATH" validate:"startswith=/"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            DefaultPort,
			ReadTimeout:     DefaultReadTimeout,
			WriteTimeout:    DefaultWriteTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		OAuth: OAuthConfig{
			TokenTTL: DefaultTokenTTL,
			Issuer:   DefaultTokenIssuer,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    DefaultMetricsPath,
		},
	}
}
