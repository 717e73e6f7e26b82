// Option functions for configuring Server.

package api

import (
	"log/slog"
	"time"
)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for request and lifecycle logs.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// WithAddr sets the listen address used by Run.
func WithAddr(addr string) Option {
	return func(s *Server) {
		s.addr = addr
	}
}

// WithTimeouts sets the HTTP read and write timeouts. Non-positive values
// keep the defaults.
func WithTimeouts(read, write time.Duration) Option {
	return func(s *Server) {
		if read > 0 {
			s.readTimeout = read
		}
		if write > 0 {
			s.writeTimeout = write
		}
	}
}

// WithShutdownTimeout bounds graceful shutdown once the serve context ends.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// WithCORSOrigins restricts cross-origin requests to the given origins.
// If not set, every origin is allowed.
func WithCORSOrigins(origins ...string) Option {
	return func(s *Server) {
		s.corsOrigins = origins
	}
}

// WithMetrics exposes Prometheus metrics at path.
func WithMetrics(path string) Option {
	return func(s *Server) {
		s.metricsEnabled = true
		if path != "" {
			s.metricsPath = path
		}
	}
}

// WithoutMetrics disables the metrics endpoint and request instrumentation.
func WithoutMetrics() Option {
	return func(s *Server) {
		s.metricsEnabled = false
	}
}

// WithVersion sets the build version reported by the index and metrics.
func WithVersion(version string) Option {
	return func(s *Server) {
		s.buildVersion = version
	}
}

// WithClock overrides the time source used for health timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		if now != nil {
			s.now = now
		}
	}
}
