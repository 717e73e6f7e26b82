package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/getmockd/hrmockd/pkg/dataset"
	"github.com/getmockd/hrmockd/pkg/logging"
	"github.com/getmockd/hrmockd/pkg/oauth"
)

// Server defaults.
const (
	DefaultAddr            = ":3000"
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultMetricsPath     = "/metrics"

	// APIVersion is the contract version reported by the index route.
	APIVersion = "1.0.0"
)

// Server is the HR mock HTTP API.
type Server struct {
	snap  *dataset.Snapshot
	oauth *oauth.Handler
	doc   *Document
	log   *slog.Logger
	now   func() time.Time

	addr            string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration
	corsOrigins     []string
	metricsEnabled  bool
	metricsPath     string
	buildVersion    string

	mux     *http.ServeMux
	metrics *metrics
	handler http.Handler
}

// New builds a Server over snap. The OpenAPI document is loaded and
// validated here, so a broken document fails startup.
func New(snap *dataset.Snapshot, provider *oauth.Provider, opts ...Option) (*Server, error) {
	if snap == nil {
		return nil, errors.New("api: nil snapshot")
	}
	if provider == nil {
		return nil, errors.New("api: nil token provider")
	}

	s := &Server{
		snap:            snap,
		log:             logging.Nop(),
		now:             time.Now,
		addr:            DefaultAddr,
		readTimeout:     DefaultReadTimeout,
		writeTimeout:    DefaultWriteTimeout,
		shutdownTimeout: DefaultShutdownTimeout,
		metricsEnabled:  true,
		metricsPath:     DefaultMetricsPath,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metricsEnabled {
		if err := checkMetricsPath(s.metricsPath); err != nil {
			return nil, err
		}
	}
	s.oauth = oauth.NewHandler(provider, s.log)

	doc, err := LoadDocument(context.Background())
	if err != nil {
		return nil, err
	}
	s.doc = doc

	if s.metricsEnabled {
		s.metrics = newMetrics(s.buildVersion, snap)
	}

	s.mux = http.NewServeMux()
	s.registerRoutes(s.mux)
	s.handler = s.withMiddleware(s.mux)
	return s, nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully within the shutdown timeout. It closes ln.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.handler,
		ReadTimeout:  s.readTimeout,
		WriteTimeout: s.writeTimeout,
		ErrorLog:     slog.NewLogLogger(s.log.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.log.Info("HR mock API listening", "addr", ln.Addr().String(), "records", s.snap.Counts().Total())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down HR mock API", "timeout", s.shutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

func checkMetricsPath(path string) error {
	switch {
	case !strings.HasPrefix(path, "/"):
		return fmt.Errorf("api: metrics path %q must start with /", path)
	case strings.ContainsAny(path, "{} "):
		return fmt.Errorf("api: metrics path %q must be a literal path", path)
	case path == "/", path == "/health", path == "/openapi.json", path == "/oauth/token",
		strings.HasPrefix(path, CorePrefix+"/"), strings.HasPrefix(path, RecruitmentPrefix+"/"):
		return fmt.Errorf("api: metrics path %q collides with an API route", path)
	}
	return nil
}
