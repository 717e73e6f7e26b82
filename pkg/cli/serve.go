package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/getmockd/hrmockd/pkg/api"
	"github.com/getmockd/hrmockd/pkg/config"
	"github.com/getmockd/hrmockd/pkg/dataset"
	"github.com/getmockd/hrmockd/pkg/logging"
	"github.com/getmockd/hrmockd/pkg/oauth"
)

// serveFlags holds values bound to serve's flags. They override the loaded
// configuration only when set on the command line.
type serveFlags struct {
	configFile string
	host       string
	port       int
	seed       int64
	logLevel   string
	logFormat  string
	tokenTTL   time.Duration
	corsOrigin []string
	metrics    bool
}

func newServeCmd() *cobra.Command {
	var f serveFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Generate the dataset and serve the HR mock API (default command)",
		Long: `Generate a fresh synthetic HR dataset and serve it over HTTP until interrupted.

Precedence, highest first: flags, environment variables, the YAML config file,
built-in defaults.`,
		Example: `  # Start with defaults on port 3000
  hrmockd serve

  # Reproducible data on a custom port
  hrmockd serve --port 8080 --seed 42

  # Load a config file and log JSON
  hrmockd serve --config hrmockd.yaml --log-format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(f.configFile)
			if err != nil {
				return err
			}
			if err := f.apply(cmd.Flags(), cfg); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg, cmd.ErrOrStderr())
		},
	}

	f.register(cmd.Flags())
	return cmd
}

func (f *serveFlags) register(fl *pflag.FlagSet) {
	fl.StringVarP(&f.configFile, "config", "c", "", "Path to a YAML configuration file")
	fl.StringVar(&f.host, "host", "", "Listen host (default: all interfaces)")
	fl.IntVarP(&f.port, "port", "p", config.DefaultPort, "HTTP server port")
	fl.Int64Var(&f.seed, "seed", 0, "Dataset seed; 0 draws fresh randomness")
	fl.StringVar(&f.logLevel, "log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	fl.StringVar(&f.logFormat, "log-format", config.DefaultLogFormat, "Log format (text, json)")
	fl.DurationVar(&f.tokenTTL, "token-ttl", config.DefaultTokenTTL, "Access token lifetime")
	fl.StringSliceVar(&f.corsOrigin, "cors-origin", nil, "Allowed CORS origin (repeatable; default: all)")
	fl.BoolVar(&f.metrics, "metrics", true, "Expose Prometheus metrics")
}

// apply copies explicitly set flags onto cfg and revalidates it.
func (f *serveFlags) apply(fl *pflag.FlagSet, cfg *config.Config) error {
	if fl.Changed("host") {
		cfg.Server.Host = f.host
	}
	if fl.Changed("port") {
		cfg.Server.Port = f.port
	}
	if fl.Changed("seed") {
		cfg.Dataset.Seed = f.seed
	}
	if fl.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if fl.Changed("log-format") {
		cfg.Log.Format = f.logFormat
	}
	if fl.Changed("token-ttl") {
		cfg.OAuth.TokenTTL = f.tokenTTL
	}
	if fl.Changed("cors-origin") {
		cfg.CORS.AllowedOrigins = f.corsOrigin
	}
	if fl.Changed("metrics") {
		cfg.Metrics.Enabled = f.metrics
	}
	return cfg.Validate()
}

// newServer wires the dataset, token provider and API server from cfg.
func newServer(cfg *config.Config, logOut io.Writer) (*api.Server, *slog.Logger, error) {
	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: logging.ParseFormat(cfg.Log.Format),
		Output: logOut,
	})

	start := time.Now()
	snap, err := dataset.Build(dataset.Options{Seed: cfg.Dataset.Seed})
	if err != nil {
		return nil, nil, fmt.Errorf("generate dataset: %w", err)
	}
	counts := snap.Counts()
	log.Info("dataset generated",
		"records", counts.Total(),
		"users", counts.Users,
		"employees", counts.Employees,
		"leaveRequests", counts.LeaveRequests,
		"seeded", cfg.Dataset.Seed != 0,
		"duration", time.Since(start),
	)

	provider, err := oauth.NewProvider(oauth.Config{
		Secret: []byte(cfg.OAuth.TokenSecret),
		TTL:    cfg.OAuth.TokenTTL,
		Issuer: cfg.OAuth.Issuer,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create token provider: %w", err)
	}

	opts := []api.Option{
		api.WithLogger(log),
		api.WithAddr(cfg.Server.Addr()),
		api.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout),
		api.WithShutdownTimeout(cfg.Server.ShutdownTimeout),
		api.WithVersion(buildVersion().Version),
	}
	if len(cfg.CORS.AllowedOrigins) > 0 {
		opts = append(opts, api.WithCORSOrigins(cfg.CORS.AllowedOrigins...))
	}
	if cfg.Metrics.Enabled {
		opts = append(opts, api.WithMetrics(cfg.Metrics.Path))
	} else {
		opts = append(opts, api.WithoutMetrics())
	}

	srv, err := api.New(snap, provider, opts...)
	if err != nil {
		return nil, nil, err
	}
	return srv, log, nil
}

func runServe(ctx context.Context, cfg *config.Config, logOut io.Writer) error {
	srv, log, err := newServer(cfg, logOut)
	if err != nil {
		return err
	}
	if err := srv.Run(ctx); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}
