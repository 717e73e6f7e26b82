// Package logging provides structured logging configuration for hrmockd.
//
// The package wraps log/slog so the server, the CLI and the HTTP middleware
// share one handler setup.
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelInfo,
//	    Format: logging.FormatJSON,
//	})
//	logger.Info("server started", "addr", ":3000")
//
// Components accept a *slog.Logger in their constructor. If none is
// provided, use logging.Nop().
package logging
