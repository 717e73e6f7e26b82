package api

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/rs/cors"

	"github.com/getmockd/hrmockd/pkg/httputil"
)

// withMiddleware wraps the mux. Order (outermost to innermost):
// CORS -> logging -> metrics -> panic recovery -> handler.
func (s *Server) withMiddleware(handler http.Handler) http.Handler {
	h := recoverMiddleware(s.log, handler)
	if s.metrics != nil {
		h = s.metrics.middleware(s.mux, h)
	}
	h = loggingMiddleware(s.log, h)
	return s.cors().Handler(h)
}

func (s *Server) cors() *cors.Cors {
	opts := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "Accept", "X-Requested-With"},
	}
	if len(s.corsOrigins) > 0 {
		opts.AllowedOrigins = s.corsOrigins
	}
	return cors.New(opts)
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (r *statusRecorder) WriteHeader(status int) {
	if r.wroteHeader {
		return
	}
	r.status = status
	r.wroteHeader = true
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	return r.ResponseWriter.Write(b)
}

// Unwrap returns the underlying ResponseWriter for http.ResponseController.
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// loggingMiddleware logs method, path, status and duration for every request.
func loggingMiddleware(log *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)
		next.ServeHTTP(rec, r)
		log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

// recoverMiddleware turns a handler panic into the generic 500 problem.
// http.ErrAbortHandler is re-raised so net/http can drop the connection.
func recoverMiddleware(log *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := newStatusRecorder(w)
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			log.Error("handler panic",
				"method", r.Method,
				"path", r.URL.Path,
				"panic", v,
				"stack", string(debug.Stack()),
			)
			if !rec.wroteHeader {
				httputil.WriteInternalError(rec)
			}
		}()
		next.ServeHTTP(rec, r)
	})
}
