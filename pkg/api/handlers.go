package api

import (
	"errors"
	"net/http"

	"github.com/getmockd/hrmockd/pkg/dataset"
	"github.com/getmockd/hrmockd/pkg/httputil"
	"github.com/getmockd/hrmockd/pkg/query"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status       string         `json:"status"`
	Timestamp    string         `json:"timestamp"`
	TotalRecords dataset.Counts `json:"totalRecords"`
}

// IndexResponse is the body of GET /.
type IndexResponse struct {
	Message       string            `json:"message"`
	Version       string            `json:"version"`
	Endpoints     map[string]string `json:"endpoints"`
	Documentation string            `json:"documentation"`
}

// timestampLayout renders UTC with millisecond precision.
const timestampLayout = "2006-01-02T15:04:05.000Z"

func handleList[T any](c *query.Collection[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteOK(w, c.List(parseParams(r.URL.Query())))
	}
}

func handleGet[T any](k dataset.Kind, c *query.Collection[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := c.Get(r.PathValue("id"))
		if errors.Is(err, query.ErrNotFound) {
			httputil.WriteNotFound(w, k.Label()+" not found")
			return
		}
		if err != nil {
			httputil.WriteInternalError(w)
			return
		}
		httputil.WriteOK(w, rec)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteOK(w, HealthResponse{
		Status:       "healthy",
		Timestamp:    s.now().UTC().Format(timestampLayout),
		TotalRecords: s.snap.Counts(),
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	endpoints := map[string]string{
		"oauth":  "POST /oauth/token",
		"health": "GET /health",
	}
	for _, k := range dataset.Kinds() {
		endpoints[k.Key()] = "GET " + CollectionPath(k)
	}
	httputil.WriteOK(w, IndexResponse{
		Message:       "HR Mock API for data-lake integration testing",
		Version:       APIVersion,
		Endpoints:     endpoints,
		Documentation: "Each endpoint supports pagination with ?page=1&itemsPerPage=20 parameters",
	})
}

func (s *Server) handleOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(s.doc.JSON())
}

func handleNotFound(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteNotFound(w, "Not Found")
}
