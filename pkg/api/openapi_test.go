package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/hrmockd/pkg/dataset"
)

func TestLoadDocument(t *testing.T) {
	t.Parallel()

	doc, err := LoadDocument(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "3.0.3", doc.T().OpenAPI)
	assert.NotEmpty(t, doc.JSON())

	for _, k := range dataset.Kinds() {
		path := CollectionPath(k)
		assert.NotNil(t, doc.T().Paths.Find(path), path)
		assert.NotNil(t, doc.T().Paths.Find(path+"/{id}"), path)
	}
}

// TestResponsesConformToDocument replays a request against every route and
// validates the recorded response with openapi3filter.
func TestResponsesConformToDocument(t *testing.T) {
	t.Parallel()
	snap := snapshot(t)
	srv := newTestServer(t)
	h := srv.Handler()

	type call struct {
		method string
		target string
		body   string
		status int
	}
	calls := []call{
		{http.MethodGet, "/", "", http.StatusOK},
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodPost, "/oauth/token", "grant_type=client_credentials&client_id=a&client_secret=b", http.StatusOK},
		{http.MethodPost, "/oauth/token", "grant_type=client_credentials", http.StatusBadRequest},
	}
	for _, k := range dataset.Kinds() {
		records, err := snap.Records(k)
		require.NoError(t, err)
		require.NotEmpty(t, records)

		path := CollectionPath(k)
		calls = append(calls,
			call{http.MethodGet, path, "", http.StatusOK},
			call{http.MethodGet, path + "?page=2&itemsPerPage=5", "", http.StatusOK},
			call{http.MethodGet, path + "/does-not-exist", "", http.StatusNotFound},
		)
		for _, id := range recordIDs(t, h, path) {
			calls = append(calls, call{http.MethodGet, path + "/" + id, "", http.StatusOK})
		}
	}

	for _, c := range calls {
		t.Run(c.method+" "+c.target, func(t *testing.T) {
			rec := do(t, h, c.method, c.target, c.body)
			require.Equal(t, c.status, rec.Code, rec.Body.String())

			req := httptest.NewRequest(c.method, c.target, nil)
			if c.body != "" {
				req = httptest.NewRequest(c.method, c.target, strings.NewReader(c.body))
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			}
			err := srv.doc.ValidateRecorded(context.Background(), req, rec.Result())
			assert.NoError(t, err)
		})
	}
}

// recordIDs returns every id on the first page of a list route, so the
// detail check covers nullable and optional fields across several records.
func recordIDs(t *testing.T, h http.Handler, path string) []string {
	t.Helper()
	page := decode[struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}](t, do(t, h, http.MethodGet, path, ""))

	ids := make([]string, 0, len(page.Data))
	for _, r := range page.Data {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestValidateResponse_RejectsNonConforming(t *testing.T) {
	t.Parallel()

	doc, err := LoadDocument(context.Background())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	header := http.Header{"Content-Type": []string{"application/json"}}

	err = doc.ValidateResponse(context.Background(), req, http.StatusOK, header, []byte(`{"status":"healthy"}`))
	assert.Error(t, err)

	err = doc.ValidateResponse(context.Background(), httptest.NewRequest(http.MethodGet, "/unknown/route", nil), http.StatusOK, header, nil)
	assert.ErrorContains(t, err, "no matching route")
}
