package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/getmockd/hrmockd/pkg/dataset"
	"github.com/getmockd/hrmockd/pkg/oauth"
)

var testNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

var testSnapshot = sync.OnceValues(func() (*dataset.Snapshot, error) {
	return dataset.Build(dataset.Options{Seed: 42, Now: testNow})
})

func snapshot(t *testing.T) *dataset.Snapshot {
	t.Helper()
	snap, err := testSnapshot()
	require.NoError(t, err)
	return snap
}

func newTestServer(t *testing.T, opts ...Option) *Server {
	t.Helper()
	provider, err := oauth.NewProvider(oauth.Config{Secret: []byte("test-secret")})
	require.NoError(t, err)

	opts = append([]Option{WithClock(func() time.Time { return testNow })}, opts...)
	srv, err := New(snapshot(t), provider, opts...)
	require.NoError(t, err)
	return srv
}

func do(t *testing.T, h http.Handler, method, target string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
