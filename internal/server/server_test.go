package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numex/pkg/api"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer() *Server {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func doJSON(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	s := newTestServer()
	w := doJSON(t, s, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestSolveOK(t *testing.T) {
	s := newTestServer()
	w := doJSON(t, s, http.MethodPost, "/api/v1/solve",
		`{"id":"web1","numbers":[3,5],"target":8}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res api.ResultV1
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "web1", res.PuzzleID)
	assert.Equal(t, "B", res.Level)
	require.NotEmpty(t, res.Exact)
	assert.Equal(t, "3+5", res.Exact[0].Expr)
	assert.Equal(t, 8, res.Exact[0].Value)
}

func TestSolveNoExactReturnsClosest(t *testing.T) {
	s := newTestServer()
	w := doJSON(t, s, http.MethodPost, "/api/v1/solve",
		`{"numbers":[2,3],"target":100}`)
	require.Equal(t, http.StatusOK, w.Code)

	var res api.ResultV1
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Empty(t, res.Exact)
	require.NotNil(t, res.Closest)
	assert.Equal(t, 94, res.Closest.Distance)
}

func TestSolveLevelGating(t *testing.T) {
	s := newTestServer()
	w := doJSON(t, s, http.MethodPost, "/api/v1/solve",
		`{"numbers":[2,5],"target":32,"level":"1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var res api.ResultV1
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NotEmpty(t, res.Exact)
	assert.Equal(t, "2^5", res.Exact[0].Expr)
}

func TestSolveBadRequest(t *testing.T) {
	s := newTestServer()
	for name, body := range map[string]string{
		"empty_numbers":   `{"numbers":[],"target":5}`,
		"missing_numbers": `{"target":5}`,
		"negative_number": `{"numbers":[1,-2],"target":5}`,
		"bad_level":       `{"numbers":[1,2],"target":3,"level":"9"}`,
		"not_json":        `nope`,
	} {
		t.Run(name, func(t *testing.T) {
			w := doJSON(t, s, http.MethodPost, "/api/v1/solve", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRequestIDEchoed(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))

	w2 := doJSON(t, s, http.MethodGet, "/healthz", "")
	assert.NotEmpty(t, w2.Header().Get("X-Request-ID"))
}

func TestMetricsExposed(t *testing.T) {
	s := newTestServer()
	_ = doJSON(t, s, http.MethodPost, "/api/v1/solve",
		`{"numbers":[3,5],"target":8}`)

	w := doJSON(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `numex_solves_total{status="solved"} 1`)
	assert.Contains(t, body, "numex_solve_duration_seconds")
}

func TestRepeatSolveHitsCache(t *testing.T) {
	s := newTestServer()
	for i := 0; i < 3; i++ {
		w := doJSON(t, s, http.MethodPost, "/api/v1/solve",
			`{"numbers":[3,5],"target":8}`)
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := doJSON(t, s, http.MethodGet, "/metrics", "")
	assert.Contains(t, w.Body.String(), "numex_cache_hits_total 2")
	assert.Contains(t, w.Body.String(), `numex_solves_total{status="solved"} 3`)
}

func TestSolveEchoesPuzzle(t *testing.T) {
	s := newTestServer()
	w := doJSON(t, s, http.MethodPost, "/api/v1/solve",
		`{"numbers":[1,2,3,4],"target":10}`)
	require.Equal(t, http.StatusOK, w.Code)

	var res api.ResultV1
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, []int{1, 2, 3, 4}, res.Numbers)
	assert.Equal(t, 10, res.Target)
}
