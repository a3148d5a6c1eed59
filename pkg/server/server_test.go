package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/disksort/pkg/observability"
	"github.com/matzehuels/disksort/pkg/pipeline"
)

func newTestServer(t *testing.T) (*Server, *prometheus.Registry) {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	reg := prometheus.NewRegistry()
	return New(pipeline.NewRunner(nil, nil, logger), logger, reg), reg
}

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status": "ok"`)
	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	assert.NoError(t, err, "response should carry a generated request id")
}

func TestRequestIDPropagation(t *testing.T) {
	s, _ := newTestServer(t)
	id := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, id)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, id, rec.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.NotEqual(t, "not-a-uuid", rec.Header().Get(RequestIDHeader))
}

func TestSortLights(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/v1/sort/lawnmower?lights=3", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Before string `json:"before"`
		Result struct {
			After     string `json:"after"`
			SwapCount int    `json:"swap_count"`
		} `json:"result"`
		Steps  []json.RawMessage `json:"steps"`
		Cached bool              `json:"cached"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "D L D L D L", resp.Before)
	assert.Equal(t, "L L L D D D", resp.Result.After)
	assert.Equal(t, 6, resp.Result.SwapCount)
	assert.Empty(t, resp.Steps)
	assert.False(t, resp.Cached)
}

func TestSortRow(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/v1/sort/left-to-right", `{"row": "D L D L", "trace": true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Steps []struct {
			Pass int    `json:"pass"`
			Row  string `json:"row"`
		} `json:"steps"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Steps, 2)
	assert.Equal(t, "L L D D", resp.Steps[1].Row)
}

func TestSortRendered(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/v1/sort/lawnmower?lights=2&format=dot", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "text/vnd.graphviz", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "digraph disks {"))
}

func TestSortErrors(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		body   string
		status int
		code   string
	}{
		{"missing lights", http.MethodGet, "/v1/sort/lawnmower", "", 400, "INVALID_LIGHT_COUNT"},
		{"non-numeric lights", http.MethodGet, "/v1/sort/lawnmower?lights=abc", "", 400, "INVALID_LIGHT_COUNT"},
		{"zero lights", http.MethodGet, "/v1/sort/lawnmower?lights=0", "", 400, "INVALID_LIGHT_COUNT"},
		{"unknown algorithm", http.MethodGet, "/v1/sort/bubble?lights=3", "", 400, "INVALID_ALGORITHM"},
		{"unknown format", http.MethodGet, "/v1/sort/lawnmower?lights=3&format=png", "", 400, "INVALID_FORMAT"},
		{"not alternating", http.MethodPost, "/v1/sort/lawnmower", `{"row": "LDDL"}`, 422, "NOT_ALTERNATING"},
		{"bad row", http.MethodPost, "/v1/sort/lawnmower", `{"row": "DLX"}`, 400, "INVALID_ROW"},
		{"empty row", http.MethodPost, "/v1/sort/lawnmower", `{}`, 400, "INVALID_ROW"},
		{"unknown field", http.MethodPost, "/v1/sort/lawnmower", `{"rows": "DL"}`, 400, "INVALID_INPUT"},
		{"malformed body", http.MethodPost, "/v1/sort/lawnmower", `{`, 400, "INVALID_INPUT"},
		{"no route", http.MethodGet, "/v2/nothing", "", 404, "NOT_FOUND"},
	}
	s, _ := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			resp := decodeError(t, rec)
			assert.Equal(t, tt.code, string(resp.Code))
			assert.NotEmpty(t, resp.Message)
			assert.NotEmpty(t, resp.RequestID)
		})
	}
}

func TestCompare(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/v1/compare?from=1&to=3&algorithm=lawnmower", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Comparisons []struct {
			Lights  int                        `json:"lights"`
			Results map[string]json.RawMessage `json:"results"`
		} `json:"comparisons"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Comparisons, 3)
	assert.Equal(t, 3, resp.Comparisons[2].Lights)
	assert.Contains(t, resp.Comparisons[0].Results, "lawnmower")
	assert.NotContains(t, resp.Comparisons[0].Results, "left-to-right")

	rec = do(t, s, http.MethodGet, "/v1/compare?from=4&to=2", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAlgorithms(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/v1/algorithms", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"algorithms": ["left-to-right", "lawnmower"]}`, rec.Body.String())
}

func TestMetrics(t *testing.T) {
	observability.Reset()
	defer observability.Reset()

	s, reg := newTestServer(t)
	hooks := observability.NewPrometheusHooks(reg)
	observability.SetHTTPHooks(hooks)

	do(t, s, http.MethodGet, "/v1/sort/lawnmower?lights=2", "")
	do(t, s, http.MethodGet, "/v1/sort/left-to-right?lights=2", "")

	got := testutil.ToFloat64(hooks.HTTPRequestsTotal.WithLabelValues("GET", "/v1/sort/{algorithm}", "200"))
	assert.Equal(t, float64(2), got, "both algorithms share one route series")

	rec := do(t, s, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "disksort_http_requests_total")
}
