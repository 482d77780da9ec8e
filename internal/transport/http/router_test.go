package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stanpulse/internal/config"
)

func testServer(t *testing.T) (*httptest.Server, *config.Paths) {
	t.Helper()

	dir := t.TempDir()
	paths := &config.Paths{
		ReportsDir: filepath.Join(dir, "reports"),
		InputDir:   filepath.Join(dir, "input"),
	}

	cfg := config.Default().Server
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv := httptest.NewServer(NewRouter(cfg, paths, logger, nil))
	t.Cleanup(srv.Close)
	return srv, paths
}

func writeReport(t *testing.T, paths *config.Paths, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(paths.ReportsDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(paths.ReportsDir, name), []byte(content), 0o644))
}

func TestHealthCheck(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestRequestIDHeader(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestRequestIDPropagated(t *testing.T) {
	srv, _ := testServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "test-trace-123")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "test-trace-123", resp.Header.Get("X-Request-ID"))
}

func TestListReportsEmpty(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Get(srv.URL + "/api/reports")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Reports []ReportInfo `json:"reports"`
		Count   int          `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 0, body.Count)
	assert.Empty(t, body.Reports)
}

func TestListReports(t *testing.T) {
	srv, paths := testServer(t)
	writeReport(t, paths, "field_scores.csv", "a,b\n1,2\n")
	writeReport(t, paths, "agg_division.csv", "c,d\n3,4\n")

	resp, err := http.Get(srv.URL + "/api/reports")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body struct {
		Reports []ReportInfo `json:"reports"`
		Count   int          `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, 2, body.Count)
	assert.Equal(t, "agg_division.csv", body.Reports[0].Name)
	assert.Equal(t, "field_scores.csv", body.Reports[1].Name)
}

func TestDownloadReport(t *testing.T) {
	srv, paths := testServer(t)
	writeReport(t, paths, "field_scores.csv", "a,b\n1,2\n")

	resp, err := http.Get(srv.URL + "/api/reports/field_scores.csv")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")

	content, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(content))
}

func TestDownloadReportNotFound(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Get(srv.URL + "/api/reports/missing.csv")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDownloadReportRejectsNonCSV(t *testing.T) {
	srv, paths := testServer(t)
	writeReport(t, paths, "notes.txt", "secret")

	resp, err := http.Get(srv.URL + "/api/reports/notes.txt")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestValidReportName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "plain csv", input: "field_scores.csv", want: true},
		{name: "uppercase extension", input: "REPORT.CSV", want: true},
		{name: "empty", input: "", want: false},
		{name: "traversal", input: "../secrets.csv", want: false},
		{name: "nested path", input: "sub/dir.csv", want: false},
		{name: "wrong extension", input: "report.xlsx", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validReportName(tt.input))
		})
	}
}

func TestRecovererReturns500(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := Recoverer(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRateLimiter(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	rl := NewRateLimiter(1, 1, logger)
	handler := rl.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
