package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symptom-checker-server/internal/domain"
	"github.com/symptom-checker-server/internal/history"
	"github.com/symptom-checker-server/internal/service"
)

// stubResolver simulates the provider path.
type stubResolver struct {
	mode   string
	model  string
	result *domain.DiagnosticResult
	err    error
}

func (s *stubResolver) Mode() string        { return s.mode }
func (s *stubResolver) ActiveModel() string { return s.model }

func (s *stubResolver) Analyze(ctx context.Context, symptoms, language string) (*domain.DiagnosticResult, domain.AnalysisSource, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	return s.result, domain.SourceLocal, nil
}

func testConfig() *domain.Config {
	return &domain.Config{
		Server: domain.ServerConfig{
			Host:         "127.0.0.1",
			Port:         3001,
			MaxBodyBytes: 1 << 20,
		},
		Logging: domain.LoggingConfig{Level: "error"},
	}
}

func newTestServer(t *testing.T, resolver AnalysisResolver, store history.Store) *Server {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	engine := service.NewEngine(logger)
	return NewServer(testConfig(), logger, engine, resolver, store)
}

func doRequest(s *Server, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestHealthRulesOnly(t *testing.T) {
	server := newTestServer(t, nil, nil)

	w := doRequest(server, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "rules", body["mode"])
}

func TestHealthReportsResolverModeAndModel(t *testing.T) {
	server := newTestServer(t, &stubResolver{mode: "auto", model: "llama3.1:8b"}, nil)

	w := doRequest(server, http.MethodGet, "/health", "")

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "auto", body["mode"])
	assert.Equal(t, "llama3.1:8b", body["model"])
}

func TestAnalyzeInvalidJSON(t *testing.T) {
	server := newTestServer(t, nil, nil)

	w := doRequest(server, http.MethodPost, "/api/analyze", "{not json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid JSON body")
}

func TestAnalyzeEmptySymptoms(t *testing.T) {
	server := newTestServer(t, nil, nil)

	w := doRequest(server, http.MethodPost, "/api/analyze", `{"symptoms":"   ","language":"en"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "symptoms is required")
}

func TestAnalyzeRuleBased(t *testing.T) {
	server := newTestServer(t, nil, nil)

	w := doRequest(server, http.MethodPost, "/api/analyze", `{"symptoms":"I have a fever","language":"en"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var result domain.DiagnosticResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "en", result.Language)
	require.NotEmpty(t, result.Diagnoses)
	assert.Equal(t, "Influenza (Flu)", result.Diagnoses[0].Condition)
}

func TestAnalyzeDefaultsLanguage(t *testing.T) {
	server := newTestServer(t, nil, nil)

	w := doRequest(server, http.MethodPost, "/api/analyze", `{"symptoms":"fever"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var result domain.DiagnosticResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "en", result.Language)
}

func TestAnalyzeUsesResolver(t *testing.T) {
	provided := &domain.DiagnosticResult{
		ID:        "provider-1",
		Timestamp: time.Now().UTC(),
		Language:  "en",
		Symptoms:  "fever",
		Diagnoses: []domain.Diagnosis{{Condition: "Influenza (Flu)", Confidence: 0.8}},
	}
	server := newTestServer(t, &stubResolver{mode: "local", result: provided}, nil)

	w := doRequest(server, http.MethodPost, "/api/analyze", `{"symptoms":"fever","language":"en"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var result domain.DiagnosticResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "provider-1", result.ID)
}

func TestAnalyzeFallsBackOnProviderError(t *testing.T) {
	server := newTestServer(t, &stubResolver{mode: "auto", err: errors.New("all providers down")}, nil)

	w := doRequest(server, http.MethodPost, "/api/analyze", `{"symptoms":"I have a fever","language":"en"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var result domain.DiagnosticResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.NotEmpty(t, result.Diagnoses)
	assert.Equal(t, "Influenza (Flu)", result.Diagnoses[0].Condition)
}

func TestAnalyzeBodyTooLarge(t *testing.T) {
	cfg := testConfig()
	cfg.Server.MaxBodyBytes = 64
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	server := NewServer(cfg, logger, service.NewEngine(logger), nil, nil)

	payload := `{"symptoms":"` + strings.Repeat("a", 256) + `","language":"en"}`
	w := doRequest(server, http.MethodPost, "/api/analyze", payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// failingStore always errors on Save to exercise the best-effort
// persistence path.
type failingStore struct{}

func (failingStore) Save(ctx context.Context, record *history.Record) error {
	return errors.New("disk full")
}
func (failingStore) Get(ctx context.Context, id string) (*history.Record, error) {
	return nil, nil
}

func (failingStore) List(ctx context.Context, limit, offset int) ([]*history.Record, error) {
	return nil, nil
}

func (failingStore) Count(ctx context.Context) (int64, error) { return 0, nil }

func (failingStore) Delete(ctx context.Context, id string) error { return nil }

func (failingStore) ExportJSON(ctx context.Context, writer io.Writer) error { return nil }

func (failingStore) Close() error { return nil }

func TestAnalyzeSucceedsWhenStoreSaveFails(t *testing.T) {
	server := newTestServer(t, nil, failingStore{})

	w := doRequest(server, http.MethodPost, "/api/analyze", `{"symptoms":"I have a fever","language":"en"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var result domain.DiagnosticResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.NotEmpty(t, result.ID)
	require.NotEmpty(t, result.Diagnoses)
	assert.Equal(t, "Influenza (Flu)", result.Diagnoses[0].Condition)
}

func TestAnalyzePersistsHistory(t *testing.T) {
	store, err := history.NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	server := newTestServer(t, nil, store)

	w := doRequest(server, http.MethodPost, "/api/analyze", `{"symptoms":"fever","language":"en"}`)
	require.Equal(t, http.StatusOK, w.Code)

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	records, err := store.List(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.SourceRules, records[0].Source)
}

func TestHistoryDisabled(t *testing.T) {
	server := newTestServer(t, nil, nil)

	assert.Equal(t, http.StatusServiceUnavailable, doRequest(server, http.MethodGet, "/api/history", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, doRequest(server, http.MethodGet, "/api/history/some-id", "").Code)
}

func TestHistoryListAndGet(t *testing.T) {
	store, err := history.NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	server := newTestServer(t, nil, store)

	w := doRequest(server, http.MethodPost, "/api/analyze", `{"symptoms":"fever","language":"en"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var result domain.DiagnosticResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

	listResp := doRequest(server, http.MethodGet, "/api/history", "")
	require.Equal(t, http.StatusOK, listResp.Code)
	var listBody struct {
		Total   int64             `json:"total"`
		Records []*history.Record `json:"records"`
	}
	require.NoError(t, json.Unmarshal(listResp.Body.Bytes(), &listBody))
	assert.Equal(t, int64(1), listBody.Total)
	require.Len(t, listBody.Records, 1)

	getResp := doRequest(server, http.MethodGet, "/api/history/"+result.ID, "")
	require.Equal(t, http.StatusOK, getResp.Code)

	missingResp := doRequest(server, http.MethodGet, "/api/history/does-not-exist", "")
	assert.Equal(t, http.StatusNotFound, missingResp.Code)
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = domain.RateLimitConfig{RequestsPerSecond: 1, Burst: 1}
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	server := NewServer(cfg, logger, service.NewEngine(logger), nil, nil)

	first := doRequest(server, http.MethodPost, "/api/analyze", `{"symptoms":"fever"}`)
	require.Equal(t, http.StatusOK, first.Code)

	second := doRequest(server, http.MethodPost, "/api/analyze", `{"symptoms":"fever"}`)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestCORSPreflight(t *testing.T) {
	server := newTestServer(t, nil, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/analyze", nil)
	w := httptest.NewRecorder()
	server.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDHeader(t *testing.T) {
	server := newTestServer(t, nil, nil)

	w := doRequest(server, http.MethodGet, "/health", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	rec := httptest.NewRecorder()
	server.router.ServeHTTP(rec, req)
	assert.Equal(t, "fixed-id", rec.Header().Get("X-Request-ID"))
}
