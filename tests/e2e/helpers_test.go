//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/jobtracker-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/jobtracker-backend/internal/adapter/storage/local"
	"github.com/heartmarshall/jobtracker-backend/internal/app"
	"github.com/heartmarshall/jobtracker-backend/internal/config"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Config *config.Config
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper) and a temporary upload dir.
// The extraction provider points at an unroutable address so no test can
// reach the network by accident.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	dir := t.TempDir()
	cfg := &config.Config{
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Content-Type,X-Request-Id",
			MaxAge:         86400,
		},
		Storage: config.StorageConfig{
			ResumeDir:           filepath.Join(dir, "resumes"),
			CoverLetterDir:      filepath.Join(dir, "cover_letters"),
			MaxUploadBytes:      1 << 20,
			DeleteFilesOnRemove: true,
			OrphanRetention:     time.Hour,
		},
		Extraction: config.ExtractionConfig{
			CredentialKey:      "anthropic_api_key",
			Model:              "claude-sonnet-4-5",
			BaseURL:            "http://127.0.0.1:9",
			MaxTokens:          256,
			Timeout:            5 * time.Second,
			FetchTimeout:       2 * time.Second,
			MaxPageBytes:       1 << 20,
			MaxTextChars:       10000,
			UserAgent:          "jobtracker-e2e",
			RateLimitPerMinute: 100,
		},
	}

	store, err := local.New(cfg.Storage, logger)
	require.NoError(t, err)

	handler, stop := app.NewHandler(cfg, logger, pool, store)
	t.Cleanup(stop)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Config: cfg,
	}
}

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

type upload struct {
	Field, Name, Content string
}

// postMultipart sends a multipart form and returns status + raw body.
func (ts *testServer) postMultipart(t *testing.T, path string, fields map[string]string, files ...upload) (int, []byte) {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		part, err := mw.CreateFormFile(f.Field, f.Name)
		require.NoError(t, err)
		_, err = io.WriteString(part, f.Content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return ts.do(t, req)
}

// doJSON sends v as a JSON body (nil for none) and returns status + raw body.
func (ts *testServer) doJSON(t *testing.T, method, path string, v any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if v != nil {
		b, err := json.Marshal(v)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if v != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return ts.do(t, req)
}

func (ts *testServer) do(t *testing.T, req *http.Request) (int, []byte) {
	t.Helper()

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v), "body: %s", body)
	return v
}

// applicationFields returns a valid create form for company.
func applicationFields(company string) map[string]string {
	return map[string]string{
		"company_name": company,
		"job_title":    "Backend Engineer",
		"job_id":       "BE-1",
		"job_url":      "https://jobs.example.com/be-1",
		"date_applied": "2026-03-01",
		"email_used":   "me@example.com",
		"source":       "linkedin",
	}
}

func resumeUpload() upload {
	return upload{Field: "resume", Name: "cv.pdf", Content: "%PDF-1.4 e2e"}
}
