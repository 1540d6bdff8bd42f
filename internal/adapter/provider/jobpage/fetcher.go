// Package jobpage downloads job posting pages and reduces them to the
// visible text a reader would see.
package jobpage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/heartmarshall/jobtracker-backend/internal/config"
)

// Fetcher downloads a page and extracts its text.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	maxChars   int
	log        *slog.Logger
}

// NewFetcher creates a Fetcher from the extraction settings. Pages on
// non-public addresses are refused unless cfg.AllowPrivateHosts is set.
func NewFetcher(cfg config.ExtractionConfig, logger *slog.Logger) *Fetcher {
	client := &http.Client{
		Timeout:   cfg.FetchTimeout,
		Transport: newTransport(cfg.AllowPrivateHosts),
	}
	return NewFetcherWithClient(cfg, client, logger)
}

// NewFetcherWithClient creates a Fetcher using a custom HTTP client (for testing).
func NewFetcherWithClient(cfg config.ExtractionConfig, client *http.Client, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		httpClient: client,
		userAgent:  cfg.UserAgent,
		maxBytes:   cfg.MaxPageBytes,
		maxChars:   cfg.MaxTextChars,
		log:        logger.With("adapter", "jobpage"),
	}
}

// FetchText downloads pageURL and returns its visible text, truncated to
// the configured number of characters. The body is read up to the
// configured byte cap; anything beyond is ignored.
func (f *Fetcher) FetchText(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("jobpage: create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,text/plain;q=0.9,*/*;q=0.5")

	start := time.Now()
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("jobpage: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("jobpage: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return "", fmt.Errorf("jobpage: read body: %w", err)
	}

	var text string
	if isPlainText(resp.Header.Get("Content-Type")) {
		text = collapseSpace(string(body))
	} else {
		text, err = visibleText(bytes.NewReader(body))
		if err != nil {
			return "", fmt.Errorf("jobpage: parse html: %w", err)
		}
	}
	text = truncateRunes(text, f.maxChars)

	f.log.DebugContext(ctx, "jobpage fetched",
		slog.String("url", pageURL),
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(body)),
		slog.Int("text_chars", len(text)),
		slog.Duration("duration", time.Since(start)),
	)

	return text, nil
}

func isPlainText(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "text/plain"
}

func truncateRunes(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
