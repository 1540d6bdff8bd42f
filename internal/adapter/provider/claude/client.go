// Package claude talks to the Anthropic Messages API to validate an API key
// and to turn job posting text into structured fields.
package claude

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/jobtracker-backend/internal/config"
	"github.com/heartmarshall/jobtracker-backend/internal/domain"
)

// Client wraps the Anthropic SDK. The API key is supplied per call because
// it lives in the settings table and may change at runtime.
type Client struct {
	model      string
	maxTokens  int64
	maxRetries int
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client from the extraction settings.
func NewClient(cfg config.ExtractionConfig, logger *slog.Logger) *Client {
	return &Client{
		model:      cfg.Model,
		maxTokens:  cfg.MaxTokens,
		maxRetries: cfg.MaxRetries,
		baseURL:    cfg.BaseURL,
		httpClient: http.DefaultClient,
		log:        logger.With("adapter", "claude"),
	}
}

// NewClientWithURL creates a Client with a custom base URL (for testing).
func NewClientWithURL(baseURL string, cfg config.ExtractionConfig, logger *slog.Logger) *Client {
	c := NewClient(cfg, logger)
	c.baseURL = baseURL
	return c
}

func (c *Client) sdk(apiKey string) anthropic.Client {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(c.maxRetries),
		option.WithHTTPClient(c.httpClient),
	}
	if c.baseURL != "" {
		opts = append(opts, option.WithBaseURL(c.baseURL))
	}
	return anthropic.NewClient(opts...)
}

// Validate checks apiKey with a cheap authenticated call (list one model).
// Returns domain.ErrCredentialInvalid when the API rejects the key; any
// other failure is returned wrapped.
func (c *Client) Validate(ctx context.Context, apiKey string) error {
	client := c.sdk(apiKey)

	_, err := client.Models.List(ctx, anthropic.ModelListParams{Limit: anthropic.Int(1)})
	if err == nil {
		return nil
	}

	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) &&
		(apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden) {
		c.log.WarnContext(ctx, "api key rejected", slog.Int("status", apiErr.StatusCode))
		return fmt.Errorf("claude: validate key: %w", domain.ErrCredentialInvalid)
	}

	return fmt.Errorf("claude: validate key: %w", err)
}

// ExtractJobFields asks the model to read pageText (the visible text of the
// page at pageURL) and return the posting's fields. Fields the model cannot
// find come back empty; JobURL is always pageURL.
func (c *Client) ExtractJobFields(ctx context.Context, apiKey, pageURL, pageText string) (domain.JobPosting, error) {
	client := c.sdk(apiKey)

	msg, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(pageURL, pageText))),
		},
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) &&
			(apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden) {
			return domain.JobPosting{}, fmt.Errorf("claude: messages: %w", domain.ErrCredentialInvalid)
		}
		return domain.JobPosting{}, fmt.Errorf("claude: messages: %w", err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return domain.JobPosting{}, fmt.Errorf("claude: empty response (stop reason %q)", msg.StopReason)
	}

	// Extract JSON from the response (between first { and last }).
	jsonStr, err := extractJSON(text.String())
	if err != nil {
		return domain.JobPosting{}, fmt.Errorf("claude: %w", err)
	}

	var posting domain.JobPosting
	if err := json.Unmarshal([]byte(jsonStr), &posting); err != nil {
		return domain.JobPosting{}, fmt.Errorf("claude: decode fields: %w", err)
	}
	posting = trimPosting(posting)
	posting.JobURL = pageURL

	c.log.DebugContext(ctx, "job fields extracted",
		slog.String("url", pageURL),
		slog.Bool("has_company", posting.CompanyName != ""),
		slog.Bool("has_title", posting.JobTitle != ""),
		slog.Int64("input_tokens", msg.Usage.InputTokens),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
	)

	return posting, nil
}

func trimPosting(p domain.JobPosting) domain.JobPosting {
	p.CompanyName = strings.TrimSpace(p.CompanyName)
	p.JobTitle = strings.TrimSpace(p.JobTitle)
	p.JobID = strings.TrimSpace(p.JobID)
	p.PortalURL = strings.TrimSpace(p.PortalURL)
	p.Location = strings.TrimSpace(p.Location)
	p.Description = strings.TrimSpace(p.Description)
	return p
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
