package extraction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/jobtracker-backend/internal/config"
	"github.com/heartmarshall/jobtracker-backend/internal/domain"
)

type settingsRepo interface {
	Get(ctx context.Context, key string) (*domain.Setting, error)
}

type jobFieldExtractor interface {
	Validate(ctx context.Context, apiKey string) error
	ExtractJobFields(ctx context.Context, apiKey, pageURL, pageText string) (domain.JobPosting, error)
}

type pageFetcher interface {
	FetchText(ctx context.Context, pageURL string) (string, error)
}

// Service turns a job posting URL into prefilled application fields.
type Service struct {
	settings      settingsRepo
	llm           jobFieldExtractor
	pages         pageFetcher
	credentialKey string
	timeout       time.Duration
	log           *slog.Logger
}

// NewService creates a new Extraction service.
func NewService(
	log *slog.Logger,
	settings settingsRepo,
	llm jobFieldExtractor,
	pages pageFetcher,
	cfg config.ExtractionConfig,
) *Service {
	return &Service{
		settings:      settings,
		llm:           llm,
		pages:         pages,
		credentialKey: cfg.CredentialKey,
		timeout:       cfg.Timeout,
		log:           log.With("service", "extraction"),
	}
}

// ParseURL extracts job fields from the posting at rawURL.
//
// Errors: domain.ErrValidation for a malformed URL, domain.ErrCredentialMissing
// when no API key is stored (nothing is sent over the network),
// domain.ErrCredentialInvalid when the key is rejected, domain.ErrExtractionEmpty
// when the page yields no company or title, and domain.ErrExtractionFailed for
// everything else. The cause of a failure is logged, never returned.
func (s *Service) ParseURL(ctx context.Context, rawURL string) (*domain.JobPosting, error) {
	pageURL, err := domain.NormalizeURL(rawURL)
	if err != nil {
		return nil, domain.NewValidationError("url", "must be an absolute http(s) URL")
	}

	apiKey, err := s.credential(ctx)
	if err != nil {
		return nil, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if err := s.llm.Validate(ctx, apiKey); err != nil {
		return nil, s.fail(ctx, "validate credential", pageURL, err)
	}

	text, err := s.pages.FetchText(ctx, pageURL)
	if err != nil {
		return nil, s.fail(ctx, "fetch page", pageURL, err)
	}
	if strings.TrimSpace(text) == "" {
		s.log.InfoContext(ctx, "page has no visible text", slog.String("url", pageURL))
		return nil, domain.ErrExtractionEmpty
	}

	posting, err := s.llm.ExtractJobFields(ctx, apiKey, pageURL, text)
	if err != nil {
		return nil, s.fail(ctx, "extract fields", pageURL, err)
	}
	if posting.IsEmpty() {
		s.log.InfoContext(ctx, "no job details found", slog.String("url", pageURL))
		return nil, domain.ErrExtractionEmpty
	}

	if posting.PortalURL != "" {
		if u, err := domain.NormalizeURL(posting.PortalURL); err == nil {
			posting.PortalURL = u
		} else {
			posting.PortalURL = ""
		}
	}

	s.log.InfoContext(ctx, "job posting extracted",
		slog.String("url", pageURL),
		slog.String("company", posting.CompanyName),
	)

	return &posting, nil
}

// credential reads the API key from the settings store.
func (s *Service) credential(ctx context.Context) (string, error) {
	setting, err := s.settings.Get(ctx, s.credentialKey)
	if errors.Is(err, domain.ErrNotFound) {
		return "", domain.ErrCredentialMissing
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", s.credentialKey, err)
	}
	key := strings.TrimSpace(setting.Value)
	if key == "" {
		return "", domain.ErrCredentialMissing
	}
	return key, nil
}

// fail logs the cause and maps it to the error the caller may see.
func (s *Service) fail(ctx context.Context, step, pageURL string, err error) error {
	if errors.Is(err, domain.ErrCredentialInvalid) {
		return domain.ErrCredentialInvalid
	}
	s.log.ErrorContext(ctx, "job posting extraction failed",
		slog.String("step", step),
		slog.String("url", pageURL),
		slog.String("error", err.Error()),
	)
	return domain.ErrExtractionFailed
}
