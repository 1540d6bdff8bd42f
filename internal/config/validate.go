package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"
)

// MinOrphanRetention is the shortest age at which a stored file may be
// treated as orphaned. Younger files may belong to an upload whose record
// is not committed yet.
const MinOrphanRetention = 5 * time.Minute

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if err := c.Extraction.validate(); err != nil {
		return fmt.Errorf("extraction: %w", err)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	if strings.TrimSpace(s.ResumeDir) == "" {
		return fmt.Errorf("resume_dir is required")
	}
	if strings.TrimSpace(s.CoverLetterDir) == "" {
		return fmt.Errorf("cover_letter_dir is required")
	}
	if filepath.Clean(s.ResumeDir) == filepath.Clean(s.CoverLetterDir) {
		return fmt.Errorf("resume_dir and cover_letter_dir must differ")
	}
	if s.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0 (got %d)", s.MaxUploadBytes)
	}
	if s.OrphanRetention < MinOrphanRetention {
		return fmt.Errorf("orphan_retention must be >= %v (got %v)", MinOrphanRetention, s.OrphanRetention)
	}
	return nil
}

func (e *ExtractionConfig) validate() error {
	if strings.TrimSpace(e.CredentialKey) == "" {
		return fmt.Errorf("credential_key is required")
	}
	if strings.TrimSpace(e.Model) == "" {
		return fmt.Errorf("model is required")
	}
	if e.BaseURL != "" {
		if u, err := url.Parse(e.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("base_url must be an absolute URL (got %q)", e.BaseURL)
		}
	}
	if e.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", e.MaxTokens)
	}
	if e.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be >= 0 (got %d)", e.MaxRetries)
	}
	if e.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", e.Timeout)
	}
	if e.FetchTimeout <= 0 || e.FetchTimeout > e.Timeout {
		return fmt.Errorf("fetch_timeout must be in (0, timeout] (got %v)", e.FetchTimeout)
	}
	if e.MaxPageBytes <= 0 {
		return fmt.Errorf("max_page_bytes must be > 0 (got %d)", e.MaxPageBytes)
	}
	if e.MaxTextChars <= 0 {
		return fmt.Errorf("max_text_chars must be > 0 (got %d)", e.MaxTextChars)
	}
	if e.RateLimitPerMinute < 0 {
		return fmt.Errorf("rate_limit_per_minute must be >= 0 (got %d)", e.RateLimitPerMinute)
	}
	return nil
}
