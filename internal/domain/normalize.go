package domain

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// AllowedAttachmentExtensions lists accepted document extensions, lowercase
// and with the leading dot.
var AllowedAttachmentExtensions = []string{".pdf", ".doc", ".docx"}

// AttachmentExtension returns the lowercase extension of name and whether it
// is an accepted document type.
func AttachmentExtension(name string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range AllowedAttachmentExtensions {
		if ext == allowed {
			return ext, true
		}
	}
	return ext, false
}

// NormalizeURL parses raw as an absolute http(s) URL and returns its
// canonical text form.
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("url scheme must be http or https")
	}
	if u.Host == "" {
		return "", fmt.Errorf("url must have a host")
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	if u.Path == "" {
		u.Path = "/"
	}
	return u.String(), nil
}
