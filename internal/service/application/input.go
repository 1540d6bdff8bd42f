package application

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/jobtracker-backend/internal/domain"
)

// File is an uploaded document as received by transport.
type File struct {
	Name    string
	Content io.Reader
}

// CreateApplicationInput holds the fields of a new application and its
// documents. Empty Status and Priority fall back to their defaults.
type CreateApplicationInput struct {
	CompanyName string
	JobTitle    string
	JobID       string
	JobURL      string
	PortalURL   *string
	Status      domain.ApplicationStatus
	Priority    domain.Priority
	DateApplied time.Time
	EmailUsed   string
	Source      domain.Source
	Notes       *string
	Resume      *File
	CoverLetter *File
}

// Validate checks all fields and both attachment names, and collects all
// errors. Nothing is written before it passes.
func (i CreateApplicationInput) Validate() error {
	var errs []domain.FieldError

	errs = requireText(errs, "company_name", i.CompanyName)
	errs = requireText(errs, "job_title", i.JobTitle)
	errs = requireText(errs, "job_id", i.JobID)
	errs = requireText(errs, "email_used", i.EmailUsed)
	errs = checkURL(errs, "job_url", i.JobURL, true)
	if i.PortalURL != nil {
		errs = checkURL(errs, "portal_url", *i.PortalURL, false)
	}

	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.Priority != "" && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid value"})
	}
	if i.Source == "" {
		errs = append(errs, domain.FieldError{Field: "source", Message: "required"})
	} else if !i.Source.IsValid() {
		errs = append(errs, domain.FieldError{Field: "source", Message: "invalid value"})
	}
	if i.DateApplied.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date_applied", Message: "required"})
	}

	if i.Resume == nil || i.Resume.Content == nil {
		errs = append(errs, domain.FieldError{Field: "resume", Message: "required"})
	} else {
		errs = checkAttachment(errs, "resume", i.Resume.Name)
	}
	if i.CoverLetter != nil {
		errs = checkAttachment(errs, "cover_letter", i.CoverLetter.Name)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateApplicationInput holds a partial update. Nil fields are not changed;
// an empty PortalURL or Notes clears the field.
type UpdateApplicationInput struct {
	ID          uuid.UUID
	CompanyName *string
	JobTitle    *string
	JobID       *string
	JobURL      *string
	PortalURL   *string
	Status      *domain.ApplicationStatus
	Priority    *domain.Priority
	DateApplied *time.Time
	EmailUsed   *string
	Source      *domain.Source
	Notes       *string
}

// Validate checks all fields and collects all errors.
func (i UpdateApplicationInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.CompanyName != nil {
		errs = requireText(errs, "company_name", *i.CompanyName)
	}
	if i.JobTitle != nil {
		errs = requireText(errs, "job_title", *i.JobTitle)
	}
	if i.JobID != nil {
		errs = requireText(errs, "job_id", *i.JobID)
	}
	if i.EmailUsed != nil {
		errs = requireText(errs, "email_used", *i.EmailUsed)
	}
	if i.JobURL != nil {
		errs = checkURL(errs, "job_url", *i.JobURL, true)
	}
	if i.PortalURL != nil {
		errs = checkURL(errs, "portal_url", *i.PortalURL, false)
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.Priority != nil && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid value"})
	}
	if i.Source != nil && !i.Source.IsValid() {
		errs = append(errs, domain.FieldError{Field: "source", Message: "invalid value"})
	}
	if i.DateApplied != nil && i.DateApplied.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date_applied", Message: "must not be zero"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds filters and pagination for listing applications.
// A nil Limit means DefaultListLimit.
type ListInput struct {
	CompanyName *string
	EmailUsed   *string
	Status      *domain.ApplicationStatus
	Priority    *domain.Priority
	Source      *domain.Source
	Skip        int
	Limit       *int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Skip < 0 {
		errs = append(errs, domain.FieldError{Field: "skip", Message: "must be non-negative"})
	}
	if i.Limit != nil && (*i.Limit < 1 || *i.Limit > MaxListLimit) {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", MaxListLimit)})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.Priority != nil && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid value"})
	}
	if i.Source != nil && !i.Source.IsValid() {
		errs = append(errs, domain.FieldError{Field: "source", Message: "invalid value"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListInput) filter() domain.ApplicationFilter {
	limit := DefaultListLimit
	if i.Limit != nil {
		limit = *i.Limit
	}
	return domain.ApplicationFilter{
		CompanyName: trimOrNil(i.CompanyName),
		EmailUsed:   trimOrNil(i.EmailUsed),
		Status:      i.Status,
		Priority:    i.Priority,
		Source:      i.Source,
		Skip:        i.Skip,
		Limit:       limit,
	}
}

func requireText(errs []domain.FieldError, field, value string) []domain.FieldError {
	if strings.TrimSpace(value) == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	return errs
}

// checkURL validates an http(s) URL. Blank values are allowed unless required.
func checkURL(errs []domain.FieldError, field, value string, required bool) []domain.FieldError {
	if strings.TrimSpace(value) == "" {
		if required {
			return append(errs, domain.FieldError{Field: field, Message: "required"})
		}
		return errs
	}
	if _, err := domain.NormalizeURL(value); err != nil {
		return append(errs, domain.FieldError{Field: field, Message: "must be an absolute http(s) URL"})
	}
	return errs
}

func checkAttachment(errs []domain.FieldError, field, name string) []domain.FieldError {
	if name == "" {
		return errs
	}
	if _, ok := domain.AttachmentExtension(name); !ok {
		return append(errs, domain.FieldError{
			Field:   field,
			Message: "invalid file type, allowed: " + strings.Join(domain.AllowedAttachmentExtensions, ", "),
		})
	}
	return errs
}

// normalizedURL returns the canonical form of a URL already accepted by
// checkURL. Blank input yields "".
func normalizedURL(value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	u, err := domain.NormalizeURL(value)
	if err != nil {
		return strings.TrimSpace(value)
	}
	return u
}
