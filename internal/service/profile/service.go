package profile

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/jobtracker-backend/internal/domain"
)

type profileRepo interface {
	Get(ctx context.Context) (*domain.Profile, error)
	Upsert(ctx context.Context, f domain.ProfileFields, updatedAt time.Time) (*domain.Profile, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages the single user profile.
type Service struct {
	profiles profileRepo
	audit    auditLogger
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new Profile service.
func NewService(log *slog.Logger, profiles profileRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		profiles: profiles,
		audit:    audit,
		tx:       tx,
		log:      log.With("service", "profile"),
	}
}

// ProfileInput holds a partial profile write. Nil fields are not changed; an
// empty Email or LinkedInURL clears the field.
type ProfileInput struct {
	FullName    *string
	Email       *string
	Headline    *string
	LinkedInURL *string
}

// Validate checks all fields and collects all errors.
func (i ProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.FullName != nil && utf8.RuneCountInString(strings.TrimSpace(*i.FullName)) > 200 {
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "max 200 characters"})
	}
	if i.Headline != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Headline)) > 300 {
		errs = append(errs, domain.FieldError{Field: "headline", Message: "max 300 characters"})
	}
	if i.Email != nil {
		if e := strings.TrimSpace(*i.Email); e != "" {
			if addr, err := mail.ParseAddress(e); err != nil || addr.Address != e {
				errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email address"})
			}
		}
	}
	if i.LinkedInURL != nil {
		if u := strings.TrimSpace(*i.LinkedInURL); u != "" {
			if _, err := domain.NormalizeURL(u); err != nil {
				errs = append(errs, domain.FieldError{Field: "linkedin_url", Message: "must be an absolute http(s) URL"})
			}
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Get returns the stored profile or an empty default one.
func (s *Service) Get(ctx context.Context) (*domain.Profile, error) {
	p, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if p == nil {
		def := domain.DefaultProfile()
		return &def, nil
	}
	return p, nil
}

// Upsert creates the profile or applies the supplied fields to it.
func (s *Service) Upsert(ctx context.Context, input ProfileInput) (*domain.Profile, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	fields := domain.ProfileFields{
		FullName: trimmed(input.FullName),
		Email:    trimmed(input.Email),
		Headline: trimmed(input.Headline),
	}
	if input.LinkedInURL != nil {
		u := strings.TrimSpace(*input.LinkedInURL)
		if u != "" {
			u, _ = domain.NormalizeURL(u)
		}
		fields.LinkedInURL = &u
	}

	var saved *domain.Profile
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.profiles.Get(txCtx)
		if err != nil {
			return fmt.Errorf("get profile: %w", err)
		}

		saved, err = s.profiles.Upsert(txCtx, fields, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("upsert profile: %w", err)
		}

		action := domain.AuditActionUpdate
		if old == nil {
			action = domain.AuditActionCreate
			def := domain.DefaultProfile()
			old = &def
		}
		changes := buildChanges(old, saved)
		if len(changes) == 0 {
			return nil
		}
		return s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			EntityType: domain.EntityTypeProfile,
			Action:     action,
			Changes:    changes,
			CreatedAt:  time.Now().UTC(),
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "profile saved")

	return saved, nil
}

func buildChanges(old, updated *domain.Profile) map[string]any {
	changes := map[string]any{}
	add := func(field, o, n string) {
		if o != n {
			changes[field] = map[string]any{"old": o, "new": n}
		}
	}
	add("full_name", old.FullName, updated.FullName)
	add("email", deref(old.Email), deref(updated.Email))
	add("headline", old.Headline, updated.Headline)
	add("linkedin_url", deref(old.LinkedInURL), deref(updated.LinkedInURL))
	return changes
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
