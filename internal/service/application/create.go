package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/jobtracker-backend/internal/domain"
)

// CreateApplication validates the input, stores the documents and persists
// the record together with its audit entry. Documents stored before a failed
// record write are removed again.
func (s *Service) CreateApplication(ctx context.Context, input CreateApplicationInput) (*domain.Application, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	id := uuid.New()
	var stored []string

	cleanup := func() {
		for _, path := range stored {
			if err := s.files.Remove(context.WithoutCancel(ctx), path); err != nil {
				s.log.ErrorContext(ctx, "remove attachment after failed create",
					slog.String("application_id", id.String()),
					slog.String("path", path),
					slog.String("error", err.Error()),
				)
			}
		}
	}

	resume, err := s.files.Store(ctx, input.Resume.Content, input.Resume.Name, id, domain.AttachmentResume)
	if err != nil {
		return nil, fmt.Errorf("store resume: %w", err)
	}
	stored = append(stored, resume.StoragePath)

	var coverLetter *domain.Attachment
	if input.CoverLetter != nil {
		att, err := s.files.Store(ctx, input.CoverLetter.Content, input.CoverLetter.Name, id, domain.AttachmentCoverLetter)
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("store cover letter: %w", err)
		}
		stored = append(stored, att.StoragePath)
		coverLetter = &att
	}

	now := time.Now().UTC()
	app := domain.Application{
		ID:             id,
		CompanyName:    strings.TrimSpace(input.CompanyName),
		JobTitle:       strings.TrimSpace(input.JobTitle),
		JobID:          strings.TrimSpace(input.JobID),
		JobURL:         normalizedURL(input.JobURL),
		Status:         input.Status,
		Priority:       input.Priority,
		DateApplied:    input.DateApplied.UTC(),
		EmailUsed:      strings.TrimSpace(input.EmailUsed),
		ResumeFilename: resume.OriginalName,
		ResumeFilePath: resume.StoragePath,
		Source:         input.Source,
		Notes:          trimOrNil(input.Notes),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if app.Status == "" {
		app.Status = domain.StatusApplied
	}
	if app.Priority == "" {
		app.Priority = domain.PriorityMedium
	}
	if input.PortalURL != nil {
		if u := normalizedURL(*input.PortalURL); u != "" {
			app.PortalURL = &u
		}
	}
	if coverLetter != nil {
		app.CoverLetterFilename = &coverLetter.OriginalName
		app.CoverLetterFilePath = &coverLetter.StoragePath
	}

	var created *domain.Application
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.apps.Create(txCtx, app)
		if err != nil {
			return fmt.Errorf("create application: %w", err)
		}
		return s.audit.Log(txCtx, newAuditRecord(domain.AuditActionCreate, id, creationChanges(created)))
	})
	if err != nil {
		cleanup()
		return nil, err
	}

	s.log.InfoContext(ctx, "application created",
		slog.String("application_id", id.String()),
		slog.String("company", created.CompanyName),
		slog.Bool("cover_letter", created.HasCoverLetter()),
	)

	return created, nil
}

func creationChanges(app *domain.Application) map[string]any {
	return map[string]any{
		"company_name": map[string]any{"new": app.CompanyName},
		"job_title":    map[string]any{"new": app.JobTitle},
		"status":       map[string]any{"new": app.Status},
		"source":       map[string]any{"new": app.Source},
	}
}
