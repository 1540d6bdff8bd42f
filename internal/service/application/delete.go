package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/jobtracker-backend/internal/domain"
)

// DeleteApplication removes the record and writes a DELETE audit entry.
// Stored documents are removed after the commit when the service is
// configured to do so; failures there are logged and not returned.
func (s *Service) DeleteApplication(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	var deleted *domain.Application
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		deleted, err = s.apps.Delete(txCtx, id)
		if err != nil {
			return fmt.Errorf("delete application: %w", err)
		}

		changes := map[string]any{
			"company_name": map[string]any{"old": deleted.CompanyName},
			"job_title":    map[string]any{"old": deleted.JobTitle},
			"status":       map[string]any{"old": deleted.Status},
		}
		return s.audit.Log(txCtx, newAuditRecord(domain.AuditActionDelete, id, changes))
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "application deleted",
		slog.String("application_id", id.String()),
	)

	if !s.deleteFiles {
		return nil
	}
	for _, path := range deleted.AttachmentPaths() {
		if err := s.files.Remove(ctx, path); err != nil {
			s.log.WarnContext(ctx, "remove attachment of deleted application",
				slog.String("application_id", id.String()),
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
		}
	}

	return nil
}
