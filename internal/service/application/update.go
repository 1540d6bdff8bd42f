package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/jobtracker-backend/internal/domain"
)

// UpdateApplication applies the supplied fields and bumps updated_at. An
// input with no fields only bumps updated_at. The row stays locked for the
// read-update-audit sequence.
func (s *Service) UpdateApplication(ctx context.Context, input UpdateApplicationInput) (*domain.Application, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := input.params()

	var updated *domain.Application
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.apps.GetByIDForUpdate(txCtx, input.ID)
		if err != nil {
			return err
		}

		updated, err = s.apps.Update(txCtx, input.ID, params, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("update application: %w", err)
		}

		changes := buildChanges(old, updated)
		if len(changes) == 0 {
			return nil
		}
		return s.audit.Log(txCtx, newAuditRecord(domain.AuditActionUpdate, input.ID, changes))
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "application updated",
		slog.String("application_id", input.ID.String()),
		slog.String("status", updated.Status.String()),
	)

	return updated, nil
}

// params trims text fields and canonicalizes URLs. Empty PortalURL and Notes
// stay as "" so the repository clears the column.
func (i UpdateApplicationInput) params() domain.ApplicationUpdateParams {
	p := domain.ApplicationUpdateParams{
		CompanyName: trimmed(i.CompanyName),
		JobTitle:    trimmed(i.JobTitle),
		JobID:       trimmed(i.JobID),
		EmailUsed:   trimmed(i.EmailUsed),
		Notes:       trimmed(i.Notes),
		Status:      i.Status,
		Priority:    i.Priority,
		Source:      i.Source,
	}
	if i.JobURL != nil {
		u := normalizedURL(*i.JobURL)
		p.JobURL = &u
	}
	if i.PortalURL != nil {
		u := normalizedURL(*i.PortalURL)
		p.PortalURL = &u
	}
	if i.DateApplied != nil {
		d := i.DateApplied.UTC()
		p.DateApplied = &d
	}
	return p
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

// buildChanges returns old/new pairs for every field that differs.
func buildChanges(old, updated *domain.Application) map[string]any {
	changes := map[string]any{}
	add := func(field string, o, n any) {
		if o != n {
			changes[field] = map[string]any{"old": o, "new": n}
		}
	}

	add("company_name", old.CompanyName, updated.CompanyName)
	add("job_title", old.JobTitle, updated.JobTitle)
	add("job_id", old.JobID, updated.JobID)
	add("job_url", old.JobURL, updated.JobURL)
	add("portal_url", deref(old.PortalURL), deref(updated.PortalURL))
	add("status", old.Status, updated.Status)
	add("priority", old.Priority, updated.Priority)
	add("email_used", old.EmailUsed, updated.EmailUsed)
	add("source", old.Source, updated.Source)
	add("notes", deref(old.Notes), deref(updated.Notes))
	if !old.DateApplied.Equal(updated.DateApplied) {
		changes["date_applied"] = map[string]any{"old": old.DateApplied, "new": updated.DateApplied}
	}

	return changes
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
