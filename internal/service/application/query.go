package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/jobtracker-backend/internal/domain"
)

// GetApplication returns one application or domain.ErrNotFound.
func (s *Service) GetApplication(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	app, err := s.apps.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}
	return app, nil
}

// ListApplications returns applications matching every supplied filter, in
// insertion order.
func (s *Service) ListApplications(ctx context.Context, input ListInput) ([]domain.Application, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	apps, err := s.apps.List(ctx, input.filter())
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

// RecentApplications returns the n most recently created applications,
// newest first.
func (s *Service) RecentApplications(ctx context.Context, n int) ([]domain.Application, error) {
	if n < 1 || n > MaxRecentLimit {
		return nil, domain.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", MaxRecentLimit))
	}
	apps, err := s.apps.Recent(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("recent applications: %w", err)
	}
	return apps, nil
}

// SearchApplications returns every application whose company, title or job
// id contains the query, case-insensitively.
func (s *Service) SearchApplications(ctx context.Context, query string) ([]domain.Application, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.NewValidationError("q", "required")
	}
	apps, err := s.apps.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search applications: %w", err)
	}
	return apps, nil
}

// CompanyInfo returns the portal and source of the latest application to a
// matching company, or nil when there is none.
func (s *Service) CompanyInfo(ctx context.Context, companyName string) (*domain.CompanyInfo, error) {
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return nil, domain.NewValidationError("company_name", "required")
	}
	info, err := s.apps.LatestByCompany(ctx, companyName)
	if err != nil {
		return nil, fmt.Errorf("company info: %w", err)
	}
	return info, nil
}

// History returns up to limit audit entries of one application, newest
// first.
func (s *Service) History(ctx context.Context, id uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	if limit < 1 || limit > MaxHistorySize {
		return nil, domain.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", MaxHistorySize))
	}
	if _, err := s.GetApplication(ctx, id); err != nil {
		return nil, err
	}
	records, err := s.audit.GetByEntity(ctx, domain.EntityTypeApplication, id, limit)
	if err != nil {
		return nil, fmt.Errorf("application history: %w", err)
	}
	return records, nil
}
