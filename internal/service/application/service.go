package application

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/jobtracker-backend/internal/domain"
)

const (
	DefaultListLimit   = 100
	MaxListLimit       = 1000
	DefaultRecentLimit = 5
	MaxRecentLimit     = 100
	DefaultHistorySize = 50
	MaxHistorySize     = 500
)

type applicationRepo interface {
	Create(ctx context.Context, app domain.Application) (*domain.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	Update(ctx context.Context, id uuid.UUID, params domain.ApplicationUpdateParams, updatedAt time.Time) (*domain.Application, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	List(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, error)
	Recent(ctx context.Context, n int) ([]domain.Application, error)
	Search(ctx context.Context, text string) ([]domain.Application, error)
	LatestByCompany(ctx context.Context, companyName string) (*domain.CompanyInfo, error)
}

type attachmentStore interface {
	Store(ctx context.Context, content io.Reader, originalName string, ownerID uuid.UUID, category domain.AttachmentCategory) (domain.Attachment, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Remove(ctx context.Context, path string) error
}

type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service owns the application lifecycle: validation, attachment storage,
// persistence and the audit trail.
type Service struct {
	apps        applicationRepo
	files       attachmentStore
	audit       auditRepo
	tx          txManager
	deleteFiles bool
	log         *slog.Logger
}

// NewService creates a new Application service. When deleteFiles is set,
// removing an application also removes its stored attachments.
func NewService(
	log *slog.Logger,
	apps applicationRepo,
	files attachmentStore,
	audit auditRepo,
	tx txManager,
	deleteFiles bool,
) *Service {
	return &Service{
		apps:        apps,
		files:       files,
		audit:       audit,
		tx:          tx,
		deleteFiles: deleteFiles,
		log:         log.With("service", "application"),
	}
}

func newAuditRecord(action domain.AuditAction, id uuid.UUID, changes map[string]any) domain.AuditRecord {
	return domain.AuditRecord{
		ID:         uuid.New(),
		EntityType: domain.EntityTypeApplication,
		EntityID:   &id,
		Action:     action,
		Changes:    changes,
		CreatedAt:  time.Now().UTC(),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
