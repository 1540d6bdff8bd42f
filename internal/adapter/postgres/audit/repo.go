// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/jobtracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/jobtracker-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record and returns the persisted domain.AuditRecord.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	changesJSON, err := json.Marshal(record.Changes)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal changes: %w", err)
	}

	sqlStr, args, err := postgres.Builder().
		Insert("audit_log").
		Columns("id", "entity_type", "entity_id", "action", "changes", "created_at").
		Values(record.ID, string(record.EntityType), record.EntityID, string(record.Action), changesJSON, record.CreatedAt).
		Suffix("RETURNING id, entity_type, entity_id, action, changes, created_at").
		ToSql()
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("build audit insert: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlStr, args...)
	created, err := scanAuditRecord(row)
	if err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", record.ID)
	}

	return created, nil
}

// Log creates an audit record without returning it (fire-and-forget).
// Satisfies the auditLogger dependency of the application service.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByEntity returns the change history for a specific entity, ordered by
// created_at DESC, limited to `limit` records.
func (r *Repo) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	sqlStr, args, err := postgres.Builder().
		Select("id", "entity_type", "entity_id", "action", "changes", "created_at").
		From("audit_log").
		Where(sq.Eq{"entity_type": string(entityType), "entity_id": entityID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("get audit_records by entity: %w", err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AuditRecord, error) {
		return scanAuditRecord(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan audit_records: %w", err)
	}

	return records, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers: row -> domain
// ---------------------------------------------------------------------------

func scanAuditRecord(row pgx.Row) (domain.AuditRecord, error) {
	var (
		record             domain.AuditRecord
		entityType, action string
		changes            []byte
	)

	if err := row.Scan(&record.ID, &entityType, &record.EntityID, &action, &changes, &record.CreatedAt); err != nil {
		return domain.AuditRecord{}, err
	}

	record.EntityType = domain.EntityType(entityType)
	record.Action = domain.AuditAction(action)

	// changes: JSONB -> map[string]any
	if len(changes) > 0 {
		m := make(map[string]any)
		if err := json.Unmarshal(changes, &m); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", record.ID, err)
		}
		record.Changes = m
	}

	return record, nil
}
