// Package application implements the Application repository using PostgreSQL.
// It provides CRUD plus the filtered, search and aggregate reads the query
// and analytics services are built on.
package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/jobtracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/jobtracker-backend/internal/domain"
)

const table = "applications"

// columns is the fixed select list; scanApplication relies on its order.
var columns = []string{
	"id", "company_name", "job_title", "job_id", "job_url", "portal_url",
	"status", "priority", "date_applied", "email_used",
	"resume_filename", "resume_file_path", "cover_letter_filename", "cover_letter_file_path",
	"source", "notes", "created_at", "updated_at",
}

// Repo provides application persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new application repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new application and returns the persisted row.
func (r *Repo) Create(ctx context.Context, app domain.Application) (*domain.Application, error) {
	query := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			app.ID, app.CompanyName, app.JobTitle, app.JobID, app.JobURL, app.PortalURL,
			string(app.Status), string(app.Priority), app.DateApplied, app.EmailUsed,
			app.ResumeFilename, app.ResumeFilePath, app.CoverLetterFilename, app.CoverLetterFilePath,
			string(app.Source), app.Notes, app.CreatedAt, app.UpdatedAt,
		).
		Suffix(returning())

	return r.queryOne(ctx, query, app.ID)
}

// Update applies the supplied columns of params in a single
// UPDATE ... RETURNING and always bumps updated_at. A PortalURL or Notes
// pointing at "" stores NULL.
// Returns domain.ErrNotFound if the application does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.ApplicationUpdateParams, updatedAt time.Time) (*domain.Application, error) {
	query := postgres.Builder().
		Update(table).
		SetMap(updateColumns(params)).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id}).
		Suffix(returning())

	return r.queryOne(ctx, query, id)
}

// Delete removes an application and returns the deleted row, so the caller
// still knows which attachments it referenced.
// Returns domain.ErrNotFound if the application does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	query := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		Suffix(returning())

	return r.queryOne(ctx, query, id)
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an application by primary key.
// Returns domain.ErrNotFound if the application does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id})

	return r.queryOne(ctx, query, id)
}

// GetByIDForUpdate is GetByID with a row lock held until the surrounding
// transaction ends, so concurrent updates of one application run one after
// another. It fails with postgres.ErrNoTx outside a transaction.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	if !postgres.InTx(ctx) {
		return nil, fmt.Errorf("lock application %s: %w", id, postgres.ErrNoTx)
	}

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE")

	return r.queryOne(ctx, query, id)
}

// List returns applications matching filter in insertion order
// (created_at ASC, id ASC), paginated by Skip/Limit.
func (r *Repo) List(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, error) {
	filter = normalizeFilter(filter)

	query := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at ASC", "id ASC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Skip))

	if conds := filterConditions(filter); len(conds) > 0 {
		query = query.Where(conds)
	}

	return r.queryMany(ctx, query, "list applications")
}

// Recent returns the n most recently created applications, newest first.
func (r *Repo) Recent(ctx context.Context, n int) ([]domain.Application, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(n))

	return r.queryMany(ctx, query, "recent applications")
}

// Search returns applications whose company name, job title or job id
// contains text, case-insensitively. No pagination.
func (r *Repo) Search(ctx context.Context, text string) ([]domain.Application, error) {
	pattern := containsPattern(text)

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Or{
			sq.ILike{"company_name": pattern},
			sq.ILike{"job_title": pattern},
			sq.ILike{"job_id": pattern},
		}).
		OrderBy("created_at ASC", "id ASC")

	return r.queryMany(ctx, query, "search applications")
}

// LatestByCompany returns portal URL and source of the most recent
// application (by date_applied) whose company name contains companyName.
// Returns nil, nil when nothing matches.
func (r *Repo) LatestByCompany(ctx context.Context, companyName string) (*domain.CompanyInfo, error) {
	sqlStr, args, err := postgres.Builder().
		Select("portal_url", "source").
		From(table).
		Where(sq.ILike{"company_name": containsPattern(companyName)}).
		OrderBy("date_applied DESC", "created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build company info query: %w", err)
	}

	var (
		info   domain.CompanyInfo
		source string
	)
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlStr, args...).Scan(&info.PortalURL, &source)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("company info %q: %w", companyName, err)
	}
	info.Source = domain.Source(source)

	return &info, nil
}

// CountByStatusSource returns the status x source histogram of the whole
// table from a single statement, so all cells come from one snapshot.
func (r *Repo) CountByStatusSource(ctx context.Context) ([]domain.StatusSourceCount, error) {
	sqlStr, args, err := postgres.Builder().
		Select("status", "source", "count(*)").
		From(table).
		GroupBy("status", "source").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build histogram query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("count applications: %w", err)
	}

	counts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.StatusSourceCount, error) {
		var (
			status, source string
			n              int64
		)
		if err := row.Scan(&status, &source, &n); err != nil {
			return domain.StatusSourceCount{}, err
		}
		return domain.StatusSourceCount{
			Status: domain.ApplicationStatus(status),
			Source: domain.Source(source),
			Count:  int(n),
		}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan application counts: %w", err)
	}

	return counts, nil
}

// ExistingIDs reports which of ids still have an application row.
func (r *Repo) ExistingIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	existing := make(map[uuid.UUID]bool, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT id FROM applications WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("existing application ids: %w", err)
	}

	found, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("scan application ids: %w", err)
	}
	for _, id := range found {
		existing[id] = true
	}

	return existing, nil
}

// ReferencedNames reports which of the given file names are the final
// element of some application's resume or cover letter path. Stored paths
// may be relative or absolute depending on how the upload root was
// configured, so only the base name is compared.
func (r *Repo) ReferencedNames(ctx context.Context, names []string) (map[string]bool, error) {
	referenced := make(map[string]bool, len(names))
	if len(names) == 0 {
		return referenced, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT name FROM (
		     SELECT substring(resume_file_path FROM '[^/\\]+$') AS name FROM applications
		     UNION
		     SELECT substring(cover_letter_file_path FROM '[^/\\]+$') FROM applications
		 ) refs
		 WHERE name = ANY($1)`,
		names)
	if err != nil {
		return nil, fmt.Errorf("referenced attachment names: %w", err)
	}

	found, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan attachment names: %w", err)
	}
	for _, n := range found {
		referenced[n] = true
	}

	return referenced, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) queryOne(ctx context.Context, query sq.Sqlizer, id uuid.UUID) (*domain.Application, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build application query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlStr, args...)
	app, err := scanApplication(row)
	if err != nil {
		return nil, postgres.MapError(err, "application", id)
	}

	return &app, nil
}

func (r *Repo) queryMany(ctx context.Context, query sq.SelectBuilder, op string) ([]domain.Application, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	apps, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Application, error) {
		return scanApplication(row)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: scan: %w", op, err)
	}

	return apps, nil
}

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// updateColumns maps the supplied fields of params to column values.
func updateColumns(p domain.ApplicationUpdateParams) map[string]any {
	set := make(map[string]any)

	if p.CompanyName != nil {
		set["company_name"] = *p.CompanyName
	}
	if p.JobTitle != nil {
		set["job_title"] = *p.JobTitle
	}
	if p.JobID != nil {
		set["job_id"] = *p.JobID
	}
	if p.JobURL != nil {
		set["job_url"] = *p.JobURL
	}
	if p.PortalURL != nil {
		set["portal_url"] = nullIfEmpty(*p.PortalURL)
	}
	if p.Status != nil {
		set["status"] = string(*p.Status)
	}
	if p.Priority != nil {
		set["priority"] = string(*p.Priority)
	}
	if p.DateApplied != nil {
		set["date_applied"] = *p.DateApplied
	}
	if p.EmailUsed != nil {
		set["email_used"] = *p.EmailUsed
	}
	if p.Source != nil {
		set["source"] = string(*p.Source)
	}
	if p.Notes != nil {
		set["notes"] = nullIfEmpty(*p.Notes)
	}

	return set
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ---------------------------------------------------------------------------
// Mapping helpers: row -> domain
// ---------------------------------------------------------------------------

func scanApplication(row pgx.Row) (domain.Application, error) {
	var (
		app                      domain.Application
		status, priority, source string
	)

	err := row.Scan(
		&app.ID, &app.CompanyName, &app.JobTitle, &app.JobID, &app.JobURL, &app.PortalURL,
		&status, &priority, &app.DateApplied, &app.EmailUsed,
		&app.ResumeFilename, &app.ResumeFilePath, &app.CoverLetterFilename, &app.CoverLetterFilePath,
		&source, &app.Notes, &app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		return domain.Application{}, err
	}

	app.Status = domain.ApplicationStatus(status)
	app.Priority = domain.Priority(priority)
	app.Source = domain.Source(source)

	return app, nil
}
