// Package profile implements the single-row profile repository using PostgreSQL.
package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/jobtracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/jobtracker-backend/internal/domain"
)

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new profile repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the stored profile, or nil when none has been saved yet.
func (r *Repo) Get(ctx context.Context) (*domain.Profile, error) {
	sqlStr, args, err := postgres.Builder().
		Select("id", "full_name", "email", "headline", "linkedin_url", "updated_at").
		From("profile").
		Where(sq.Eq{"id": domain.ProfileID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build profile query: %w", err)
	}

	p, err := scanProfile(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlStr, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, postgres.MapError(err, "profile", domain.ProfileID)
	}

	return &p, nil
}

// Upsert writes the supplied fields to the profile row, creating it with
// empty defaults first if it does not exist.
func (r *Repo) Upsert(ctx context.Context, f domain.ProfileFields, updatedAt time.Time) (*domain.Profile, error) {
	insert := map[string]any{"id": domain.ProfileID, "updated_at": updatedAt}
	conflict := "updated_at = EXCLUDED.updated_at"

	add := func(col string, v any) {
		insert[col] = v
		conflict += ", " + col + " = EXCLUDED." + col
	}
	if f.FullName != nil {
		add("full_name", *f.FullName)
	}
	if f.Email != nil {
		add("email", nullIfEmpty(*f.Email))
	}
	if f.Headline != nil {
		add("headline", *f.Headline)
	}
	if f.LinkedInURL != nil {
		add("linkedin_url", nullIfEmpty(*f.LinkedInURL))
	}

	sqlStr, args, err := postgres.Builder().
		Insert("profile").
		SetMap(insert).
		Suffix("ON CONFLICT (id) DO UPDATE SET " + conflict +
			" RETURNING id, full_name, email, headline, linkedin_url, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build profile upsert: %w", err)
	}

	p, err := scanProfile(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, postgres.MapError(err, "profile", domain.ProfileID)
	}

	return &p, nil
}

func scanProfile(row pgx.Row) (domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(&p.ID, &p.FullName, &p.Email, &p.Headline, &p.LinkedInURL, &p.UpdatedAt)
	return p, err
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
