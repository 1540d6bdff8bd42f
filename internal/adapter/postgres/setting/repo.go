// Package setting implements the key/value settings repository using PostgreSQL.
package setting

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/jobtracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/jobtracker-backend/internal/domain"
)

// Repo provides settings persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new settings repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the setting stored under key.
// Returns domain.ErrNotFound if the key has never been set.
func (r *Repo) Get(ctx context.Context, key string) (*domain.Setting, error) {
	sqlStr, args, err := postgres.Builder().
		Select("key", "value", "updated_at").
		From("settings").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build setting query: %w", err)
	}

	var s domain.Setting
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlStr, args...).Scan(&s.Key, &s.Value, &s.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "setting", key)
	}

	return &s, nil
}

// List returns all settings ordered by key.
func (r *Repo) List(ctx context.Context) ([]domain.Setting, error) {
	sqlStr, args, err := postgres.Builder().
		Select("key", "value", "updated_at").
		From("settings").
		OrderBy("key").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build settings query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}

	settings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Setting, error) {
		var s domain.Setting
		err := row.Scan(&s.Key, &s.Value, &s.UpdatedAt)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan settings: %w", err)
	}

	return settings, nil
}

// Upsert stores value under key, replacing any previous value.
func (r *Repo) Upsert(ctx context.Context, key, value string, updatedAt time.Time) (*domain.Setting, error) {
	sqlStr, args, err := postgres.Builder().
		Insert("settings").
		Columns("key", "value", "updated_at").
		Values(key, value, updatedAt).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at RETURNING key, value, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build setting upsert: %w", err)
	}

	var s domain.Setting
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlStr, args...).Scan(&s.Key, &s.Value, &s.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "setting", key)
	}

	return &s, nil
}
