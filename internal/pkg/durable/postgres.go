package durable

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DefaultTable is created by the 001 migration.
const DefaultTable = "durable_slices"

// PgExecutor is the part of *pgxpool.Pool the postgres backend uses.
type PgExecutor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresBackend keeps one row per key.
type PostgresBackend struct {
	db    PgExecutor
	table string
}

// NewPostgresBackend uses DefaultTable when table is empty.
func NewPostgresBackend(db PgExecutor, table string) *PostgresBackend {
	if table == "" {
		table = DefaultTable
	}
	return &PostgresBackend{db: db, table: table}
}

func (b *PostgresBackend) Get(ctx context.Context, key string) (string, error) {
	sql, args, err := squirrel.Select("value").
		From(b.table).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build select query: %w", err)
	}

	var value string
	if err := b.db.QueryRow(ctx, sql, args...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to load %s: %w", key, err)
	}
	return value, nil
}

func (b *PostgresBackend) Set(ctx context.Context, key, value string) error {
	sql, args, err := squirrel.Insert(b.table).
		Columns("key", "value", "updated_at").
		Values(key, value, squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert query: %w", err)
	}

	if _, err := b.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to store %s: %w", key, err)
	}
	return nil
}
