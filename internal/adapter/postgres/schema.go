package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/lock"

	"github.com/heartmarshall/ustwo-backend/migrations"
)

// EnsureSchema creates the memories, date_ideas and milestones tables if they
// are missing. It is idempotent and safe to call from several processes at
// once: goose runs under a Postgres advisory session lock and every DDL
// statement is IF NOT EXISTS, so tables created by an older deployment are
// adopted as they are.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	locker, err := lock.NewPostgresSessionLocker()
	if err != nil {
		return fmt.Errorf("schema: create session locker: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS,
		goose.WithSessionLocker(locker),
	)
	if err != nil {
		return fmt.Errorf("schema: goose new provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("schema: goose up: %w", err)
	}

	return nil
}
