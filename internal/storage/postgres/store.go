package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/crimetrack/crimetrack-be/internal/storage"
	"github.com/crimetrack/crimetrack-be/internal/storage/postgres/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Ensure Store satisfies the storage interfaces at compile time.
var _ storage.Store = (*Store)(nil)

// Store provides Postgres-backed persistence for users and case records.
type Store struct {
	pool *pgxpool.Pool
}

// New connects to the database, applies pending migrations, and returns a
// ready store.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	if err := migrate(ctx, databaseURL); err != nil {
		return nil, err
	}

	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// migrate runs goose over a short-lived database/sql connection; the pgx
// pool used for queries is opened afterwards.
func migrate(ctx context.Context, databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set migration dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
