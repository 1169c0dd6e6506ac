// Package store persists played maze runs in sqlite or PostgreSQL.
//
// Queries are written once with ? placeholders and rewritten per dialect.
// The sqlite driver is modernc.org/sqlite (pure Go); PostgreSQL goes
// through github.com/lib/pq.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

var (
	// ErrUnknownDriver is returned for a Config.Driver other than sqlite or postgres.
	ErrUnknownDriver = errors.New("store: unknown driver")

	// ErrNotFound is returned when a run id does not exist.
	ErrNotFound = errors.New("store: run not found")

	// ErrInvalidRun is returned when a run lacks required fields.
	ErrInvalidRun = errors.New("store: invalid run")
)

// Store is a handle to the runs database. It is safe for concurrent use.
type Store struct {
	db      *sql.DB
	dialect Dialect
	qb      queryBuilder
	log     *slog.Logger
}

// Option configures Open.
type Option func(*Store)

// WithLogger routes store diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// Open connects to the database described by cfg, applies the dialect's
// init statements and creates the schema if needed.
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	dialect, err := NewDialect(cfg.Driver)
	if err != nil {
		return nil, err
	}
	s := &Store{
		dialect: dialect,
		qb:      queryBuilder{dialect: dialect},
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	var dsn string
	switch dialect.DriverName() {
	case DriverPostgres:
		dsn = cfg.Postgres.DSN()
	default:
		dsn = cfg.SQLitePath
		if dsn == "" {
			dsn = DefaultConfig().SQLitePath
		}
		if !strings.HasPrefix(dsn, ":memory:") && !strings.HasPrefix(dsn, "file:") {
			if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
				return nil, fmt.Errorf("store: create database directory: %w", err)
			}
		}
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", dialect.DriverName(), err)
	}
	s.db = db

	if dialect.DriverName() == DriverPostgres {
		p := cfg.Postgres
		if p.MaxOpenConns > 0 {
			db.SetMaxOpenConns(p.MaxOpenConns)
		}
		if p.MaxIdleConns > 0 {
			db.SetMaxIdleConns(p.MaxIdleConns)
		}
		if p.ConnMaxLifetime > 0 {
			db.SetConnMaxLifetime(p.ConnMaxLifetime)
		}
	} else {
		// PRAGMAs are per connection.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: ping %s: %w", dialect.DriverName(), err)
	}
	for _, stmt := range dialect.InitStatements() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("store: %s: %w", stmt, err)
		}
	}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	s.log.Debug("store opened", "driver", dialect.DriverName())
	return s, nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Dialect reports the active SQL dialect.
func (s *Store) Dialect() Dialect {
	return s.dialect
}

func (s *Store) migrate(ctx context.Context) error {
	migrations := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS runs (
			id %s,
			level TEXT NOT NULL,
			algorithm TEXT NOT NULL,
			strategy TEXT NOT NULL,
			seed BIGINT NOT NULL DEFAULT 0,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			ideal_moves INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			accuracy DOUBLE PRECISION NOT NULL,
			elapsed_ms BIGINT NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			fallback INTEGER NOT NULL DEFAULT 0,
			layout TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL
		)`, s.dialect.PrimaryKey()),
		`CREATE INDEX IF NOT EXISTS idx_runs_level ON runs(level)`,
	}
	for _, m := range migrations {
		if _, err := s.db.ExecContext(ctx, m); err != nil {
			return fmt.Errorf("store: migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}
