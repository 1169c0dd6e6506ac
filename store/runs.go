package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Run is one finished (won, abandoned or timed-out) maze session.
type Run struct {
	ID         int64
	Level      string
	Algorithm  string
	Strategy   string
	Seed       int64
	Width      int
	Height     int
	IdealMoves int
	Moves      int
	Accuracy   float64
	Elapsed    time.Duration
	Won        bool
	Fallback   bool
	// Layout is the maze as newline-separated rows.
	Layout    string
	CreatedAt time.Time
}

// Validate reports missing or out-of-range fields, wrapping ErrInvalidRun.
func (r *Run) Validate() error {
	switch {
	case strings.TrimSpace(r.Level) == "":
		return fmt.Errorf("%w: empty level", ErrInvalidRun)
	case r.Width <= 0 || r.Height <= 0:
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidRun, r.Width, r.Height)
	case r.Moves < 0 || r.IdealMoves < 0:
		return fmt.Errorf("%w: negative move count", ErrInvalidRun)
	case r.Elapsed < 0:
		return fmt.Errorf("%w: negative elapsed time", ErrInvalidRun)
	}
	return nil
}

const runColumns = `id, level, algorithm, strategy, seed, width, height, ideal_moves,
	moves, accuracy, elapsed_ms, won, fallback, layout, created_at`

// SaveRun inserts r and sets r.ID. A zero CreatedAt is stamped with the
// current UTC time.
func (s *Store) SaveRun(ctx context.Context, r *Run) (int64, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	query := s.qb.BuildWithReturning(`INSERT INTO runs (level, algorithm, strategy, seed, width,
		height, ideal_moves, moves, accuracy, elapsed_ms, won, fallback, layout, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, "id")
	args := []any{
		r.Level, r.Algorithm, r.Strategy, r.Seed, r.Width, r.Height, r.IdealMoves,
		r.Moves, r.Accuracy, r.Elapsed.Milliseconds(), boolInt(r.Won), boolInt(r.Fallback),
		r.Layout, r.CreatedAt,
	}

	var id int64
	if s.dialect.SupportsLastInsertID() {
		res, err := s.db.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, fmt.Errorf("store: insert run: %w", err)
		}
		if id, err = res.LastInsertId(); err != nil {
			return 0, fmt.Errorf("store: insert run: %w", err)
		}
	} else if err := s.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("store: insert run: %w", err)
	}

	r.ID = id
	s.log.Debug("run saved", "id", id, "level", r.Level, "won", r.Won)
	return id, nil
}

// GetRun loads a run by id. It returns ErrNotFound for an unknown id.
func (s *Store) GetRun(ctx context.Context, id int64) (Run, error) {
	row := s.db.QueryRowContext(ctx, s.qb.Build(`SELECT `+runColumns+` FROM runs WHERE id = ?`), id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("store: get run %d: %w", id, err)
	}
	return r, nil
}

// BestRuns returns up to limit won runs of level, ranked by accuracy, then
// elapsed time, then insertion order. An empty level ranks across all levels.
func (s *Store) BestRuns(ctx context.Context, level string, limit int) ([]Run, error) {
	if limit <= 0 {
		return nil, nil
	}
	query := `SELECT ` + runColumns + ` FROM runs WHERE won = 1`
	var args []any
	if level != "" {
		query += ` AND level = ?`
		args = append(args, level)
	}
	query += ` ORDER BY accuracy DESC, elapsed_ms ASC, id ASC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, s.qb.Build(query), args...)
	if err != nil {
		return nil, fmt.Errorf("store: best runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("store: best runs: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// CountRuns returns the number of stored runs of level, or of all levels
// when level is empty.
func (s *Store) CountRuns(ctx context.Context, level string) (int, error) {
	query := `SELECT COUNT(*) FROM runs`
	var args []any
	if level != "" {
		query += ` WHERE level = ?`
		args = append(args, level)
	}
	var n int
	if err := s.db.QueryRowContext(ctx, s.qb.Build(query), args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("store: count runs: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		r           Run
		elapsedMS   int64
		won, fallbk int
	)
	err := sc.Scan(&r.ID, &r.Level, &r.Algorithm, &r.Strategy, &r.Seed, &r.Width, &r.Height,
		&r.IdealMoves, &r.Moves, &r.Accuracy, &elapsedMS, &won, &fallbk, &r.Layout, &r.CreatedAt)
	if err != nil {
		return Run{}, err
	}
	r.Elapsed = time.Duration(elapsedMS) * time.Millisecond
	r.Won = won != 0
	r.Fallback = fallbk != 0
	return r, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
