package store

import (
	"fmt"
	"strings"
)

// Dialect hides the SQL differences between sqlite and PostgreSQL.
type Dialect interface {
	// DriverName is the database/sql driver name.
	DriverName() string

	// Placeholder returns the bind parameter for position (1-based).
	Placeholder(position int) string

	// SupportsLastInsertID reports whether sql.Result.LastInsertId works.
	// When false, inserts append ReturningClause instead.
	SupportsLastInsertID() bool

	// ReturningClause returns the RETURNING suffix for column, or "".
	ReturningClause(column string) string

	// PrimaryKey is the column definition of an auto-incrementing id.
	PrimaryKey() string

	// InitStatements run once per connection pool before migrations.
	InitStatements() []string
}

// NewDialect returns the dialect for driver. Empty means sqlite.
func NewDialect(driver string) (Dialect, error) {
	switch strings.ToLower(driver) {
	case "", DriverSQLite:
		return sqliteDialect{}, nil
	case DriverPostgres:
		return postgresDialect{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}

type sqliteDialect struct{}

func (sqliteDialect) DriverName() string            { return DriverSQLite }
func (sqliteDialect) Placeholder(int) string        { return "?" }
func (sqliteDialect) SupportsLastInsertID() bool    { return true }
func (sqliteDialect) ReturningClause(string) string { return "" }
func (sqliteDialect) PrimaryKey() string            { return "INTEGER PRIMARY KEY AUTOINCREMENT" }

func (sqliteDialect) InitStatements() []string {
	return []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
}

type postgresDialect struct{}

func (postgresDialect) DriverName() string { return DriverPostgres }

func (postgresDialect) Placeholder(position int) string {
	return fmt.Sprintf("$%d", position)
}

func (postgresDialect) SupportsLastInsertID() bool { return false }

func (postgresDialect) ReturningClause(column string) string {
	return " RETURNING " + column
}

func (postgresDialect) PrimaryKey() string { return "BIGSERIAL PRIMARY KEY" }

func (postgresDialect) InitStatements() []string { return nil }
