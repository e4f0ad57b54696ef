package sqlq

import "fmt"

// Dialect abstracts SQL differences between database engines.
type Dialect interface {
	// Name identifies the dialect in logs and configuration.
	Name() string

	// Placeholder returns the bind parameter placeholder for the given
	// 1-based index. MySQL and SQLite return "?" regardless of index;
	// PostgreSQL returns "$1", "$2", etc.
	Placeholder(index int) string

	// QuoteIdent quotes an identifier (table name, column name) to safely
	// handle SQL reserved words. MySQL uses backticks; PostgreSQL and
	// SQLite use double quotes.
	QuoteIdent(name string) string

	// ReturnsRows reports whether INSERT ... RETURNING * hands back the
	// stored row (PostgreSQL, SQLite). When false the row is re-read by
	// its LastInsertId (MySQL).
	ReturnsRows() bool
}

// MySQL is the Dialect for MySQL / MariaDB.
var MySQL Dialect = mysqlDialect{}

// PostgreSQL is the Dialect for PostgreSQL.
var PostgreSQL Dialect = postgresDialect{}

// SQLite is the Dialect for SQLite 3.35 and later.
var SQLite Dialect = sqliteDialect{}

type mysqlDialect struct{}

func (mysqlDialect) Name() string                  { return "mysql" }
func (mysqlDialect) Placeholder(_ int) string      { return "?" }
func (mysqlDialect) QuoteIdent(name string) string { return "`" + name + "`" }
func (mysqlDialect) ReturnsRows() bool             { return false }

type postgresDialect struct{}

func (postgresDialect) Name() string                  { return "postgres" }
func (postgresDialect) Placeholder(index int) string  { return fmt.Sprintf("$%d", index) }
func (postgresDialect) QuoteIdent(name string) string { return `"` + name + `"` }
func (postgresDialect) ReturnsRows() bool             { return true }

type sqliteDialect struct{}

func (sqliteDialect) Name() string                  { return "sqlite" }
func (sqliteDialect) Placeholder(_ int) string      { return "?" }
func (sqliteDialect) QuoteIdent(name string) string { return `"` + name + `"` }
func (sqliteDialect) ReturnsRows() bool             { return true }

// DialectByName returns the Dialect registered under name.
// "pgx" and "postgres" both map to PostgreSQL.
func DialectByName(name string) (Dialect, error) {
	switch name {
	case "mysql":
		return MySQL, nil
	case "postgres", "pgx":
		return PostgreSQL, nil
	case "sqlite":
		return SQLite, nil
	default:
		return nil, fmt.Errorf("sqlq: unknown dialect %q", name)
	}
}
