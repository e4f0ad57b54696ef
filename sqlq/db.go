package sqlq

import (
	"context"
	"database/sql"
	"time"
)

// Querier is the common interface for DB and Tx.
// Table factories accept this so that queries work with both.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	dialect() Dialect
}

// LogEntry describes one executed statement.
type LogEntry struct {
	Query   string
	Args    []any
	Elapsed time.Duration
	Err     error
}

// Logger receives an entry after every statement sent to the database.
type Logger interface {
	Log(ctx context.Context, e LogEntry)
}

type execer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// runner holds what DB and Tx share: the raw executor, the dialect and the
// optional logger.
type runner struct {
	exec   execer
	d      Dialect
	logger Logger
}

func (r runner) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := r.exec.QueryContext(ctx, query, args...)
	r.log(ctx, query, args, start, err)
	return rows, err //nolint:wrapcheck // thin wrapper
}

func (r runner) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	res, err := r.exec.ExecContext(ctx, query, args...)
	r.log(ctx, query, args, start, err)
	return res, err //nolint:wrapcheck // thin wrapper
}

func (r runner) log(ctx context.Context, query string, args []any, start time.Time, err error) {
	if r.logger == nil {
		return
	}
	r.logger.Log(ctx, LogEntry{Query: query, Args: args, Elapsed: time.Since(start), Err: err})
}

func (r runner) dialect() Dialect { return r.d }

// DB wraps *sql.DB with a Dialect and satisfies Querier.
type DB struct {
	runner
	raw *sql.DB
}

// New wraps a *sql.DB with the given Dialect.
func New(db *sql.DB, d Dialect) *DB {
	return &DB{runner: runner{exec: db, d: d}, raw: db}
}

// Debug returns a new *DB that reports every statement to the given Logger.
// The original DB is not modified.
func (db *DB) Debug(l Logger) *DB {
	return &DB{runner: runner{exec: db.raw, d: db.d, logger: l}, raw: db.raw}
}

// Dialect returns the dialect the DB was opened with.
func (db *DB) Dialect() Dialect { return db.d }

// Begin starts a transaction.
func (db *DB) Begin(ctx context.Context) (*Tx, error) {
	tx, err := db.raw.BeginTx(ctx, nil)
	if err != nil {
		return nil, err //nolint:wrapcheck // thin wrapper
	}
	return &Tx{runner: runner{exec: tx, d: db.d, logger: db.logger}, raw: tx}, nil
}

// Transaction executes fn within a transaction.
// If fn returns nil the transaction is committed.
// If fn returns an error or panics the transaction is rolled back.
func (db *DB) Transaction(ctx context.Context, fn func(tx *Tx) error) (err error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	err = fn(tx)
	if err != nil {
		return err
	}
	return tx.Commit()
}

// Close closes the underlying *sql.DB.
func (db *DB) Close() error { return db.raw.Close() } //nolint:wrapcheck // thin wrapper

// Tx wraps *sql.Tx with a Dialect and satisfies Querier.
type Tx struct {
	runner
	raw *sql.Tx
}

// Commit commits the transaction.
func (tx *Tx) Commit() error { return tx.raw.Commit() } //nolint:wrapcheck // thin wrapper

// Rollback rolls back the transaction.
func (tx *Tx) Rollback() error { return tx.raw.Rollback() } //nolint:wrapcheck // thin wrapper

var (
	_ Querier = (*DB)(nil)
	_ Querier = (*Tx)(nil)
)
