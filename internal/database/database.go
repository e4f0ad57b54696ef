// Package database opens the configured SQL driver and wraps it in a
// sqlq.DB with the matching dialect.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// Registered drivers: "mysql", "pgx", "postgres" and "sqlite".
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/emanuelbalogun/LightBnB/internal/config"
	"github.com/emanuelbalogun/LightBnB/sqlq"
)

// PingTimeout bounds the connectivity check in Open.
const PingTimeout = 5 * time.Second

// Open connects using cfg and verifies the connection.
func Open(ctx context.Context, cfg config.Database) (*sqlq.DB, error) {
	d, err := sqlq.DialectByName(cfg.Driver)
	if err != nil {
		return nil, err
	}

	raw, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}
	raw.SetMaxOpenConns(cfg.MaxOpenConns)
	raw.SetMaxIdleConns(cfg.MaxIdleConns)
	raw.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, PingTimeout)
	defer cancel()
	if err := raw.PingContext(pingCtx); err != nil {
		_ = raw.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.Driver, err)
	}

	return sqlq.New(raw, d), nil
}
