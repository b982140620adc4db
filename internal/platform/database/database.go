// Package database opens the two SQL connections the portal uses: the legacy
// MySQL catalog (read-only) and the curated Postgres database.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"

	"sciport/internal/platform/config"
)

const pingTimeout = 5 * time.Second

func open(driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	return db, nil
}

// OpenMySQL connects to the legacy catalog database.
func OpenMySQL(opts config.MySQLOptions) (*sql.DB, error) {
	return open("mysql", opts.DSN())
}

// OpenPostgres connects to the curated portal database.
func OpenPostgres(opts config.PostgresOptions) (*sql.DB, error) {
	return open("postgres", opts.DSN())
}
