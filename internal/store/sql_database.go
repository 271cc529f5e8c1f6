package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/joycesaquino/customer/internal/config"
	"github.com/joycesaquino/customer/internal/logger"
	"github.com/joycesaquino/customer/migrations"
	"go.nhat.io/clock"
	"go.nhat.io/otelsql"
	"go.opentelemetry.io/otel/attribute"
)

// DB is a *sql.DB bound to one SQL dialect: its placeholder format, its
// error classifier and the goose dialect used for migrations.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        squirrel.PlaceholderFormat
	errorClassificator ErrorClassificator
	clock              clock.Clock
	logger             *logger.Logger
}

// Migrate applies the embedded migrations of the DB's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Ping verifies the connection is alive.
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

func (db *DB) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(db.placeholder)
}

// now returns the current time as stored by the database: UTC with
// microsecond precision, so that a value read back compares equal to the
// value written.
func (db *DB) now() time.Time {
	return db.clock.Now().UTC().Truncate(time.Microsecond)
}

// openInstrumented opens driverName through an otelsql wrapper that traces
// queries (without arguments) and records connection pool metrics.
func openInstrumented(driverName, dsn string, system attribute.KeyValue, cfg config.DB) (*sql.DB, error) {
	instrumented, err := otelsql.Register(driverName,
		otelsql.AllowRoot(),
		otelsql.TraceQueryWithoutArgs(),
		otelsql.WithSystem(system),
	)
	if err != nil {
		return nil, fmt.Errorf("error registering instrumented %s driver: %w", driverName, err)
	}

	conn, err := sql.Open(instrumented, dsn)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	if err := otelsql.RecordStats(conn, otelsql.WithSystem(system)); err != nil {
		conn.Close()
		return nil, fmt.Errorf("error recording db stats: %w", err)
	}

	return conn, nil
}
