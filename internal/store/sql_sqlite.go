package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
	"go.nhat.io/clock"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"

	"github.com/joycesaquino/customer/internal/config"
	"github.com/joycesaquino/customer/internal/logger"
	"github.com/joycesaquino/customer/migrations"
)

const sqliteScheme = "sqlite://"

// NewConnectSQLite opens and pings a SQLite database. The DSN is either
// "sqlite://<path>" or a "file:" URI understood by mattn/go-sqlite3.
//
// SQLite serialises writers, so the pool is limited to a single connection;
// this also keeps ":memory:" databases from being split across connections.
func NewConnectSQLite(ctx context.Context, cfg config.DB, clk clock.Clock, log *logger.Logger) (*DB, error) {
	cfg.DSN = sqliteDataSource(cfg.DSN)
	cfg.MaxOpenConns = 1
	cfg.MaxIdleConns = 1

	conn, err := openInstrumented("sqlite3", cfg.DSN, semconv.DBSystemSqlite, cfg)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		dialect:            migrations.DialectSQLite,
		placeholder:        squirrel.Question,
		errorClassificator: NewSQLiteErrorClassifier(),
		clock:              clk,
		logger:             log,
	}, nil
}

func sqliteDataSource(dsn string) string {
	return strings.TrimPrefix(dsn, sqliteScheme)
}
