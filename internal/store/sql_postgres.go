package store

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.nhat.io/clock"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"

	"github.com/joycesaquino/customer/internal/config"
	"github.com/joycesaquino/customer/internal/logger"
	"github.com/joycesaquino/customer/migrations"
)

// NewConnectPostgres opens and pings a PostgreSQL connection pool through
// the pgx stdlib driver.
func NewConnectPostgres(ctx context.Context, cfg config.DB, clk clock.Clock, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := openInstrumented("pgx", cfg.DSN, semconv.DBSystemPostgreSQL, cfg)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		dialect:            migrations.DialectPostgres,
		placeholder:        squirrel.Dollar,
		errorClassificator: NewPostgresErrorClassifier(),
		clock:              clk,
		logger:             log,
	}, nil
}
