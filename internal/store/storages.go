package store

import (
	"context"
	"fmt"
	"strings"

	"go.nhat.io/clock"

	"github.com/joycesaquino/customer/internal/config"
	"github.com/joycesaquino/customer/internal/logger"
)

// DSN values and prefixes that select a backend.
const (
	MemoryDSN = "memory"

	postgresScheme   = "postgres://"
	postgresqlScheme = "postgresql://"
	fileScheme       = "file:"
)

// Storages aggregates the repositories used by the service layer together
// with the lifecycle of the connection behind them.
type Storages struct {
	CustomerRepository CustomerRepository

	pinger Pinger
	db     *DB
}

// NewStorages selects a backend from cfg.DB.DSN, connects to it, applies
// migrations and builds the repositories:
//   - "postgres://" or "postgresql://" → PostgreSQL via pgx;
//   - "sqlite://" or "file:"           → SQLite;
//   - "memory"                          → in-process map.
func NewStorages(ctx context.Context, cfg config.Storage, clk clock.Clock, log *logger.Logger) (*Storages, error) {
	dsn := cfg.DB.DSN

	var (
		db  *DB
		err error
	)
	switch {
	case dsn == MemoryDSN:
		log.Info().Str("func", "NewStorages").Msg("using in-memory customer storage")
		repo := NewMemoryCustomerRepository(clk)
		return &Storages{
			CustomerRepository: repo,
			pinger:             repo.(Pinger),
		}, nil
	case strings.HasPrefix(dsn, postgresScheme), strings.HasPrefix(dsn, postgresqlScheme):
		db, err = NewConnectPostgres(ctx, cfg.DB, clk, log)
	case strings.HasPrefix(dsn, sqliteScheme), strings.HasPrefix(dsn, fileScheme):
		db, err = NewConnectSQLite(ctx, cfg.DB, clk, log)
	default:
		return nil, fmt.Errorf("%w: expected %q, %q, %q or %q", ErrUnsupportedDSN, postgresScheme, sqliteScheme, fileScheme, MemoryDSN)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}
	log.Info().Str("func", "NewStorages").Msg("migrations applied")

	return &Storages{
		CustomerRepository: NewCustomerRepository(db, log),
		pinger:             db,
		db:                 db,
	}, nil
}

// Ping reports whether the backing store is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	if s.pinger == nil {
		return nil
	}
	return s.pinger.Ping(ctx)
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
