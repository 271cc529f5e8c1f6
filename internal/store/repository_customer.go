package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/joycesaquino/customer/internal/logger"
	"github.com/joycesaquino/customer/models"
)

// customerRepository is the SQL implementation of [CustomerRepository].
// The same code serves PostgreSQL and SQLite; dialect differences are
// carried by the [DB] (placeholder format and error classifier).
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type customerRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCustomerRepository constructs a [CustomerRepository] backed by the
// provided database connection and logger.
func NewCustomerRepository(db *DB, logger *logger.Logger) CustomerRepository {
	logger.Debug().Msg("creating customer repository")
	return &customerRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanCustomer reads one row selected with customerColumns.
func scanCustomer(row rowScanner) (models.Customer, error) {
	var (
		c     models.Customer
		id    int64
		phone sql.NullString
	)

	if err := row.Scan(&id, &c.FirstName, &c.LastName, &c.Email, &phone, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return models.Customer{}, err
	}

	c.ID = models.CustomerID(id)
	if phone.Valid {
		c.Phone = &phone.String
	}
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()

	return c, nil
}

// FindAll returns every customer ordered by id.
func (r *customerRepository) FindAll(ctx context.Context) ([]models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllCustomersQuery(r.db.builder())
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.FindAll").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.FindAll").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, translateError(r.db.errorClassificator, err))
	}
	defer rows.Close()

	customers := make([]models.Customer, 0)
	for rows.Next() {
		c, scanErr := scanCustomer(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*customerRepository.FindAll").Msg("failed to scan customer row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		customers = append(customers, c)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*customerRepository.FindAll").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return customers, nil
}

// FindByID returns the customer with the given id, or (nil, nil).
func (r *customerRepository) FindByID(ctx context.Context, id models.CustomerID) (*models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCustomerByIDQuery(r.db.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.FindByID").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	c, err := r.queryOne(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.FindByID").Int64("id", int64(id)).Msg("failed to find customer")
		return nil, err
	}

	return c, nil
}

// FindByEmail returns the customer with exactly this email, or (nil, nil).
func (r *customerRepository) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCustomerByEmailQuery(r.db.builder(), email)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.FindByEmail").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	c, err := r.queryOne(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.FindByEmail").Msg("failed to find customer")
		return nil, err
	}

	return c, nil
}

// ExistsByEmail reports whether a row with exactly this email exists.
func (r *customerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildExistsByEmailQuery(r.db.builder(), email)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.ExistsByEmail").Msg("failed to create query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		log.Err(err).Str("func", "*customerRepository.ExistsByEmail").Msg("failed to check email existence")
		return false, translateError(r.db.errorClassificator, err)
	}

	return true, nil
}

// Save inserts a customer with a zero ID and updates it otherwise. Both
// statements return the stored row, so the result reflects the
// store-assigned id and timestamps.
func (r *customerRepository) Save(ctx context.Context, customer models.Customer) (*models.Customer, error) {
	log := logger.FromContext(ctx)

	var (
		query string
		args  []any
		err   error
	)
	now := r.db.now()
	if customer.ID.IsZero() {
		query, args, err = buildInsertCustomerQuery(r.db.builder(), customer, now)
	} else {
		query, args, err = buildUpdateCustomerQuery(r.db.builder(), customer, now)
	}
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.Save").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	saved, err := r.queryOne(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.Save").Int64("id", int64(customer.ID)).Msg("failed to save customer")
		return nil, err
	}

	// RETURNING produced no row: the row to update is gone
	if saved == nil {
		return nil, ErrCustomerNotFound
	}

	return saved, nil
}

// DeleteByID removes the row if present; a missing id is not an error.
func (r *customerRepository) DeleteByID(ctx context.Context, id models.CustomerID) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCustomerQuery(r.db.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.DeleteByID").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*customerRepository.DeleteByID").Int64("id", int64(id)).Msg("failed to delete customer")
		return translateError(r.db.errorClassificator, err)
	}

	return nil
}

// queryOne runs a query expected to produce at most one customer row.
// No row yields (nil, nil).
func (r *customerRepository) queryOne(ctx context.Context, query string, args ...any) (*models.Customer, error) {
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		return nil, translateError(r.db.errorClassificator, err)
	}

	c, err := scanCustomer(row)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, translateError(r.db.errorClassificator, err)
	}

	return &c, nil
}
