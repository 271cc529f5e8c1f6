package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an insert or update violates the
	// unique constraint on the email column.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrCustomerNotFound is returned by Save when the row to update no
	// longer exists.
	ErrCustomerNotFound = errors.New("customer was not found")

	// ErrRequiredFieldMissing is returned when the store rejects a NULL in a
	// NOT NULL column.
	ErrRequiredFieldMissing = errors.New("required customer field is missing")

	// ErrUnsupportedDSN is returned by NewStorages when the DSN does not name
	// a known backend.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a customer fails.
	ErrScanningRow = errors.New("failed to scan customer row")

	// ErrScanningRows is returned when iterating a multi-row result fails
	// mid-result-set.
	ErrScanningRows = errors.New("failed to scan customer rows")
)
