package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/joycesaquino/customer/models"
)

// CustomerRepository is the persistence gateway for customers.
//
// Lookups that match nothing return (nil, nil); absence is never an error.
type CustomerRepository interface {
	// FindAll returns every stored customer ordered by id. An empty store
	// yields an empty, non-nil slice.
	FindAll(ctx context.Context) ([]models.Customer, error)

	// FindByID returns the customer with the given id, or nil.
	FindByID(ctx context.Context, id models.CustomerID) (*models.Customer, error)

	// FindByEmail returns the customer with exactly this email, or nil.
	FindByEmail(ctx context.Context, email string) (*models.Customer, error)

	// ExistsByEmail reports whether a customer with exactly this email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Save inserts customer when its ID is zero and updates the stored row
	// otherwise. The returned value carries the store-assigned id and
	// timestamps. An update of a missing row fails with [ErrCustomerNotFound]
	// and a duplicate email with [ErrEmailAlreadyExists].
	Save(ctx context.Context, customer models.Customer) (*models.Customer, error)

	// DeleteByID removes the customer if present. Deleting a missing id is
	// a no-op.
	DeleteByID(ctx context.Context, id models.CustomerID) error
}

// ErrorClassificator maps a driver error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// Pinger reports whether the underlying store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
