package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=CustomerServiceWrapper

import (
	"context"

	"github.com/joycesaquino/customer/models"
)

// CustomerService orchestrates the customer use cases on top of the
// persistence gateway. Lookups that match nothing return (nil, nil).
type CustomerService interface {
	ListCustomers(ctx context.Context) ([]models.CustomerDTO, error)

	GetCustomerByID(ctx context.Context, id models.CustomerID) (*models.CustomerDTO, error)
	GetCustomerByEmail(ctx context.Context, email string) (*models.CustomerDTO, error)

	CreateCustomer(ctx context.Context, input *models.CustomerCreate) (*models.CustomerDTO, error)
	// UpdateCustomer returns (nil, nil) when no customer has the given id.
	UpdateCustomer(ctx context.Context, id models.CustomerID, input *models.CustomerUpdate) (*models.CustomerDTO, error)
	// DeleteCustomer deletes unconditionally; callers check existence first.
	DeleteCustomer(ctx context.Context, id models.CustomerID) error

	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}

type HealthService interface {
	// Check returns nil when the store is reachable.
	Check(ctx context.Context) error
}

// CustomerServiceWrapper defines middleware composition for CustomerService.
// Implementations wrap an existing CustomerService to add behavior such as
// logging or validating.
type CustomerServiceWrapper interface {
	Wrap(CustomerService) CustomerService // returns a decorated CustomerService applying additional behavior
}
