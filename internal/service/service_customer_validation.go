package service

import (
	"context"
	"fmt"

	"github.com/joycesaquino/customer/internal/logger"
	"github.com/joycesaquino/customer/internal/validators"
	"github.com/joycesaquino/customer/models"
)

// CustomerValidationService rejects malformed create and update inputs
// before they reach the wrapped CustomerService. Read and delete calls pass
// straight through.
type CustomerValidationService struct {
	inner     CustomerService
	validator validators.Validator
}

func NewCustomerValidationService() CustomerServiceWrapper {
	return &CustomerValidationService{
		validator: validators.NewCustomerValidator(),
	}
}

func (v *CustomerValidationService) ListCustomers(ctx context.Context) ([]models.CustomerDTO, error) {
	return v.inner.ListCustomers(ctx)
}

func (v *CustomerValidationService) GetCustomerByID(ctx context.Context, id models.CustomerID) (*models.CustomerDTO, error) {
	return v.inner.GetCustomerByID(ctx, id)
}

func (v *CustomerValidationService) GetCustomerByEmail(ctx context.Context, email string) (*models.CustomerDTO, error) {
	return v.inner.GetCustomerByEmail(ctx, email)
}

func (v *CustomerValidationService) CreateCustomer(ctx context.Context, input *models.CustomerCreate) (*models.CustomerDTO, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("customer create input rejected")
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateCustomer(ctx, input)
}

func (v *CustomerValidationService) UpdateCustomer(ctx context.Context, id models.CustomerID, input *models.CustomerUpdate) (*models.CustomerDTO, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("customer update input rejected")
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateCustomer(ctx, id, input)
}

func (v *CustomerValidationService) DeleteCustomer(ctx context.Context, id models.CustomerID) error {
	return v.inner.DeleteCustomer(ctx, id)
}

func (v *CustomerValidationService) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return v.inner.ExistsByEmail(ctx, email)
}

func (v *CustomerValidationService) Wrap(wrapped CustomerService) CustomerService {
	v.inner = wrapped
	return v
}
