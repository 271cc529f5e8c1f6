package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/joycesaquino/customer/internal/mock"
	"github.com/joycesaquino/customer/internal/validators"
	"github.com/joycesaquino/customer/models"
)

func newValidationService(t *testing.T) (CustomerService, *mock.MockCustomerService) {
	t.Helper()
	inner := mock.NewMockCustomerService(gomock.NewController(t))
	return NewCustomerValidationService().Wrap(inner), inner
}

func TestCustomerValidationService_CreateCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("valid input is forwarded", func(t *testing.T) {
		svc, inner := newValidationService(t)
		input := &models.CustomerCreate{FirstName: "John", LastName: "Doe", Email: "john@example.com"}
		want := &models.CustomerDTO{ID: 1}
		inner.EXPECT().CreateCustomer(ctx, input).Return(want, nil)

		got, err := svc.CreateCustomer(ctx, input)

		require.NoError(t, err)
		assert.Same(t, want, got)
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		svc, _ := newValidationService(t)

		_, err := svc.CreateCustomer(ctx, &models.CustomerCreate{FirstName: "John"})

		require.ErrorIs(t, err, ErrInvalidDataProvided)
		assert.ErrorIs(t, err, validators.ErrRequiredField)
	})

	t.Run("nil input is rejected", func(t *testing.T) {
		svc, _ := newValidationService(t)

		_, err := svc.CreateCustomer(ctx, nil)

		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestCustomerValidationService_UpdateCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("valid input is forwarded", func(t *testing.T) {
		svc, inner := newValidationService(t)
		input := &models.CustomerUpdate{FirstName: "A", LastName: "B", Email: "c@example.com", Status: models.StatusSuspended}
		inner.EXPECT().UpdateCustomer(ctx, models.CustomerID(3), input).Return(nil, nil)

		got, err := svc.UpdateCustomer(ctx, 3, input)

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		svc, _ := newValidationService(t)

		_, err := svc.UpdateCustomer(ctx, 3, &models.CustomerUpdate{FirstName: "A", LastName: "B", Email: "c@example.com", Status: "GONE"})

		require.ErrorIs(t, err, ErrInvalidDataProvided)
		assert.ErrorIs(t, err, models.ErrInvalidCustomerStatus)
	})
}

func TestCustomerValidationService_PassThrough(t *testing.T) {
	ctx := context.Background()
	svc, inner := newValidationService(t)

	inner.EXPECT().ListCustomers(ctx).Return([]models.CustomerDTO{}, nil)
	inner.EXPECT().GetCustomerByID(ctx, models.CustomerID(1)).Return(nil, nil)
	inner.EXPECT().GetCustomerByEmail(ctx, "a@example.com").Return(nil, nil)
	inner.EXPECT().DeleteCustomer(ctx, models.CustomerID(1)).Return(nil)
	inner.EXPECT().ExistsByEmail(ctx, "a@example.com").Return(true, nil)

	_, err := svc.ListCustomers(ctx)
	require.NoError(t, err)
	_, err = svc.GetCustomerByID(ctx, 1)
	require.NoError(t, err)
	_, err = svc.GetCustomerByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	require.NoError(t, svc.DeleteCustomer(ctx, 1))
	exists, err := svc.ExistsByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}
