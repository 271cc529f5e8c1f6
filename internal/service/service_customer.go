// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/joycesaquino/customer/internal/logger"
	"github.com/joycesaquino/customer/internal/mapper"
	"github.com/joycesaquino/customer/internal/store"
	"github.com/joycesaquino/customer/models"
)

// customerService is the concrete implementation of CustomerService.
// Each operation is a single call (two for update) into the repository;
// nothing is retried and repository errors are wrapped, never replaced.
type customerService struct {
	customerRepository store.CustomerRepository

	logger *logger.Logger
}

func NewCustomerService(customerRepository store.CustomerRepository, logger *logger.Logger) CustomerService {
	return &customerService{
		customerRepository: customerRepository,
		logger:             logger,
	}
}

func (s *customerService) ListCustomers(ctx context.Context) ([]models.CustomerDTO, error) {
	customers, err := s.customerRepository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing customers: %w", err)
	}

	return mapper.ToDTOList(customers), nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, id models.CustomerID) (*models.CustomerDTO, error) {
	customer, err := s.customerRepository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting customer by id: %w", err)
	}

	return mapper.ToDTO(customer), nil
}

func (s *customerService) GetCustomerByEmail(ctx context.Context, email string) (*models.CustomerDTO, error) {
	customer, err := s.customerRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error getting customer by email: %w", err)
	}

	return mapper.ToDTO(customer), nil
}

// CreateCustomer does not check email uniqueness; the caller does that
// before calling. A duplicate that slips through surfaces as
// store.ErrEmailAlreadyExists.
func (s *customerService) CreateCustomer(ctx context.Context, input *models.CustomerCreate) (*models.CustomerDTO, error) {
	entity := mapper.ToEntity(input)
	if entity == nil {
		return nil, ErrInvalidDataProvided
	}

	saved, err := s.customerRepository.Save(ctx, *entity)
	if err != nil {
		return nil, fmt.Errorf("error creating customer: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int64("customer_id", int64(saved.ID)).
		Msg("customer created")

	return mapper.ToDTO(saved), nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id models.CustomerID, input *models.CustomerUpdate) (*models.CustomerDTO, error) {
	existing, err := s.customerRepository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error loading customer for update: %w", err)
	}
	if existing == nil {
		return nil, nil
	}

	updated := mapper.UpdateEntity(existing, input)

	saved, err := s.customerRepository.Save(ctx, *updated)
	if err != nil {
		return nil, fmt.Errorf("error updating customer: %w", err)
	}

	return mapper.ToDTO(saved), nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id models.CustomerID) error {
	if err := s.customerRepository.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("error deleting customer: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int64("customer_id", int64(id)).
		Msg("customer deleted")

	return nil
}

func (s *customerService) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	exists, err := s.customerRepository.ExistsByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("error checking customer email: %w", err)
	}

	return exists, nil
}
