// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"go.nhat.io/clock"

	"github.com/joycesaquino/customer/models"
)

// memoryCustomerRepository is an in-process [CustomerRepository] used for
// local runs and tests. It enforces the same email uniqueness and timestamp
// rules as the SQL implementation. Data is lost when the process exits.
type memoryCustomerRepository struct {
	mu        sync.RWMutex
	customers map[models.CustomerID]models.Customer
	lastID    models.CustomerID
	clock     clock.Clock
}

// NewMemoryCustomerRepository returns an empty in-memory repository that
// stamps timestamps using clk.
func NewMemoryCustomerRepository(clk clock.Clock) CustomerRepository {
	return &memoryCustomerRepository{
		customers: make(map[models.CustomerID]models.Customer),
		clock:     clk,
	}
}

func (m *memoryCustomerRepository) FindAll(_ context.Context) ([]models.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := slices.Sorted(maps.Keys(m.customers))
	customers := make([]models.Customer, 0, len(ids))
	for _, id := range ids {
		customers = append(customers, copyCustomer(m.customers[id]))
	}

	return customers, nil
}

func (m *memoryCustomerRepository) FindByID(_ context.Context, id models.CustomerID) (*models.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.customers[id]
	if !ok {
		return nil, nil
	}

	c = copyCustomer(c)
	return &c, nil
}

func (m *memoryCustomerRepository) FindByEmail(_ context.Context, email string) (*models.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.idByEmail(email)
	if !ok {
		return nil, nil
	}

	c := copyCustomer(m.customers[id])
	return &c, nil
}

func (m *memoryCustomerRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.idByEmail(email)
	return ok, nil
}

func (m *memoryCustomerRepository) Save(_ context.Context, customer models.Customer) (*models.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !customer.Status.IsValid() {
		return nil, models.ErrInvalidCustomerStatus
	}

	if owner, ok := m.idByEmail(customer.Email); ok && owner != customer.ID {
		return nil, ErrEmailAlreadyExists
	}

	now := m.clock.Now().UTC().Truncate(time.Microsecond)
	saved := copyCustomer(customer)

	if customer.ID.IsZero() {
		m.lastID++
		saved.ID = m.lastID
		saved.CreatedAt = now
	} else {
		existing, ok := m.customers[customer.ID]
		if !ok {
			return nil, ErrCustomerNotFound
		}
		saved.CreatedAt = existing.CreatedAt
	}
	saved.UpdatedAt = now

	m.customers[saved.ID] = saved

	result := copyCustomer(saved)
	return &result, nil
}

func (m *memoryCustomerRepository) DeleteByID(_ context.Context, id models.CustomerID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.customers, id)
	return nil
}

// Ping always succeeds.
func (m *memoryCustomerRepository) Ping(_ context.Context) error {
	return nil
}

// idByEmail must be called with mu held.
func (m *memoryCustomerRepository) idByEmail(email string) (models.CustomerID, bool) {
	for id, c := range m.customers {
		if c.Email == email {
			return id, true
		}
	}
	return 0, false
}

// copyCustomer detaches the phone pointer so callers never share state with
// the stored value.
func copyCustomer(c models.Customer) models.Customer {
	if c.Phone != nil {
		phone := *c.Phone
		c.Phone = &phone
	}
	return c
}
