package models

import "time"

// CustomerID identifies a persisted customer. It is assigned by the store on
// first insert; the zero value means the customer has not been saved yet.
type CustomerID int64

// IsZero reports whether the identifier has not been assigned.
func (id CustomerID) IsZero() bool {
	return id == 0
}

// Customer is the persistence representation of a row in the "customers" table.
type Customer struct {
	// ID is the store-assigned primary key.
	ID CustomerID

	// FirstName and LastName are free-text and required by the store.
	FirstName string
	LastName  string

	// Email is unique across all customers.
	Email string

	// Phone is optional.
	Phone *string

	// Status is always one of the enumerated values once persisted.
	Status CustomerStatus

	// CreatedAt is stamped once on insert.
	CreatedAt time.Time

	// UpdatedAt is stamped on insert and on every update.
	UpdatedAt time.Time
}

// CustomerCreate is the input accepted when creating a customer.
type CustomerCreate struct {
	FirstName string         `json:"firstName" validate:"required,max=255"`
	LastName  string         `json:"lastName" validate:"required,max=255"`
	Email     string         `json:"email" validate:"required,max=255"`
	Phone     *string        `json:"phone" validate:"omitempty,max=64"`
	Status    CustomerStatus `json:"status,omitempty" validate:"omitempty,customer_status"`
}

// CustomerUpdate is the input accepted when updating a customer. All five
// mutable fields are overwritten; there are no partial updates.
type CustomerUpdate struct {
	FirstName string         `json:"firstName" validate:"required,max=255"`
	LastName  string         `json:"lastName" validate:"required,max=255"`
	Email     string         `json:"email" validate:"required,max=255"`
	Phone     *string        `json:"phone" validate:"omitempty,max=64"`
	Status    CustomerStatus `json:"status,omitempty" validate:"omitempty,customer_status"`
}

// CustomerDTO is the output shape returned to API clients.
type CustomerDTO struct {
	ID        CustomerID     `json:"id"`
	FirstName string         `json:"firstName"`
	LastName  string         `json:"lastName"`
	Email     string         `json:"email"`
	Phone     *string        `json:"phone"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Status    CustomerStatus `json:"status"`
}
