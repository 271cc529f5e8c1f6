// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport for the customer
// service REST API.
//
// The primary abstraction is [CustomerAdapter], which decouples the
// command-line client from the underlying protocol. The package ships an
// HTTP/REST implementation ([NewHTTPCustomerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/joycesaquino/customer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CustomerAdapter defines communication with the customer service.
// Implementations are responsible for serialisation, the bearer token header
// and mapping transport-level errors to the sentinel values defined in this
// package.
type CustomerAdapter interface {
	// ListCustomers fetches every customer via GET /api/customers.
	ListCustomers(ctx context.Context) ([]models.CustomerDTO, error)

	// GetCustomerByID fetches one customer. A missing customer yields
	// [ErrNotFound].
	GetCustomerByID(ctx context.Context, id models.CustomerID) (*models.CustomerDTO, error)

	// GetCustomerByEmail looks a customer up by exact email. A missing
	// customer yields [ErrNotFound].
	GetCustomerByEmail(ctx context.Context, email string) (*models.CustomerDTO, error)

	// CreateCustomer registers a new customer and returns the stored record.
	// A taken email yields [ErrConflict]; rejected input yields [ErrBadRequest].
	CreateCustomer(ctx context.Context, input models.CustomerCreate) (*models.CustomerDTO, error)

	// UpdateCustomer replaces the mutable fields of a customer.
	UpdateCustomer(ctx context.Context, id models.CustomerID, input models.CustomerUpdate) (*models.CustomerDTO, error)

	// DeleteCustomer removes a customer.
	DeleteCustomer(ctx context.Context, id models.CustomerID) error

	// GetAppInfo fetches the build metadata of the running service.
	GetAppInfo(ctx context.Context) (models.AppInfo, error)
}
