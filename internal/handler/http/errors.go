// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the HTTP layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is reported when authentication is required
	// and the request carries no "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidCustomerID is returned when the {id} path segment is not a
	// base-10 integer.
	ErrInvalidCustomerID = errors.New("customer id must be an integer")

	// ErrMissingEmailParam is returned when /by-email is called without the
	// email query parameter.
	ErrMissingEmailParam = errors.New("missing `email` query parameter")

	// ErrAccessDenied is returned when the access policy rejects a request.
	ErrAccessDenied = errors.New("access denied")
)
