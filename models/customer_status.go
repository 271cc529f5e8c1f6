package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// CustomerStatus is the lifecycle state of a customer account.
// Only the three declared values are valid; the zero value means "unset".
type CustomerStatus string

const (
	// StatusActive is the default status assigned to new customers.
	StatusActive CustomerStatus = "ACTIVE"

	// StatusInactive marks a customer that is no longer active.
	StatusInactive CustomerStatus = "INACTIVE"

	// StatusSuspended marks a customer whose account is suspended.
	StatusSuspended CustomerStatus = "SUSPENDED"
)

// ErrInvalidCustomerStatus is returned when a value outside of the
// enumeration is decoded from JSON or scanned from the database.
var ErrInvalidCustomerStatus = errors.New("invalid customer status")

// IsValid reports whether s is one of the enumerated statuses.
func (s CustomerStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusSuspended:
		return true
	}
	return false
}

// OrDefault returns s, or StatusActive when s is unset.
func (s CustomerStatus) OrDefault() CustomerStatus {
	if s == "" {
		return StatusActive
	}
	return s
}

func (s CustomerStatus) String() string {
	return string(s)
}

// UnmarshalJSON accepts the textual enumeration name or null.
// Any other value is rejected with [ErrInvalidCustomerStatus].
func (s *CustomerStatus) UnmarshalJSON(b []byte) error {
	var raw *string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCustomerStatus, err)
	}
	if raw == nil {
		*s = ""
		return nil
	}

	status := CustomerStatus(*raw)
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCustomerStatus, *raw)
	}

	*s = status
	return nil
}

// Value implements [driver.Valuer]; the status is persisted by name.
func (s CustomerStatus) Value() (driver.Value, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCustomerStatus, string(s))
	}
	return string(s), nil
}

// Scan implements [sql.Scanner].
func (s *CustomerStatus) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidCustomerStatus, src)
	}

	status := CustomerStatus(raw)
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCustomerStatus, raw)
	}

	*s = status
	return nil
}
