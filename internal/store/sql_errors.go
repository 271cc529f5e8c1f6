package store

import (
	"errors"
	"fmt"
)

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It names the kind of failure a driver error
// represents, independently of the backend that produced it.
type ErrorClassification int

const (
	// Unknown is the default classification for unrecognised errors.
	Unknown ErrorClassification = iota

	// UniqueViolation means a unique constraint rejected the statement.
	UniqueViolation

	// NotNullViolation means a NOT NULL constraint rejected the statement.
	NotNullViolation

	// Transient means the operation may succeed if attempted again, e.g.
	// after a connection loss, deadlock or a locked database file.
	Transient
)

func (c ErrorClassification) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case NotNullViolation:
		return "not_null_violation"
	case Transient:
		return "transient"
	default:
		return "unknown"
	}
}

// translateError maps a driver error to the package sentinel errors. The
// driver error stays in the chain so that it can still be inspected.
func translateError(classifier ErrorClassificator, err error) error {
	if err == nil {
		return nil
	}

	var class ErrorClassification
	if classifier != nil {
		class = classifier.Classify(err)
	}

	switch class {
	case UniqueViolation:
		return errors.Join(ErrEmailAlreadyExists, err)
	case NotNullViolation:
		return errors.Join(ErrRequiredFieldMissing, err)
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}
