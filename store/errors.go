package store

import (
	"context"
	"errors"
	"fmt"
	"net"

	"gorm.io/gorm"
)

var (
	// ErrIntegrityViolation marks uniqueness or foreign-key breaches. Caller
	// input caused it, retrying the same write will fail again.
	ErrIntegrityViolation = errors.New("store: integrity violation")

	// ErrUnavailable marks connection and deadline failures. The caller may
	// retry once the store is reachable again.
	ErrUnavailable = errors.New("store: unavailable")
)

// OpError wraps any driver failure that is neither an integrity violation
// nor an availability problem. It is opaque to callers and logged upstream.
type OpError struct {
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("store: operation failed: %v", e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// Classify maps a raw GORM/driver error onto the gateway taxonomy. Errors
// that do not originate from the store (business-rule errors returned out of
// a transaction body) pass through untouched.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrIntegrityViolation) || errors.Is(err, ErrUnavailable) {
		return err
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return fmt.Errorf("%w: %v", ErrIntegrityViolation, err)
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}
