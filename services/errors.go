package services

import "errors"

// Business-rule failures. All of them are detected before any row is
// written, so no rollback is involved and callers report them as 4xx.
var (
	ErrEmptyOrder      = errors.New("order must contain at least one item")
	ErrUnknownMenuItem = errors.New("one or more menu items not found")
	ErrInvalidQuantity = errors.New("item quantity must be a positive integer")
	ErrTotalMismatch   = errors.New("total amount does not match order items")
	ErrNameRequired    = errors.New("restaurant name is required")
)

// ErrOrderIDAllocation means the store accepted the order header but handed
// back no generated id. The unit of work is rolled back, nothing persists.
var ErrOrderIDAllocation = errors.New("failed to allocate order id")

// IsValidation reports whether err is a client-caused business-rule failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyOrder) ||
		errors.Is(err, ErrUnknownMenuItem) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrTotalMismatch) ||
		errors.Is(err, ErrNameRequired)
}
