package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Slot addressing errors
	ErrMsgIndexOutOfRange     = "slot index out of range"
	ErrMsgInvalidDimensions   = "invalid inventory dimensions"
	ErrMsgDestinationNotEmpty = "destination slot is not empty"

	// Stack errors
	ErrMsgTypeMismatch         = "item types do not match"
	ErrMsgInsufficientQuantity = "insufficient quantity"
	ErrMsgInvalidAmount        = "invalid amount"

	// Item errors
	ErrMsgInvalidItem     = "invalid item id"
	ErrMsgItemNotFound    = "item not found"
	ErrMsgInvalidCategory = "invalid item category"

	// Host errors
	ErrMsgInventoryNotFound = "inventory not found"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrIndexOutOfRange is fatal for the operation that hit it; nothing is mutated.
	ErrIndexOutOfRange     = errors.New(ErrMsgIndexOutOfRange)
	ErrInvalidDimensions   = errors.New(ErrMsgInvalidDimensions)
	ErrDestinationNotEmpty = errors.New(ErrMsgDestinationNotEmpty)

	ErrTypeMismatch         = errors.New(ErrMsgTypeMismatch)
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)
	ErrInvalidAmount        = errors.New(ErrMsgInvalidAmount)

	ErrInvalidItem     = errors.New(ErrMsgInvalidItem)
	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrInvalidCategory = errors.New(ErrMsgInvalidCategory)

	ErrInventoryNotFound = errors.New(ErrMsgInventoryNotFound)
)
