package domain

import "errors"

// Error kinds surfaced to the API layer. Handlers map these to HTTP statuses;
// none are retried internally.
var (
	ErrItemNotFound        = errors.New("item not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrValidation          = errors.New("validation failed")
	ErrDuplicateSKU        = errors.New("sku already exists for owner")
	ErrAlreadyReversed     = errors.New("transaction already reversed")
)
