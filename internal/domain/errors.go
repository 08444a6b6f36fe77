package domain

import "errors"

// Request-recoverable failures. Handlers map these to a stable error kind
// and an HTTP status; anything else is treated as an internal error.
var (
	ErrInvalidProduct   = errors.New("invalid product")
	ErrItemNotFound     = errors.New("item not in cart")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrCheckoutProvider = errors.New("checkout provider failure")
)
