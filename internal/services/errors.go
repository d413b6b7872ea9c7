package services

import "errors"

// Tagged service errors. Handlers map these to HTTP statuses; anything
// unwrapped is a store failure and becomes a generic 500 with the cause
// logged, never returned to the client.
var (
	ErrValidation = errors.New("validation")
	ErrNotFound   = errors.New("not found")
	ErrEmptyCart  = errors.New("cart is empty")
	ErrForbidden  = errors.New("forbidden")
	ErrRateLimited = errors.New("rate limited")
)
