package utils

import "errors"

var (
	ErrInvalidID = errors.New("invalid id")

	// ErrValidation marks malformed or out-of-range input. Services wrap it
	// with a specific message; the API layer maps it to HTTP 400.
	ErrValidation = errors.New("validation error")
)
