package service

import "errors"

// Error taxonomy. Handlers attach these to the request and the boundary
// middleware maps them to response shapes; anything else is treated as an
// internal error.
var (
	// ErrNotFound means the requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation means the caller's input was incomplete or malformed.
	ErrValidation = errors.New("validation failed")
)
