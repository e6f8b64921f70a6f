package models

import "errors"

// Closed set of error kinds the API can surface. Store and handler code
// wraps these with %w for context; the response boundary in
// internal/utils maps each kind to its status code and user-facing
// message, and anything outside the set to a 500.
var (
	ErrValidation         = errors.New("Invalid input")
	ErrInvalidCredentials = errors.New("Invalid username/password")
	ErrDuplicateUsername  = errors.New("Username taken. Please pick another!")
	ErrNotFound           = errors.New("Not found")
	ErrUnauthorized       = errors.New("Unauthorized")
)
