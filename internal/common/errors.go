// Package common defines the sentinel errors shared by the store, service
// and HTTP layers. Callers should match them with errors.Is.
package common

import "errors"

var (
	// Validation errors.
	ErrInvalidInput = errors.New("invalid input")

	// Credential store errors.
	ErrDuplicateUsername = errors.New("username already exists")

	// Auth errors. ErrInvalidCredentials deliberately covers both an unknown
	// username and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")

	// Repository-level errors.
	ErrNotFound = errors.New("not found")
)
