// Package domain defines domain-level errors for the auth feature.
package domain

import "errors"

// Domain errors for authentication operations.
// These errors represent business logic failures and should be handled appropriately by upper layers.
var (
	// ErrUserAlreadyExists indicates that a user with the given email already exists.
	// This is returned during registration when attempting to create a duplicate user.
	ErrUserAlreadyExists = errors.New("user with this email already exists")

	// ErrUserNotFound indicates that no active user was found with the given criteria.
	// Soft-deleted users report this error too, so callers cannot tell the cases apart.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials indicates that the provided credentials are incorrect.
	// This is returned during login when email or password is invalid.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrDuplicateEmail indicates that an insert lost a race against a
	// concurrent registration for the same email. The store surfaces it
	// instead of silently overwriting.
	ErrDuplicateEmail = errors.New("duplicate email")
)
