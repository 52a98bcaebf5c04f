package services

import "errors"

var (
	// ErrInvalidCredentials covers both unknown accounts and password
	// mismatches so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound means the referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotOwner means the record exists but belongs to another user.
	ErrNotOwner = errors.New("not authorized")
)

// ValidationError reports malformed or missing input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// ConflictError reports a duplicate unique identifier.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }
