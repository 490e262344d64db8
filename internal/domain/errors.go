package domain

import "errors"

var (
	// ErrNotFound covers both truly missing records and records owned by
	// someone else; callers must not be able to tell the two apart.
	ErrNotFound = errors.New("not found")

	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrBadID              = errors.New("invalid id")
)
