package domain

import "errors"

var (
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so the caller cannot tell which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
