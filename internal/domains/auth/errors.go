package auth

import "errors"

var (
	// ErrInvalidCredentials covers both a wrong username and a wrong
	// password so the response does not leak which one was off.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrServerMisconfigured means no admin password hash is set.
	// Login must fail closed, not fall back to a built-in password.
	ErrServerMisconfigured = errors.New("authentication is not configured")
)
