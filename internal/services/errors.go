package services

import "errors"

// Domain errors surfaced to handlers, which map them to HTTP statuses.
var (
	// ErrNotFound covers both a missing resource and an ownership mismatch;
	// the two are deliberately indistinguishable so existence never leaks.
	ErrNotFound = errors.New("not found")

	// ErrUsernameTaken is returned when registering a duplicate username.
	ErrUsernameTaken = errors.New("username is already taken")

	// ErrInvalidCredentials never distinguishes unknown-user from wrong-password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrFutureDate rejects completion on days strictly after today.
	ErrFutureDate = errors.New("cannot mark completion on a future date")
)
