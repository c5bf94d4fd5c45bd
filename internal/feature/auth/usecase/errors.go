// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrInvalidCredentials is returned on login when the email is unknown
	// or the password does not match. The two cases are deliberately
	// indistinguishable so registered emails cannot be probed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNameRequired is returned when the display name is empty after trimming.
	ErrNameRequired = errors.New("name is required")

	// ErrEmailRequired is returned when the email is empty after trimming.
	ErrEmailRequired = errors.New("email is required")

	// ErrPasswordRequired is returned when the password is empty.
	ErrPasswordRequired = errors.New("password is required")

	// ErrPasswordTooShort is returned when the password is shorter than the minimum length.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
)

// IsValidationError reports whether err is one of the signup/login input
// validation failures, which map to HTTP 400 with the error's own message.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrEmailRequired) ||
		errors.Is(err, ErrPasswordRequired) ||
		errors.Is(err, ErrPasswordTooShort)
}
