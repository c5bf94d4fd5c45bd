// Package usecase implements the business logic for the notes feature.
package usecase

import "errors"

var (
	// ErrNoteNotFound is returned when a note cannot be found by ID, or when
	// a read-by-id targets a note owned by someone else (existence is never
	// confirmed to non-owners).
	ErrNoteNotFound = errors.New("note not found")

	// ErrForbidden is returned when a mutation targets a note owned by
	// another user.
	ErrForbidden = errors.New("note belongs to another user")

	// ErrTitleRequired is returned when the title is empty after trimming.
	ErrTitleRequired = errors.New("title is required")

	// ErrContentRequired is returned when the content is empty after trimming.
	ErrContentRequired = errors.New("content is required")
)

// IsValidationError reports whether err is one of the note input validation
// failures, which map to HTTP 400 with the error's own message.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrTitleRequired) || errors.Is(err, ErrContentRequired)
}
