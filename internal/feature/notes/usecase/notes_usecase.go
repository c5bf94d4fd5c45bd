package usecase

import (
	"context"
	"strings"

	"notes_backend/internal/feature/notes/domain/entity"
)

// NoteRepository abstracts the persistence layer for note entities.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type NoteRepository interface {
	// Create persists a new note to the storage.
	Create(ctx context.Context, note *entity.Note) error

	// FindByID retrieves a note by ID regardless of owner.
	// It returns ErrNoteNotFound if the note does not exist.
	FindByID(ctx context.Context, id uint) (*entity.Note, error)

	// FindByOwnerAndID retrieves a note only if it belongs to the owner.
	// It returns ErrNoteNotFound otherwise.
	FindByOwnerAndID(ctx context.Context, ownerID, id uint) (*entity.Note, error)

	// FindByOwner retrieves the owner's notes newest first, optionally
	// filtered by a substring over title and content.
	FindByOwner(ctx context.Context, ownerID uint, query string) ([]entity.Note, error)

	// Update persists changes to an existing note.
	Update(ctx context.Context, note *entity.Note) error

	// Delete removes the note from storage.
	Delete(ctx context.Context, note *entity.Note) error
}

// notesUsecase implements the note CRUD business logic with ownership
// enforcement.
type notesUsecase struct {
	notes NoteRepository
}

// NewNotesUsecase creates a new notesUsecase instance.
func NewNotesUsecase(notes NoteRepository) *notesUsecase {
	return &notesUsecase{notes: notes}
}

// validateNoteInput trims and checks both fields, returning the cleaned
// values.
func validateNoteInput(title, content string) (string, string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", "", ErrTitleRequired
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return "", "", ErrContentRequired
	}
	return title, content, nil
}

// Create validates and stores a new note owned by userID.
func (u *notesUsecase) Create(ctx context.Context, userID uint, title, content string) (*entity.Note, error) {
	title, content, err := validateNoteInput(title, content)
	if err != nil {
		return nil, err
	}

	note := &entity.Note{Title: title, Content: content, UserID: userID}
	if err := u.notes.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// List returns the caller's notes newest first. Ownership is enforced in the
// query itself, so other users' notes are never observed, not even as
// existence signals.
func (u *notesUsecase) List(ctx context.Context, userID uint, query string) ([]entity.Note, error) {
	return u.notes.FindByOwner(ctx, userID, strings.TrimSpace(query))
}

// Get returns one of the caller's notes. A note owned by someone else is
// reported as not found, never as forbidden, so its existence stays hidden.
func (u *notesUsecase) Get(ctx context.Context, userID, id uint) (*entity.Note, error) {
	return u.notes.FindByOwnerAndID(ctx, userID, id)
}

// Update validates and applies changes to an existing note.
// A missing note yields ErrNoteNotFound; a note owned by another user
// yields ErrForbidden.
func (u *notesUsecase) Update(ctx context.Context, userID, id uint, title, content string) (*entity.Note, error) {
	title, content, err := validateNoteInput(title, content)
	if err != nil {
		return nil, err
	}

	note, err := u.notes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if note.UserID != userID {
		return nil, ErrForbidden
	}

	note.Title = title
	note.Content = content
	if err := u.notes.Update(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// Delete removes an existing note.
// A missing note yields ErrNoteNotFound; a note owned by another user
// yields ErrForbidden.
func (u *notesUsecase) Delete(ctx context.Context, userID, id uint) error {
	note, err := u.notes.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if note.UserID != userID {
		return ErrForbidden
	}
	return u.notes.Delete(ctx, note)
}
