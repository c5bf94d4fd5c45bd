// Package adapters provides repository implementations for the notes feature.
package adapters

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"notes_backend/internal/feature/notes/domain/entity"
	"notes_backend/internal/feature/notes/usecase"
)

// noteGorm is the gorm-backed implementation of the NoteRepository interface.
type noteGorm struct {
	db *gorm.DB
}

// Compile-time check that noteGorm implements NoteRepository.
var _ usecase.NoteRepository = (*noteGorm)(nil)

// NewNoteRepository creates a new noteGorm over the given gorm.DB connection.
func NewNoteRepository(db *gorm.DB) *noteGorm {
	return &noteGorm{db: db}
}

// Create inserts the note.
func (r *noteGorm) Create(ctx context.Context, n *entity.Note) error {
	return r.db.WithContext(ctx).Create(n).Error
}

// FindByID retrieves a note by ID regardless of owner.
// It returns usecase.ErrNoteNotFound if no note matches.
func (r *noteGorm) FindByID(ctx context.Context, id uint) (*entity.Note, error) {
	var n entity.Note
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&n).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrNoteNotFound
		}
		return nil, err
	}
	return &n, nil
}

// FindByOwnerAndID retrieves a note only if it belongs to the owner.
// Foreign and missing notes are indistinguishable: both report not found.
func (r *noteGorm) FindByOwnerAndID(ctx context.Context, ownerID, id uint) (*entity.Note, error) {
	var n entity.Note
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).First(&n).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrNoteNotFound
		}
		return nil, err
	}
	return &n, nil
}

// likeEscaper neutralizes LIKE metacharacters so user input matches
// literally. The escape character is declared in the query itself because
// sqlite has no default one.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// FindByOwner retrieves the owner's notes newest first. A non-empty query
// narrows the result to notes whose title or content contains it as a
// literal substring.
func (r *noteGorm) FindByOwner(ctx context.Context, ownerID uint, query string) ([]entity.Note, error) {
	tx := r.db.WithContext(ctx).Where("user_id = ?", ownerID)
	if query != "" {
		pattern := "%" + likeEscaper.Replace(query) + "%"
		tx = tx.Where("title LIKE ? ESCAPE '!' OR content LIKE ? ESCAPE '!'", pattern, pattern)
	}

	var notes []entity.Note
	if err := tx.Order("created_at DESC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

// Update saves the modified note.
func (r *noteGorm) Update(ctx context.Context, n *entity.Note) error {
	return r.db.WithContext(ctx).Save(n).Error
}

// Delete removes the note.
func (r *noteGorm) Delete(ctx context.Context, n *entity.Note) error {
	return r.db.WithContext(ctx).Delete(n).Error
}
