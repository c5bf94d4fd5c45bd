// Package entity defines the domain entities for the notes feature.
package entity

import "time"

// Note represents a single text note owned by exactly one user.
// The owner is set at creation and never changes afterwards.
type Note struct {
	// ID is the unique identifier for the note.
	ID uint `gorm:"primaryKey"`

	// Title is the note's short heading.
	Title string `gorm:"size:255;not null"`

	// Content is the note's body text.
	Content string `gorm:"type:text;not null"`

	// UserID is the ID of the owning user.
	UserID uint `gorm:"index;not null"`

	// CreatedAt is the timestamp when the note was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the note was last updated.
	UpdatedAt time.Time
}
