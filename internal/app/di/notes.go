// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	noteadapters "notes_backend/internal/feature/notes/adapters"
	"notes_backend/internal/feature/notes/usecase"
	"notes_backend/internal/platform/cache"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// NewNoteRepository creates a NoteRepository implementation.
// If Redis is available, listings are served through a caching decorator.
// Otherwise, every call goes straight to the database.
func NewNoteRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.NoteRepository {
	inner := noteadapters.NewNoteRepository(db)
	if rdb != nil {
		return cache.NewCachingNoteRepository(rdb, ttl, inner, "notes")
	}
	return inner
}
