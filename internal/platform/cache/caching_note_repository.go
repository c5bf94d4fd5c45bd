// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/redis/go-redis/v9"

	"notes_backend/internal/feature/notes/domain/entity"
	"notes_backend/internal/feature/notes/usecase"
)

// CachingNoteRepository decorates a NoteRepository with Redis caching of the
// per-user note listing, the hottest read path. It implements the decorator
// pattern, transparently adding caching without modifying the underlying
// repository. Single-note reads pass through; every write invalidates the
// owner's cached listings.
type CachingNoteRepository struct {
	inner     usecase.NoteRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that the decorator still satisfies NoteRepository.
var _ usecase.NoteRepository = (*CachingNoteRepository)(nil)

// NewCachingNoteRepository decorates a NoteRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "notes".
func NewCachingNoteRepository(rdb *redis.Client, ttl time.Duration, inner usecase.NoteRepository, namespace string) *CachingNoteRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "notes"
	}
	return &CachingNoteRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create inserts the note and invalidates the owner's cached listings.
func (c *CachingNoteRepository) Create(ctx context.Context, n *entity.Note) error {
	if err := c.inner.Create(ctx, n); err != nil {
		return err
	}
	c.invalidateOwner(ctx, n.UserID)
	return nil
}

// FindByID passes through to the underlying repository.
func (c *CachingNoteRepository) FindByID(ctx context.Context, id uint) (*entity.Note, error) {
	return c.inner.FindByID(ctx, id)
}

// FindByOwnerAndID passes through to the underlying repository.
func (c *CachingNoteRepository) FindByOwnerAndID(ctx context.Context, ownerID, id uint) (*entity.Note, error) {
	return c.inner.FindByOwnerAndID(ctx, ownerID, id)
}

// FindByOwner retrieves the owner's notes, checking the cache first and
// falling back to the database on a miss.
func (c *CachingNoteRepository) FindByOwner(ctx context.Context, ownerID uint, query string) ([]entity.Note, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindByOwner(ctx, ownerID, query)
	}

	key := c.cacheKey(ownerID, query)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Note
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.FindByOwner(ctx, ownerID, query)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Update saves the note and invalidates the owner's cached listings.
func (c *CachingNoteRepository) Update(ctx context.Context, n *entity.Note) error {
	if err := c.inner.Update(ctx, n); err != nil {
		return err
	}
	c.invalidateOwner(ctx, n.UserID)
	return nil
}

// Delete removes the note and invalidates the owner's cached listings.
func (c *CachingNoteRepository) Delete(ctx context.Context, n *entity.Note) error {
	if err := c.inner.Delete(ctx, n); err != nil {
		return err
	}
	c.invalidateOwner(ctx, n.UserID)
	return nil
}

// cacheKey generates a cache key for a specific owner listing. The query is
// free text, so it is hashed rather than embedded: distinct queries must
// never collide onto one key, and the key must stay redis-safe.
func (c *CachingNoteRepository) cacheKey(ownerID uint, query string) string {
	if query == "" {
		return fmt.Sprintf("%s:%d:", c.namespace, ownerID)
	}
	h := fnv.New64a()
	h.Write([]byte(query))
	return fmt.Sprintf("%s:%d:%016x", c.namespace, ownerID, h.Sum64())
}

// ownerKeyPrefix generates a prefix covering every cached listing of one owner.
func (c *CachingNoteRepository) ownerKeyPrefix(ownerID uint) string {
	return fmt.Sprintf("%s:%d:", c.namespace, ownerID)
}

// invalidateOwner drops every cached listing of one owner. Best effort:
// a failed invalidation only shortens cache accuracy until the TTL expires.
func (c *CachingNoteRepository) invalidateOwner(ctx context.Context, ownerID uint) {
	if c.rdb == nil {
		return
	}
	_ = c.deleteByPattern(ctx, c.ownerKeyPrefix(ownerID)+"*")
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingNoteRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}
