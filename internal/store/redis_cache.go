package store

import (
	"context"
	"strconv"
	"time"

	"github.com/phylsix/tinyurl/internal/shortener"
	"github.com/redis/go-redis/v9"
)

// CacheRepository decorates a Repository with a Redis read-through cache.
// Inserts go to the inner store first, so the uniqueness contract is
// untouched; cache failures degrade silently to the inner store.
type CacheRepository struct {
	inner  shortener.Repository
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewCacheRepository creates a Redis-cached decorator around inner. A zero
// ttl caches entries without expiry.
func NewCacheRepository(inner shortener.Repository, client *redis.Client, ttl time.Duration) *CacheRepository {
	return &CacheRepository{
		inner:  inner,
		client: client,
		prefix: "mapping:",
		ttl:    ttl,
	}
}

// Insert persists the mapping in the inner store, then write-through caches
// it on success.
func (c *CacheRepository) Insert(ctx context.Context, m *shortener.Mapping) error {
	if err := c.inner.Insert(ctx, m); err != nil {
		return err
	}

	c.cache(ctx, m)

	return nil
}

// GetByCode checks the cache first and falls back to the inner store on a
// miss, repopulating the cache.
func (c *CacheRepository) GetByCode(ctx context.Context, code shortener.Code) (*shortener.Mapping, error) {
	if m, err := c.fromCache(ctx, code); err == nil {
		return m, nil
	}

	m, err := c.inner.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	c.cache(ctx, m)

	return m, nil
}

func (c *CacheRepository) fromCache(ctx context.Context, code shortener.Code) (*shortener.Mapping, error) {
	fields, err := c.client.HGetAll(ctx, c.prefix+string(code)).Result()
	if err != nil {
		return nil, err
	}

	if len(fields) == 0 {
		return nil, shortener.ErrNotFound
	}

	var createdAt time.Time

	if nanos, err := strconv.ParseInt(fields["created_at"], 10, 64); err == nil {
		createdAt = time.Unix(0, nanos)
	}

	return &shortener.Mapping{
		Code:      code,
		TargetURL: fields["target_url"],
		CreatedAt: createdAt,
	}, nil
}

func (c *CacheRepository) cache(ctx context.Context, m *shortener.Mapping) {
	key := c.prefix + string(m.Code)

	pipe := c.client.Pipeline()
	pipe.HSet(ctx, key, map[string]interface{}{
		"target_url": m.TargetURL,
		"created_at": m.CreatedAt.UnixNano(),
	})

	if c.ttl > 0 {
		pipe.Expire(ctx, key, c.ttl)
	}

	// best effort; a failed cache write just means a store read later
	_, _ = pipe.Exec(ctx)
}

// Compile-time check.
var _ shortener.Repository = (*CacheRepository)(nil)
