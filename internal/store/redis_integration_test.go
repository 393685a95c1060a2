//go:build integration

package store_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/phylsix/tinyurl/internal/shortener"
	"github.com/phylsix/tinyurl/internal/store"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getRedisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

func TestCacheRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	client := redis.NewClient(&redis.Options{Addr: getRedisAddr()})
	defer client.Close()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	t.Run("insert caches the mapping", func(t *testing.T) {
		inner := store.NewMemoryStore()
		cached := store.NewCacheRepository(inner, client, time.Minute)

		m := &shortener.Mapping{
			Code:      "cachew1",
			TargetURL: "https://example.com",
			CreatedAt: time.Now(),
		}
		defer client.Del(ctx, "mapping:cachew1")

		require.NoError(t, cached.Insert(ctx, m))

		fields, err := client.HGetAll(ctx, "mapping:cachew1").Result()
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", fields["target_url"])
	})

	t.Run("read falls back to the inner store and repopulates", func(t *testing.T) {
		inner := store.NewMemoryStore()
		cached := store.NewCacheRepository(inner, client, time.Minute)

		m := &shortener.Mapping{
			Code:      "cacher1",
			TargetURL: "https://example.com/read",
			CreatedAt: time.Now(),
		}
		defer client.Del(ctx, "mapping:cacher1")

		require.NoError(t, inner.Insert(ctx, m))

		got, err := cached.GetByCode(ctx, m.Code)
		require.NoError(t, err)
		assert.Equal(t, m.TargetURL, got.TargetURL)

		fields, err := client.HGetAll(ctx, "mapping:cacher1").Result()
		require.NoError(t, err)
		assert.Equal(t, m.TargetURL, fields["target_url"])
	})

	t.Run("duplicate insert is rejected before touching the cache", func(t *testing.T) {
		inner := store.NewMemoryStore()
		cached := store.NewCacheRepository(inner, client, time.Minute)

		first := &shortener.Mapping{
			Code:      "cached1",
			TargetURL: "https://old.com",
			CreatedAt: time.Now(),
		}
		defer client.Del(ctx, "mapping:cached1")

		require.NoError(t, cached.Insert(ctx, first))

		err := cached.Insert(ctx, &shortener.Mapping{
			Code:      "cached1",
			TargetURL: "https://new.com",
			CreatedAt: time.Now(),
		})
		assert.ErrorIs(t, err, shortener.ErrCodeTaken)

		fields, err := client.HGetAll(ctx, "mapping:cached1").Result()
		require.NoError(t, err)
		assert.Equal(t, "https://old.com", fields["target_url"])
	})

	t.Run("unknown code returns ErrNotFound", func(t *testing.T) {
		cached := store.NewCacheRepository(store.NewMemoryStore(), client, time.Minute)

		got, err := cached.GetByCode(ctx, "cachemiss")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, shortener.ErrNotFound)
	})
}
