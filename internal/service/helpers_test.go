package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/maheshrc27/brandlab-api/internal/cache"
	"github.com/maheshrc27/brandlab-api/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRedisCache(t *testing.T) *cache.QueryCache {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return cache.NewQueryCache(client, time.Minute, zap.NewNop())
}

func TestCachedListDropsRowsLoadedDuringInvalidation(t *testing.T) {
	qc := newRedisCache(t)
	ctx := context.Background()
	logger := zap.NewNop()

	stale, err := cachedList(ctx, qc, logger, "clients", "list", func(ctx context.Context) ([]*models.Client, error) {
		// a write lands and invalidates while the read is in flight
		require.NoError(t, qc.Invalidate(ctx, "clients"))
		return []*models.Client{{BrandName: "Old"}}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Old", stale[0].BrandName)

	fresh, err := cachedList(ctx, qc, logger, "clients", "list", func(context.Context) ([]*models.Client, error) {
		return []*models.Client{{BrandName: "New"}}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "New", fresh[0].BrandName)
}

func TestCachedListServesStoredRows(t *testing.T) {
	qc := newRedisCache(t)
	ctx := context.Background()
	calls := 0
	load := func(context.Context) ([]*models.Client, error) {
		calls++
		return []*models.Client{{BrandName: "Acme"}}, nil
	}

	_, err := cachedList(ctx, qc, zap.NewNop(), "clients", "list", load)
	require.NoError(t, err)
	again, err := cachedList(ctx, qc, zap.NewNop(), "clients", "list", load)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, "Acme", again[0].BrandName)
}
