package cache

import (
	"context"
	"testing"
	"time"

	"perfume-storefront/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCache(client, 10*time.Minute), mr
}

func TestGetProducts_CacheMiss(t *testing.T) {
	c, _ := setupTestRedis(t)

	got, err := c.GetProducts(context.Background())
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Nil(t, got)
}

func TestSetThenGetProducts(t *testing.T) {
	c, mr := setupTestRedis(t)
	ctx := context.Background()

	products := []domain.Product{
		{ID: "2", Name: "Lavande Noir", PriceCents: 16500, Category: domain.CategoryFloral},
		{ID: "1", Name: "Rose Éternelle", PriceCents: 18900, SizePrices: map[domain.Size]int64{domain.Size15ml: 6500}},
	}
	require.NoError(t, c.SetProducts(ctx, products))

	ttl := mr.TTL(catalogKey)
	assert.GreaterOrEqual(t, ttl, 10*time.Minute)
	assert.Less(t, ttl, 11*time.Minute)

	got, err := c.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Lavande Noir", got[0].Name)
	assert.Equal(t, int64(6500), got[1].SizePrices[domain.Size15ml])
}

func TestGetProducts_InvalidJSON(t *testing.T) {
	c, mr := setupTestRedis(t)
	require.NoError(t, mr.Set(catalogKey, "[{"))

	_, err := c.GetProducts(context.Background())
	require.ErrorContains(t, err, "unmarshal catalog failed")
}

func TestInvalidate(t *testing.T) {
	c, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, c.SetProducts(ctx, []domain.Product{{ID: "1"}}))
	require.NoError(t, c.Invalidate(ctx))
	assert.False(t, mr.Exists(catalogKey))

	_, err := c.GetProducts(ctx)
	assert.ErrorIs(t, err, ErrCacheMiss)
}
