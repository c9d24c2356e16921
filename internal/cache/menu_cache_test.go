package cache

import (
	"context"
	"testing"
	"time"

	"bistro_boss/internal/model"
	"bistro_boss/internal/repository/memory"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*MenuCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	repo := memory.NewStore().Repositories().Menu
	return NewMenuCache(repo, rdb, time.Minute), mr
}

func TestMenuCache_FindAllPopulatesCache(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)
	require.NoError(t, c.MenuRepository.Create(ctx, &model.MenuItem{Name: "Caesar Salad", Category: "salad", Price: 9.5}))

	items, err := c.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.True(t, mr.Exists(menuCacheKey))
	assert.Equal(t, time.Minute, mr.TTL(menuCacheKey))

	// A write that bypasses the cache is invisible until invalidation
	require.NoError(t, c.MenuRepository.Create(ctx, &model.MenuItem{Name: "Tom Yum", Category: "soup", Price: 7}))
	items, err = c.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestMenuCache_CreateInvalidates(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)

	_, err := c.FindAll(ctx)
	require.NoError(t, err)
	require.True(t, mr.Exists(menuCacheKey))

	require.NoError(t, c.Create(ctx, &model.MenuItem{Name: "Pizza", Category: "pizza", Price: 14.5}))
	assert.False(t, mr.Exists(menuCacheKey))

	items, err := c.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestMenuCache_DeleteInvalidatesOnlyOnChange(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)
	item := &model.MenuItem{Name: "Brownie", Category: "dessert", Price: 4}
	require.NoError(t, c.Create(ctx, item))
	_, err := c.FindAll(ctx)
	require.NoError(t, err)

	res, err := c.Delete(ctx, "6f1c2f4e-5a1b-4c7e-9d3a-2b8e4f6a7c10")
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.DeletedCount)
	assert.True(t, mr.Exists(menuCacheKey))

	res, err = c.Delete(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.DeletedCount)
	assert.False(t, mr.Exists(menuCacheKey))
}

func TestMenuCache_FallsBackWhenRedisIsDown(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)
	require.NoError(t, c.MenuRepository.Create(ctx, &model.MenuItem{Name: "Soup", Category: "soup", Price: 6}))
	mr.Close()

	items, err := c.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
