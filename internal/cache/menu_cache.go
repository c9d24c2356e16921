// Package cache keeps a read-through copy of the menu in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"bistro_boss/internal/model"
	"bistro_boss/internal/repository"

	"github.com/op/go-logging"
	"github.com/redis/go-redis/v9"
)

const menuCacheKey = "cache:menu"

var log = logging.MustGetLogger("cache")

// MenuCache decorates a MenuRepository. Reads are served from Redis when present;
// writes go to the repository and drop the cached copy. Redis failures are logged
// and fall back to the repository.
type MenuCache struct {
	repository.MenuRepository
	rdb *redis.Client
	ttl time.Duration
}

// NewMenuCache wraps repo with a Redis cache whose entries live for ttl
func NewMenuCache(repo repository.MenuRepository, rdb *redis.Client, ttl time.Duration) *MenuCache {
	return &MenuCache{MenuRepository: repo, rdb: rdb, ttl: ttl}
}

func (c *MenuCache) FindAll(ctx context.Context) ([]model.MenuItem, error) {
	data, err := c.rdb.Get(ctx, menuCacheKey).Bytes()
	switch {
	case err == nil:
		var items []model.MenuItem
		if err := json.Unmarshal(data, &items); err == nil {
			return items, nil
		}
		log.Warningf("discarding unreadable menu cache entry: %v", err)
	case !errors.Is(err, redis.Nil):
		log.Warningf("menu cache read failed: %v", err)
	}

	items, err := c.MenuRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(items); err == nil {
		if err := c.rdb.Set(ctx, menuCacheKey, data, c.ttl).Err(); err != nil {
			log.Warningf("menu cache write failed: %v", err)
		}
	}
	return items, nil
}

func (c *MenuCache) Create(ctx context.Context, item *model.MenuItem) error {
	if err := c.MenuRepository.Create(ctx, item); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *MenuCache) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	res, err := c.MenuRepository.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.DeletedCount > 0 {
		c.invalidate(ctx)
	}
	return res, nil
}

// invalidate drops the cached menu. A failed delete leaves the old copy until its TTL expires.
func (c *MenuCache) invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, menuCacheKey).Err(); err != nil {
		log.Errorf("failed to invalidate menu cache: %v", err)
	}
}
