package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/artenepo/inventory-manager/internal/shop/entity"
	"github.com/redis/go-redis/v9"
)

const navCacheKey = "shop:nav:v1"

// NavContext is the side context every view carries for the filter UI.
type NavContext struct {
	Categories []entity.Category `json:"categories"`
	Brands     []entity.Brand    `json:"brands"`
	Suppliers  []entity.Supplier `json:"suppliers"`
}

// NavCache keeps the nav context in redis between requests. A nil client
// disables it, so the service runs without redis.
type NavCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewNavCache(rdb *redis.Client, ttl time.Duration) *NavCache {
	return &NavCache{rdb: rdb, ttl: ttl}
}

func (c *NavCache) Get(ctx context.Context) *NavContext {
	if c == nil || c.rdb == nil {
		return nil
	}
	raw, err := c.rdb.Get(ctx, navCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var nav NavContext
	if err := json.Unmarshal(raw, &nav); err != nil {
		return nil
	}
	return &nav
}

func (c *NavCache) Put(ctx context.Context, nav *NavContext) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(nav)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, navCacheKey, raw, c.ttl)
}

func (c *NavCache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, navCacheKey)
}
