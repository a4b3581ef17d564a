package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"landivo-be/internal/dto"

	"github.com/redis/go-redis/v9"
)

const (
	listKeyPrefix = "landivo:properties:list:"
	listTTL       = 60 * time.Second
)

// PropertyCache caches rendered property list pages in Redis. The public
// listing endpoint takes most of the traffic, and a short TTL keeps the
// cache honest without explicit invalidation on every write path.
type PropertyCache struct {
	rdb *redis.Client
}

func NewPropertyCache(rdb *redis.Client) *PropertyCache {
	return &PropertyCache{rdb: rdb}
}

func listKey(req *dto.ListPropertiesRequest) string {
	return fmt.Sprintf("%s%s:%s:%s:%t:%d:%d",
		listKeyPrefix, req.Status, req.City, req.Area, req.Featured, req.Page, req.PerPage)
}

func (c *PropertyCache) GetList(ctx context.Context, req *dto.ListPropertiesRequest) (*dto.ListPropertiesResponse, bool) {
	if c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, listKey(req)).Bytes()
	if err != nil {
		return nil, false
	}
	var res dto.ListPropertiesResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, false
	}
	return &res, true
}

func (c *PropertyCache) SetList(ctx context.Context, req *dto.ListPropertiesRequest, res *dto.ListPropertiesResponse) {
	if c.rdb == nil {
		return
	}
	raw, err := json.Marshal(res)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, listKey(req), raw, listTTL)
}

// InvalidateLists drops every cached page. Called after property writes
// and after an approved deletion.
func (c *PropertyCache) InvalidateLists(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	iter := c.rdb.Scan(ctx, 0, listKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		c.rdb.Del(ctx, iter.Val())
	}
}
