// Package cache provides an optional redis read-through cache for the post
// listing. Any redis failure degrades to a cache miss; the page is then
// served straight from the database.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/d60-Lab/gin-blog/internal/model"
)

type PostCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPostCache(client *redis.Client, ttl time.Duration) *PostCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &PostCache{client: client, ttl: ttl}
}

func key(offset, limit int) string {
	return fmt.Sprintf("posts:window:%d:%d", offset, limit)
}

func (c *PostCache) GetWindow(ctx context.Context, offset, limit int) ([]*model.Post, bool) {
	data, err := c.client.Get(ctx, key(offset, limit)).Bytes()
	if err != nil {
		return nil, false
	}
	var out []*model.Post
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, false
	}
	return out, true
}

func (c *PostCache) SetWindow(ctx context.Context, offset, limit int, posts []*model.Post) {
	payload, err := json.Marshal(posts)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, key(offset, limit), payload, c.ttl).Err()
}

// Flush drops every cached window. Exposed for seeding tools and tests.
func (c *PostCache) Flush(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, "posts:window:*", 0).Iterator()
	for iter.Next(ctx) {
		_ = c.client.Del(ctx, iter.Val()).Err()
	}
}
