package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/gin-blog/internal/model"
)

func setupCache(t *testing.T) (*PostCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewPostCache(client, time.Minute), mr
}

func somePosts() []*model.Post {
	return []*model.Post{
		{Sno: 1, Title: "One", Slug: "one", Content: "c", Tagline: "t", Date: time.Unix(1700000000, 0).UTC()},
		{Sno: 2, Title: "Two", Slug: "two", Content: "c", Tagline: "t", Date: time.Unix(1700000100, 0).UTC()},
	}
}

func TestPostCacheRoundTrip(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	_, ok := c.GetWindow(ctx, 0, 10)
	assert.False(t, ok, "cold cache misses")

	c.SetWindow(ctx, 0, 10, somePosts())

	got, ok := c.GetWindow(ctx, 0, 10)
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, "one", got[0].Slug)
	assert.Equal(t, "Two", got[1].Title)

	_, ok = c.GetWindow(ctx, 10, 10)
	assert.False(t, ok, "different window is a different key")
}

func TestPostCacheExpiry(t *testing.T) {
	c, mr := setupCache(t)
	ctx := context.Background()

	c.SetWindow(ctx, 0, 10, somePosts())
	mr.FastForward(2 * time.Minute)

	_, ok := c.GetWindow(ctx, 0, 10)
	assert.False(t, ok, "entry expired")
}

func TestPostCacheDegradesOnRedisDown(t *testing.T) {
	c, mr := setupCache(t)
	ctx := context.Background()
	mr.Close()

	_, ok := c.GetWindow(ctx, 0, 10)
	assert.False(t, ok)
	// Set must not panic or error out either.
	c.SetWindow(ctx, 0, 10, somePosts())
}

func TestPostCacheFlush(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	c.SetWindow(ctx, 0, 10, somePosts())
	c.SetWindow(ctx, 10, 10, somePosts())
	c.Flush(ctx)

	_, ok := c.GetWindow(ctx, 0, 10)
	assert.False(t, ok)
	_, ok = c.GetWindow(ctx, 10, 10)
	assert.False(t, ok)
}
