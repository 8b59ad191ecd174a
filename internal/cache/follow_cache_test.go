package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T) (*FollowCounts, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewFollowCounts(client, time.Minute), mr
}

func TestFollowCounts_LoadsOnceThenHits(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	loads := 0
	load := func(context.Context) (int64, error) { loads++; return 7, nil }

	n, err := c.Get(ctx, Followers, 1, load)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	n, err = c.Get(ctx, Followers, 1, load)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, 1, loads)

	assert.True(t, mr.Exists("social:count:followers:1"))
	mr.FastForward(2 * time.Minute)
	assert.False(t, mr.Exists("social:count:followers:1"))
}

func TestFollowCounts_Invalidate(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	load := func(context.Context) (int64, error) { return 1, nil }
	_, _ = c.Get(ctx, Followings, 1, load)
	_, _ = c.Get(ctx, Followers, 2, load)

	c.Invalidate(ctx, 1, 2)
	assert.False(t, mr.Exists("social:count:followings:1"))
	assert.False(t, mr.Exists("social:count:followers:2"))
}

func TestFollowCounts_NilIsPassThrough(t *testing.T) {
	var c *FollowCounts
	assert.Nil(t, NewFollowCounts(nil, time.Minute))

	n, err := c.Get(context.Background(), Followers, 1, func(context.Context) (int64, error) { return 3, nil })
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	c.Invalidate(context.Background(), 1, 2)
	c.Forget(context.Background(), 1)
}
