package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/campus-social/pkg/logger"
)

// CountKind 区分粉丝数与关注数
type CountKind string

const (
	Followers  CountKind = "followers"
	Followings CountKind = "followings"
)

// FollowCounts 关注/粉丝计数缓存；nil 接收者等价于未启用缓存
type FollowCounts struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFollowCounts client 为 nil 时返回 nil，调用方无需判断
func NewFollowCounts(client *redis.Client, ttl time.Duration) *FollowCounts {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &FollowCounts{client: client, ttl: ttl}
}

func key(kind CountKind, userID uint) string {
	return fmt.Sprintf("social:count:%s:%d", kind, userID)
}

// Get 命中缓存时直接返回，否则调用 load 回源并写回
func (c *FollowCounts) Get(ctx context.Context, kind CountKind, userID uint, load func(context.Context) (int64, error)) (int64, error) {
	if c == nil {
		return load(ctx)
	}
	k := key(kind, userID)
	n, err := c.client.Get(ctx, k).Int64()
	if err == nil {
		return n, nil
	}
	if !errors.Is(err, redis.Nil) {
		logger.Warn("follow count cache read failed", zap.String("key", k), zap.Error(err))
	}

	n, err = load(ctx)
	if err != nil {
		return 0, err
	}
	if err := c.client.Set(ctx, k, n, c.ttl).Err(); err != nil {
		logger.Warn("follow count cache write failed", zap.String("key", k), zap.Error(err))
	}
	return n, nil
}

// Invalidate 关注关系变更后清理双方计数
func (c *FollowCounts) Invalidate(ctx context.Context, followerID, followingID uint) {
	if c == nil {
		return
	}
	pipe := c.client.Pipeline()
	pipe.Del(ctx, key(Followings, followerID))
	pipe.Del(ctx, key(Followers, followingID))
	if _, err := pipe.Exec(ctx); err != nil {
		logger.Warn("follow count cache invalidate failed",
			zap.Uint("follower_id", followerID), zap.Uint("following_id", followingID), zap.Error(err))
	}
}

// Forget 删除用户时清理其计数
func (c *FollowCounts) Forget(ctx context.Context, userID uint) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, key(Followers, userID), key(Followings, userID)).Err(); err != nil {
		logger.Warn("follow count cache forget failed", zap.Uint("user_id", userID), zap.Error(err))
	}
}

// NewRedisClient 按地址连接并 ping 一次
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return client, nil
}
