package redisstate

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RateLimitStore 使用 Redis 计数器实现固定窗口限流
type RateLimitStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRateLimitStore 创建 RateLimitStore 实例
func NewRateLimitStore(client *redis.Client, keyPrefix string) *RateLimitStore {
	if client == nil {
		panic("redis client cannot be nil for RateLimitStore")
	}
	if keyPrefix == "" {
		keyPrefix = "sq:" // 默认前缀 "sq:" (squares)
	}
	return &RateLimitStore{client: client, keyPrefix: keyPrefix}
}

func (r *RateLimitStore) rateLimitKey(key string) string {
	return fmt.Sprintf("%sratelimit:%s", r.keyPrefix, key)
}

// Allow 递增 key 的计数，窗口从第一次请求开始计时。
// 被拒绝的请求不会延长窗口。返回 true 表示本次请求未超过 limit。
func (r *RateLimitStore) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	redisKey := r.rateLimitKey(key)

	// INCR 与 TTL 放在同一个 Pipeline 中，减少网络往返
	pipe := r.client.Pipeline()
	incrCmd := pipe.Incr(ctx, redisKey)
	ttlCmd := pipe.TTL(ctx, redisKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("redis: pipeline failed for rate limit check on key %s: %w", redisKey, err)
	}
	count, err := incrCmd.Result()
	if err != nil {
		return false, fmt.Errorf("redis: failed to get incr result for rate limit on key %s: %w", redisKey, err)
	}

	// 只有还没有过期时间的计数器才设置窗口 (新 key，或上次 EXPIRE 失败)
	if ttlCmd.Val() < 0 {
		if err := r.client.Expire(ctx, redisKey, window).Err(); err != nil {
			return false, fmt.Errorf("redis: failed to set rate limit window on key %s: %w", redisKey, err)
		}
	}
	return count <= int64(limit), nil
}
