package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"board-banker-backend/internal/config"
)

// keyRateLimit is ratelimit:<conn>:<action>, a counter with the window as
// its TTL.
const keyRateLimit = "ratelimit:%s:%s"

// RateLimiter throttles balance-changing actions per connection using a
// Redis counter. Room state never touches Redis; this is the only external
// dependency and it is optional. With no address configured every action
// is allowed.
type RateLimiter struct {
	client *redis.Client
	ctx    context.Context
}

func NewRateLimiter(cfg *config.Config) (*RateLimiter, error) {
	if cfg.RedisAddr == "" {
		return &RateLimiter{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx := context.Background()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %v", err)
	}

	return &RateLimiter{client: client, ctx: ctx}, nil
}

// Allow reports whether the connection may perform the action. Counting is
// INCR with the window as expiry on the first hit. Redis trouble fails open:
// a throttle outage should not take the table down.
func (rl *RateLimiter) Allow(connID, action string, limit int, window time.Duration) bool {
	if rl.client == nil {
		return true
	}

	key := fmt.Sprintf(keyRateLimit, connID, action)
	count, err := rl.client.Incr(rl.ctx, key).Result()
	if err != nil {
		log.Warn().Err(err).Str("conn", connID).Msg("rate limit check failed, allowing")
		return true
	}
	if count == 1 {
		rl.client.Expire(rl.ctx, key, window)
	}

	return count <= int64(limit)
}

// Reset clears the counter for a connection/action pair. Test helper.
func (rl *RateLimiter) Reset(connID, action string) error {
	if rl.client == nil {
		return nil
	}
	return rl.client.Del(rl.ctx, fmt.Sprintf(keyRateLimit, connID, action)).Err()
}

func (rl *RateLimiter) Close() error {
	if rl.client == nil {
		return nil
	}
	return rl.client.Close()
}
