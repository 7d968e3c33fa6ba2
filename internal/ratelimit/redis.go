package ratelimit

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix = "workspace-hub:ratelimit:"
	redisTimeout   = 250 * time.Millisecond
)

type redisLimiter struct {
	client *redis.Client
}

// NewRedisLimiter connects to Redis and returns a shared fixed-window limiter.
// Fails if the server does not answer a ping within two seconds.
func NewRedisLimiter(addr, password string, db int) (Limiter, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return newRedisLimiter(client), nil
}

func newRedisLimiter(client *redis.Client) *redisLimiter {
	return &redisLimiter{client: client}
}

// Allow fails open: a Redis error admits the call and is logged.
func (l *redisLimiter) Allow(ctx context.Context, key string, limit int, win time.Duration) Decision {
	if limit <= 0 {
		return Decision{Allowed: true}
	}
	if win <= 0 {
		win = time.Minute
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), redisTimeout)
	defer cancel()

	k := redisKeyPrefix + key
	count, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		log.Printf("ratelimit: redis incr: %v", err)
		return Decision{Allowed: true}
	}
	if count == 1 {
		if err := l.client.Expire(ctx, k, win).Err(); err != nil {
			log.Printf("ratelimit: redis expire: %v", err)
		}
	}
	ttl, err := l.client.TTL(ctx, k).Result()
	if err != nil || ttl <= 0 {
		ttl = win
	}
	return Decision{
		Allowed:   int(count) <= limit,
		Count:     int(count),
		WindowEnd: time.Now().Add(ttl),
	}
}

func (l *redisLimiter) Close() error {
	return l.client.Close()
}

// New returns a Redis limiter when addr is set and a memory limiter otherwise. An unreachable
// Redis falls back to memory with a log line rather than failing startup.
func New(addr, password string, db int) Limiter {
	if addr == "" {
		return NewMemoryLimiter()
	}
	l, err := NewRedisLimiter(addr, password, db)
	if err != nil {
		log.Printf("ratelimit: %v; using in-memory limiter", err)
		return NewMemoryLimiter()
	}
	return l
}
