package store

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/mkarpekin/go-notes-keeper/internal/config"
	"github.com/mkarpekin/go-notes-keeper/internal/logger"
)

// redisRateLimiter is a Redis-backed fixed-window implementation of
// [RateLimiter]. Counters are shared between server replicas, so the limit
// holds across the whole deployment.
//
// The limiter fails open: any Redis error allows the request and is logged,
// because losing rate limiting briefly is preferable to rejecting all
// authentication traffic while Redis is down.
type redisRateLimiter struct {
	client  *redis.Client
	logger  *logger.Logger
	prefix  string
	timeout time.Duration
}

// NewRedisRateLimiter constructs a Redis-backed rate limiter and verifies
// the connection with a ping, so a misconfigured address fails at startup.
func NewRedisRateLimiter(cfg config.Redis, log *logger.Logger) (RateLimiter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisRateLimiter").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, err
	}
	log.Info().Str("func", "NewRedisRateLimiter").Msg("connected to redis successfully")

	return &redisRateLimiter{
		client:  client,
		logger:  log,
		prefix:  "notes-keeper:ratelimit:",
		timeout: 250 * time.Millisecond,
	}, nil
}

// Allow counts one request for key against limit per window.
//
// The counter key lives exactly one window: the first INCR of a window
// creates it and attaches the TTL, later requests only increment it. The
// remaining TTL doubles as the reset time reported to clients.
func (rl *redisRateLimiter) Allow(key string, limit int, window time.Duration) RateDecision {
	if limit <= 0 {
		return RateDecision{Allowed: true}
	}
	if window <= 0 {
		window = time.Minute
	}

	ctx, cancel := context.WithTimeout(context.Background(), rl.timeout)
	defer cancel()

	redisKey := rl.prefix + key
	counter, err := rl.client.Incr(ctx, redisKey).Result()
	if err != nil {
		rl.logRedisError("incr", err)
		return RateDecision{Allowed: true}
	}
	if counter == 1 {
		if err = rl.client.Expire(ctx, redisKey, window).Err(); err != nil {
			rl.logRedisError("expire", err)
		}
	}

	ttl, err := rl.client.TTL(ctx, redisKey).Result()
	if err != nil || ttl <= 0 {
		ttl = window
	}

	return RateDecision{
		Allowed:   int(counter) <= limit,
		Count:     int(counter),
		WindowEnd: time.Now().Add(ttl),
	}
}

// Close releases the underlying Redis client.
func (rl *redisRateLimiter) Close() error {
	if rl.client == nil {
		return nil
	}
	return rl.client.Close()
}

func (rl *redisRateLimiter) logRedisError(op string, err error) {
	rl.logger.Warn().
		Err(err).
		Str("func", "redisRateLimiter.Allow").
		Str("op", op).
		Msg("redis rate limiter error, failing open")
}
