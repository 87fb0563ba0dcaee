package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	fiberredis "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"

	"github.com/floxenta/floxenta_backend/config"
)

// NewContactLimiter limits inquiries per client IP with a sliding window.
// Counters live in Redis when rdb is set so every replica shares them, and
// in process memory otherwise.
func NewContactLimiter(cfg config.RateLimitConfig, rdb *redis.Client, onLimit fiber.Handler) fiber.Handler {
	limit := cfg.Max
	if limit <= 0 {
		limit = 5
	}
	exp := time.Duration(cfg.ExpirationSeconds) * time.Second
	if exp <= 0 {
		exp = time.Minute
	}

	lc := limiter.Config{
		Max:               limit,
		Expiration:        exp,
		LimiterMiddleware: limiter.SlidingWindow{},
		LimitReached:      onLimit,
	}
	if rdb != nil {
		lc.Storage = fiberredis.NewFromConnection(rdb)
	}
	return limiter.New(lc)
}
