package httpmiddleware

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/redis/go-redis/v9"
)

// fixedWindowScript increments the counter for the current window and sets
// its expiry on first use. It returns the count and the remaining TTL in ms.
var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {current, redis.call("PTTL", KEYS[1])}
`)

// redisLimiter is a fixed window limiter shared by every replica that uses
// the same Redis.
type redisLimiter struct {
	client redis.Cmdable
	cfg    RateLimitConfig
	prefix string
}

func (l *redisLimiter) allow(ctx context.Context, key string, now time.Time) (int, time.Time, bool, error) {
	res, err := fixedWindowScript.Run(ctx, l.client, []string{l.prefix + key}, l.cfg.Window.Milliseconds()).Int64Slice()
	if err != nil {
		return 0, time.Time{}, false, errors.Wrap(err, "rate limit script")
	}
	if len(res) != 2 {
		return 0, time.Time{}, false, errors.Errorf("rate limit script returned %d values", len(res))
	}

	count, ttl := res[0], res[1]
	if ttl < 0 {
		ttl = l.cfg.Window.Milliseconds()
	}
	resetAt := now.Add(time.Duration(ttl) * time.Millisecond)
	remaining := max(int64(l.cfg.Max)-count, 0)
	return int(remaining), resetAt, count <= int64(l.cfg.Max), nil
}

// RedisRateLimit is RateLimit backed by Redis, so the budget is shared across
// server replicas. When Redis is unreachable requests are let through.
func RedisRateLimit(client redis.Cmdable, cfg RateLimitConfig) Middleware {
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = defaultKeyFunc
	}
	return rateLimitMiddleware(cfg, &redisLimiter{
		client: client,
		cfg:    cfg,
		prefix: "orderflow:ratelimit:",
	})
}
