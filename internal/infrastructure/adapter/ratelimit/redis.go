package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	coreport "github.com/amirhossein-jamali/adspark/internal/domain/port/core"
)

// allowScript returns {allowed, count, pttl}. The counter is only incremented while under the
// limit, and the window starts with the first counted request.
var allowScript = redis.NewScript(`
local count = tonumber(redis.call('GET', KEYS[1]) or '0')
local limit = tonumber(ARGV[1])
local allowed = 0
if count < limit then
  count = redis.call('INCR', KEYS[1])
  allowed = 1
end
local ttl = redis.call('PTTL', KEYS[1])
if ttl < 0 and count > 0 then
  redis.call('PEXPIRE', KEYS[1], ARGV[2])
  ttl = tonumber(ARGV[2])
end
return {allowed, count, ttl}
`)

// RedisLimiter is a fixed-window counter shared by every instance using the same Redis
type RedisLimiter struct {
	client       redis.Scripter
	prefix       string
	limit        int
	period       time.Duration
	timeProvider coreport.TimeProvider
}

// NewRedisLimiter creates a limiter whose windows live in Redis under prefix, shared by every
// instance pointing at the same server. An empty prefix uses the default.
func NewRedisLimiter(client redis.Scripter, prefix string, limit int, period time.Duration, timeProvider coreport.TimeProvider) *RedisLimiter {
	if prefix == "" {
		prefix = "ratelimit:"
	}
	return &RedisLimiter{
		client:       client,
		prefix:       prefix,
		limit:        limit,
		period:       period,
		timeProvider: timeProvider,
	}
}

var _ coreport.RateLimiter = (*RedisLimiter)(nil)

// Allow counts one hit for key in the current window with a single script call
func (l *RedisLimiter) Allow(ctx context.Context, key string) (coreport.RateDecision, error) {
	res, err := allowScript.Run(ctx, l.client, []string{l.prefix + key}, l.limit, l.period.Milliseconds()).Int64Slice()
	if err != nil {
		return coreport.RateDecision{}, fmt.Errorf("rate limit script: %w", err)
	}
	if len(res) != 3 {
		return coreport.RateDecision{}, fmt.Errorf("rate limit script returned %d values", len(res))
	}

	allowed, count, ttl := res[0] == 1, int(res[1]), time.Duration(res[2])*time.Millisecond
	return coreport.RateDecision{
		Allowed:   allowed,
		Limit:     l.limit,
		Remaining: max(l.limit-count, 0),
		ResetAt:   l.timeProvider.Now().Add(ttl),
	}, nil
}
