// Package ratelimit provides Redis-backed rate limiting using the
// INCR + EXPIRE windowed-counter algorithm. The screening service uses it to
// shed screen-check floods before they reach the detectors.
package ratelimit

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Policy defines one throttling rule: the Redis key prefix, the maximum
// number of events allowed in the window, and the window duration.
type Policy struct {
	Prefix string        // Redis key prefix (e.g., "rl:screen:")
	Limit  int           // max count in the window
	Window time.Duration // time window
}

// PolicyScreen allows 30 screen checks per 10 seconds per session. Well
// above what a human can type, low enough to keep a misbehaving client from
// monopolizing the screener.
var PolicyScreen = Policy{Prefix: "rl:screen:", Limit: 30, Window: 10 * time.Second}

// Limiter performs rate limiting checks against Redis.
type Limiter struct {
	client *redis.Client
}

// NewLimiter creates a Limiter backed by the given Redis client.
func NewLimiter(client *redis.Client) *Limiter {
	return &Limiter{client: client}
}

// Allow checks whether the identifier is within the limit defined by policy.
// It increments the counter and sets the expiry on first access.
//
// Returns true if the event is allowed, false if rate limited. On Redis
// errors the method fails open (returns true) so a Redis outage never blocks
// legitimate traffic.
func (l *Limiter) Allow(ctx context.Context, identifier string, policy Policy) (bool, error) {
	key := policy.Prefix + identifier

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		log.Printf("[ratelimit] redis INCR error key=%s: %v (failing open)", key, err)
		return true, err
	}

	// The first increment defines the window boundary.
	if count == 1 {
		if err := l.client.Expire(ctx, key, policy.Window).Err(); err != nil {
			log.Printf("[ratelimit] redis EXPIRE error key=%s: %v (failing open)", key, err)
			// The key exists without a TTL and would throttle the identifier
			// forever; best effort removal.
			l.client.Del(ctx, key)
			return true, err
		}
	}

	return int(count) <= policy.Limit, nil
}

// Remaining returns how many events the identifier has left in the current
// window. Returns the full limit if the key does not exist yet, and fails
// open to the full limit on Redis errors.
func (l *Limiter) Remaining(ctx context.Context, identifier string, policy Policy) (int, error) {
	key := policy.Prefix + identifier

	count, err := l.client.Get(ctx, key).Int()
	if err == redis.Nil {
		return policy.Limit, nil
	}
	if err != nil {
		log.Printf("[ratelimit] redis GET error key=%s: %v (failing open)", key, err)
		return policy.Limit, err
	}

	remaining := policy.Limit - count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}
