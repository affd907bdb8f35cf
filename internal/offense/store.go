// Package offense tracks repeated contact-leakage attempts per sender,
// backed by Redis. Each rejected message adds a strike; enough strikes
// inside the decay window mute the sender for an escalating duration:
//
//	Key:   leak:strikes:<session_id>  (counter, 24h TTL)
//	Key:   leak:mute:<session_id>     (reason, TTL = mute duration)
package offense

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// StrikesPrefix is the Redis key prefix for per-sender strike counters.
	StrikesPrefix = "leak:strikes:"

	// MutePrefix is the Redis key prefix for active mutes.
	MutePrefix = "leak:mute:"

	// Escalating mute durations.
	Mute10Min  = 10 * time.Minute // first mute
	Mute1Hour  = 1 * time.Hour    // second mute
	Mute24Hour = 24 * time.Hour   // third and later

	// StrikesTTL is how long the strike counter lives. A sender with no new
	// rejections for this long starts over at zero.
	StrikesTTL = 24 * time.Hour

	// MuteThreshold is the number of strikes inside StrikesTTL that triggers
	// a mute.
	MuteThreshold = 3
)

// Store manages strike counters and mutes in Redis.
type Store struct {
	client *redis.Client
}

// NewStore creates a new offense store using the provided Redis client.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// IsMuted checks whether a sender is currently muted. Returns
// (muted, remainingSeconds, reason, error). Redis errors are returned so
// callers can decide how to handle them; the recommended policy is fail-open.
func (s *Store) IsMuted(ctx context.Context, sessionID string) (bool, int, string, error) {
	key := MutePrefix + sessionID

	reason, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, 0, "", nil
	}
	if err != nil {
		return false, 0, "", err
	}

	ttl, err := s.client.TTL(ctx, key).Result()
	if err != nil {
		// The mute exists but the TTL read failed. Report muted with zero
		// remaining rather than swallowing the mute.
		return true, 0, reason, nil
	}

	remaining := 0
	if ttl > 0 {
		remaining = int(ttl.Seconds())
	}
	return true, remaining, reason, nil
}

// Mute silences a sender for the given duration. The mute expires on its own.
func (s *Store) Mute(ctx context.Context, sessionID string, duration time.Duration, reason string) error {
	return s.client.Set(ctx, MutePrefix+sessionID, reason, duration).Err()
}

// Unmute lifts a mute immediately.
func (s *Store) Unmute(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, MutePrefix+sessionID).Err()
}

// Strikes returns the current strike count for a sender. Returns 0 if the
// counter does not exist or has expired.
func (s *Store) Strikes(ctx context.Context, sessionID string) (int, error) {
	val, err := s.client.Get(ctx, StrikesPrefix+sessionID).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return val, nil
}

// muteDuration returns the mute length for a given mute ordinal: strikes at
// the threshold earn the shortest mute, each threshold-worth after that
// escalates.
func muteDuration(strikes int) time.Duration {
	switch {
	case strikes <= MuteThreshold:
		return Mute10Min
	case strikes <= 2*MuteThreshold:
		return Mute1Hour
	default:
		return Mute24Hour
	}
}

// Record adds a strike for a rejected message and, when the counter reaches
// the threshold, applies a mute with escalating duration. The counter TTL is
// set only on the first strike so the decay window does not slide.
//
// Returns (muted, appliedDuration, error); duration is zero when no mute was
// applied on this call.
func (s *Store) Record(ctx context.Context, sessionID string, reason string) (bool, time.Duration, error) {
	key := StrikesPrefix + sessionID

	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, fmt.Errorf("offense: record incr: %w", err)
	}

	if count == 1 {
		if err := s.client.Expire(ctx, key, StrikesTTL).Err(); err != nil {
			return false, 0, fmt.Errorf("offense: record expire: %w", err)
		}
	}

	if count < MuteThreshold {
		return false, 0, nil
	}

	duration := muteDuration(int(count))
	if err := s.Mute(ctx, sessionID, duration, reason); err != nil {
		return false, 0, fmt.Errorf("offense: record mute: %w", err)
	}
	return true, duration, nil
}
