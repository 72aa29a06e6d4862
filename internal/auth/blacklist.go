package auth

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const blacklistKeyPrefix = "token_blacklist:"

// Blacklist stores revoked token IDs in redis until their natural expiry.
// A nil client degrades to a no-op so the service runs without redis.
type Blacklist struct {
	client *redis.Client
}

// NewBlacklist creates a Blacklist backed by the given redis client
func NewBlacklist(client *redis.Client) *Blacklist {
	return &Blacklist{client: client}
}

// Revoke records a token ID until ttl elapses
func (b *Blacklist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if b == nil || b.client == nil || tokenID == "" || ttl <= 0 {
		return nil
	}
	return b.client.Set(ctx, blacklistKeyPrefix+tokenID, 1, ttl).Err()
}

// IsRevoked reports whether a token ID has been revoked.
// Redis being unavailable fails open: a logged-out token is then accepted
// until it expires, which matches cookie-clearing-only behavior.
func (b *Blacklist) IsRevoked(ctx context.Context, tokenID string) bool {
	if b == nil || b.client == nil || tokenID == "" {
		return false
	}
	n, err := b.client.Exists(ctx, blacklistKeyPrefix+tokenID).Result()
	if err != nil {
		return false
	}
	return n > 0
}
