package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/comics-keeper/internal/logger"
)

// TokenDenylistRepository keeps revoked token ids in Redis. Each entry expires
// together with the token it revokes.
type TokenDenylistRepository struct {
	client *redis.Client
}

func NewTokenDenylistRepository(client *redis.Client) *TokenDenylistRepository {
	return &TokenDenylistRepository{client: client}
}

func denylistKey(tokenID string) string {
	return "token_denylist:" + tokenID
}

// Revoke adds tokenID to the denylist for ttl. A non-positive ttl is a no-op:
// such a token is already rejected as expired.
func (r *TokenDenylistRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	key := denylistKey(tokenID)
	err := r.client.Set(ctx, key, "1", ttl).Err()

	logger.FromContext(ctx).Infow("denylist add",
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// IsRevoked reports whether tokenID is on the denylist.
func (r *TokenDenylistRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, denylistKey(tokenID)).Result()
	if err != nil {
		logger.FromContext(ctx).Errorw("denylist lookup failed", "token_id", tokenID, "error", err)
		return false, err
	}
	return n > 0, nil
}
