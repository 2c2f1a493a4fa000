package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/comics-keeper/internal/logger"
	"github.com/sbilibin2017/comics-keeper/internal/models"
)

const (
	publicComicsKey        = "comics:public"
	publicComicsVersionKey = "comics:public:version"
)

// ComicCacheRepository caches the public comic listing in Redis.
type ComicCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration of the cached listing
}

// NewComicCacheRepository creates a new cache repository with the given TTL.
func NewComicCacheRepository(client *redis.Client, expiration time.Duration) *ComicCacheRepository {
	return &ComicCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetPublic returns the cached public listing, or models.ErrNotFound on a cache miss.
func (r *ComicCacheRepository) GetPublic(ctx context.Context) ([]models.ComicDB, error) {
	val, err := r.client.Get(ctx, publicComicsKey).Bytes()

	logger.FromContext(ctx).Infow("cache get",
		"key", publicComicsKey,
		"size", len(val),
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var comics []models.ComicDB
	if err := json.Unmarshal(val, &comics); err != nil {
		return nil, err
	}
	return comics, nil
}

// PublicVersion returns the invalidation counter of the public listing. A missing counter reads as zero.
func (r *ComicCacheRepository) PublicVersion(ctx context.Context) (int64, error) {
	v, err := r.client.Get(ctx, publicComicsVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// SetPublic stores the public listing with the configured expiration, but only
// while the invalidation counter still equals version. A listing read before a
// concurrent write is dropped instead of overwriting the invalidation.
func (r *ComicCacheRepository) SetPublic(ctx context.Context, comics []models.ComicDB, version int64) error {
	log := logger.FromContext(ctx)

	data, err := json.Marshal(comics)
	if err != nil {
		return err
	}

	stale := false
	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, publicComicsVersionKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			stale = true
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, publicComicsKey, data, r.exp)
			return nil
		})
		return err
	}, publicComicsVersionKey)

	// the counter moved between WATCH and EXEC
	if errors.Is(err, redis.TxFailedErr) {
		stale, err = true, nil
	}

	log.Infow("cache set",
		"key", publicComicsKey,
		"count", len(comics),
		"version", version,
		"stale", stale,
		"error", err,
	)

	return err
}

// InvalidatePublic drops the cached public listing and bumps its version.
func (r *ComicCacheRepository) InvalidatePublic(ctx context.Context) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, publicComicsVersionKey)
		pipe.Del(ctx, publicComicsKey)
		return nil
	})

	logger.FromContext(ctx).Infow("cache del",
		"key", publicComicsKey,
		"error", err,
	)

	return err
}
