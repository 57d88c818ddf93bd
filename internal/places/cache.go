package places

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"transferbook/pkg/logger"
	"transferbook/pkg/model"

	"github.com/go-redis/redis/v8"
)

type DetailsCache interface {
	Get(ctx context.Context, placeID string) (*model.PlaceDetails, bool, error)
	Set(ctx context.Context, placeID string, details *model.PlaceDetails) error
}

const detailsKeyPrefix = "places:details:"

func detailsKey(placeID string) string {
	return detailsKeyPrefix + placeID
}

type RedisDetailsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDetailsCache(client *redis.Client, ttl time.Duration) *RedisDetailsCache {
	return &RedisDetailsCache{client: client, ttl: ttl}
}

func (c *RedisDetailsCache) Get(ctx context.Context, placeID string) (*model.PlaceDetails, bool, error) {
	val, err := c.client.Get(ctx, detailsKey(placeID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var details model.PlaceDetails
	if err := json.Unmarshal(val, &details); err != nil {
		return nil, false, err
	}
	return &details, true, nil
}

func (c *RedisDetailsCache) Set(ctx context.Context, placeID string, details *model.PlaceDetails) error {
	data, err := json.Marshal(details)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, detailsKey(placeID), data, c.ttl).Err()
}

// CachedProvider serves PlaceDetails from the cache when possible. Cache
// failures are logged and fall through to the provider.
type CachedProvider struct {
	Provider
	cache DetailsCache
	log   *logger.Logger
}

func NewCachedProvider(provider Provider, cache DetailsCache, log *logger.Logger) *CachedProvider {
	return &CachedProvider{Provider: provider, cache: cache, log: log}
}

func (p *CachedProvider) PlaceDetails(ctx context.Context, placeID string) (*model.PlaceDetails, error) {
	details, hit, err := p.cache.Get(ctx, placeID)
	if err != nil {
		p.log.Warn("Place details cache read failed", "place_id", placeID, "error", err)
	} else if hit {
		return details, nil
	}

	details, err = p.Provider.PlaceDetails(ctx, placeID)
	if err != nil || details == nil {
		return details, err
	}

	if err := p.cache.Set(ctx, placeID, details); err != nil {
		p.log.Warn("Place details cache write failed", "place_id", placeID, "error", err)
	}
	return details, nil
}
