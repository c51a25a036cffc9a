package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fastfoodz/catalog-svc/internal/domain"
	"fastfoodz/geo"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) AreaKey(origin geo.Coordinate, radiusMeters int) string {
	return fmt.Sprintf("catalog:%.4f_%.4f_%d", origin.Lat, origin.Lng, radiusMeters)
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]domain.Restaurant, bool, error) {
	raw, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var restaurants []domain.Restaurant
	if err := json.Unmarshal(raw, &restaurants); err != nil {
		return nil, false, fmt.Errorf("decode cached catalog %s: %w", key, err)
	}
	return restaurants, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, restaurants []domain.Restaurant) error {
	raw, err := json.Marshal(restaurants)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, raw, c.TTL).Err()
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}
