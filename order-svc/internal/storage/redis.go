package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fastfoodz/order-svc/internal/domain"
	"fastfoodz/orderstatus"

	"github.com/redis/go-redis/v9"
)

const cartKeyPrefix = "fastfoodz_cart"

// RedisCartStore keeps one JSON cart snapshot per user.
type RedisCartStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{Client: client, TTL: ttl}
}

func CartKey(userID string) string {
	return cartKeyPrefix + ":" + userID
}

func (s *RedisCartStore) LoadCart(ctx context.Context, userID string) (domain.Cart, error) {
	raw, err := s.Client.Get(ctx, CartKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Cart{}, nil
	}
	if err != nil {
		return domain.Cart{}, err
	}

	var cart domain.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return domain.Cart{}, fmt.Errorf("decode cart for %s: %w", userID, err)
	}
	return cart, nil
}

// SaveCart deletes the key for an empty cart.
func (s *RedisCartStore) SaveCart(ctx context.Context, userID string, cart domain.Cart) error {
	if cart.Empty() {
		return s.Client.Del(ctx, CartKey(userID)).Err()
	}
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, CartKey(userID), raw, s.TTL).Err()
}

// RedisStatusCache reads the order status written by status-svc.
type RedisStatusCache struct {
	Client *redis.Client
}

func NewRedisStatusCache(client *redis.Client) *RedisStatusCache {
	return &RedisStatusCache{Client: client}
}

func StatusKey(orderID string) string {
	return "order:" + orderID + ":status"
}

func (c *RedisStatusCache) GetStatus(ctx context.Context, orderID string) (orderstatus.Status, bool, error) {
	raw, err := c.Client.Get(ctx, StatusKey(orderID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	status, err := orderstatus.Parse(raw)
	if err != nil {
		return "", false, err
	}
	return status, true, nil
}
