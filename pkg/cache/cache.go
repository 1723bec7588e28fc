package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache struct {
	client redis.UniversalClient
}

func New(client redis.UniversalClient) *Cache {
	return &Cache{client: client}
}

func NewFromAddr(addr, password string) *Cache {
	return New(redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	}))
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Get decodes the JSON value stored under namespace:key into dest. It reports
// false without error on a miss.
func (c *Cache) Get(ctx context.Context, namespace, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, namespace+":"+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Cache) Set(ctx context.Context, namespace, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, namespace+":"+key, raw, ttl).Err()
}

// DeleteNamespace drops every key under namespace.
func (c *Cache) DeleteNamespace(ctx context.Context, namespace string) error {
	var keys []string
	iter := c.client.Scan(ctx, 0, namespace+":*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}
