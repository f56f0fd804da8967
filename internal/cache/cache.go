// Package cache keeps JSON copies of list queries in Redis. Each table has a
// version counter that is part of every key, so invalidating a table is a
// single INCR and stale entries simply age out.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "query"

type QueryCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewQueryCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *QueryCache {
	return &QueryCache{client: client, ttl: ttl, logger: logger}
}

func versionKey(table string) string {
	return fmt.Sprintf("%s:%s:version", keyPrefix, table)
}

func (c *QueryCache) entryKey(ctx context.Context, table, key string) (string, error) {
	version, err := c.client.Get(ctx, versionKey(table)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}
	return fmt.Sprintf("%s:%s:v%d:%s", keyPrefix, table, version, key), nil
}

// Get decodes a cached value into dest and reports whether it was found.
func (c *QueryCache) Get(ctx context.Context, table, key string, dest any) (bool, error) {
	hit, _, err := c.Lookup(ctx, table, key, dest)
	return hit, err
}

// Lookup is Get that also returns the entry key it resolved. A value loaded
// after a miss belongs under that entry: if the table is invalidated while
// the value is being loaded, the entry is already unreachable.
func (c *QueryCache) Lookup(ctx context.Context, table, key string, dest any) (hit bool, entry string, err error) {
	entry, err = c.entryKey(ctx, table, key)
	if err != nil {
		return false, "", err
	}

	value, err := c.client.Get(ctx, entry).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, entry, nil
	}
	if err != nil {
		return false, entry, err
	}

	if err := json.Unmarshal(value, dest); err != nil {
		c.logger.Warn("Dropping undecodable cache entry", zap.String("key", entry), zap.Error(err))
		return false, entry, nil
	}
	return true, entry, nil
}

// Set stores value under the table's current version.
func (c *QueryCache) Set(ctx context.Context, table, key string, value any) error {
	entry, err := c.entryKey(ctx, table, key)
	if err != nil {
		return err
	}
	return c.StoreAt(ctx, entry, value)
}

// StoreAt writes value under an entry key returned by Lookup.
func (c *QueryCache) StoreAt(ctx context.Context, entry string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, entry, data, c.ttl).Err()
}

func (c *QueryCache) Invalidate(ctx context.Context, table string) error {
	if err := c.client.Incr(ctx, versionKey(table)).Err(); err != nil {
		return err
	}
	c.logger.Debug("Query cache invalidated", zap.String("table", table))
	return nil
}
