// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient is the subset of the go-redis client the Redis backend
// consumes.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// ensure the go-redis client satisfies RedisClient.
var _ RedisClient = (*redis.Client)(nil)

// ensure Redis implements Backend at compile time.
var _ Backend = (*Redis)(nil)

// Redis is a durable backend storing one string value per key.
type Redis struct {
	client RedisClient
	prefix string
}

// NewRedis creates a new Redis backend. All keys are namespaced under
// prefix when one is configured.
func NewRedis(
	client RedisClient,
	prefix string,
) *Redis {
	return &Redis{
		client: client,
		prefix: prefix,
	}
}

// Name identifies the backend in logs and health output.
func (r *Redis) Name() string { return "redis" }

// Get returns the value stored under key.
func (r *Redis) Get(
	ctx context.Context,
	key string,
) ([]byte, error) {
	data, err := r.client.Get(ctx, r.nsKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrKeyNotFound
		}

		return nil, fmt.Errorf("get redis key: %w", err)
	}

	return data, nil
}

// Set stores value under key with no expiration.
func (r *Redis) Set(
	ctx context.Context,
	key string,
	value []byte,
) error {
	if err := r.client.Set(ctx, r.nsKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("set redis key: %w", err)
	}

	return nil
}

// Remove deletes the value stored under key.
func (r *Redis) Remove(
	ctx context.Context,
	key string,
) error {
	if err := r.client.Del(ctx, r.nsKey(key)).Err(); err != nil {
		return fmt.Errorf("del redis key: %w", err)
	}

	return nil
}

// nsKey prefixes a logical key with the configured namespace.
func (r *Redis) nsKey(
	key string,
) string {
	if r.prefix == "" {
		return key
	}

	return r.prefix + ":" + key
}
