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

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/retr0h/audittrail/internal/store"
)

// fakeRedisClient backs the Redis backend with an in-memory map so tests
// exercise key namespacing and redis.Nil mapping without a live server.
type fakeRedisClient struct {
	data map[string]string
}

func newFakeRedisClient() *fakeRedisClient {
	return &fakeRedisClient{data: map[string]string{}}
}

func (f *fakeRedisClient) Get(
	_ context.Context,
	key string,
) *redis.StringCmd {
	value, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}

	return redis.NewStringResult(value, nil)
}

func (f *fakeRedisClient) Set(
	_ context.Context,
	key string,
	value interface{},
	_ time.Duration,
) *redis.StatusCmd {
	f.data[key] = string(value.([]byte))

	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedisClient) Del(
	_ context.Context,
	keys ...string,
) *redis.IntCmd {
	var removed int64
	for _, key := range keys {
		if _, ok := f.data[key]; ok {
			delete(f.data, key)
			removed++
		}
	}

	return redis.NewIntResult(removed, nil)
}

type RedisPublicTestSuite struct {
	suite.Suite

	ctx    context.Context
	client *fakeRedisClient
}

func (s *RedisPublicTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.client = newFakeRedisClient()
}

func (s *RedisPublicTestSuite) TestRoundTrip() {
	r := store.NewRedis(s.client, "audittrail")

	s.Require().NoError(r.Set(s.ctx, "auditTrail", []byte(`[]`)))

	got, err := r.Get(s.ctx, "auditTrail")
	s.Require().NoError(err)
	s.Equal([]byte(`[]`), got)

	// Keys are namespaced under the configured prefix.
	s.Contains(s.client.data, "audittrail:auditTrail")
}

func (s *RedisPublicTestSuite) TestNoPrefix() {
	r := store.NewRedis(s.client, "")

	s.Require().NoError(r.Set(s.ctx, "auditTrail", []byte(`[]`)))

	s.Contains(s.client.data, "auditTrail")
}

func (s *RedisPublicTestSuite) TestGetMissingKey() {
	r := store.NewRedis(s.client, "audittrail")

	_, err := r.Get(s.ctx, "absent")
	s.Require().ErrorIs(err, store.ErrKeyNotFound)
}

func (s *RedisPublicTestSuite) TestRemove() {
	r := store.NewRedis(s.client, "audittrail")

	s.Require().NoError(r.Set(s.ctx, "auditTrail", []byte(`[]`)))
	s.Require().NoError(r.Remove(s.ctx, "auditTrail"))

	_, err := r.Get(s.ctx, "auditTrail")
	s.Require().ErrorIs(err, store.ErrKeyNotFound)

	s.NoError(r.Remove(s.ctx, "auditTrail"))
}

func (s *RedisPublicTestSuite) TestName() {
	s.Equal("redis", store.NewRedis(s.client, "").Name())
}

func TestRedisPublicTestSuite(t *testing.T) {
	suite.Run(t, new(RedisPublicTestSuite))
}
