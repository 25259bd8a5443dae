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
	"log/slog"

	"github.com/nats-io/nats.go/jetstream"
)

// KVBucket is the subset of the JetStream KeyValue interface the NATS
// backend consumes.
type KVBucket interface {
	Get(ctx context.Context, key string) (jetstream.KeyValueEntry, error)
	Put(ctx context.Context, key string, value []byte) (uint64, error)
	Delete(ctx context.Context, key string, opts ...jetstream.KVDeleteOpt) error
}

// ensure the JetStream KeyValue interface satisfies KVBucket.
var _ KVBucket = (jetstream.KeyValue)(nil)

// ensure NATS implements Backend at compile time.
var _ Backend = (*NATS)(nil)

// NATS is a durable backend storing values in a JetStream KV bucket.
type NATS struct {
	kv     KVBucket
	logger *slog.Logger
}

// NewNATS creates a new NATS backend over an existing KV bucket.
func NewNATS(
	logger *slog.Logger,
	kv KVBucket,
) *NATS {
	return &NATS{
		kv:     kv,
		logger: logger,
	}
}

// Name identifies the backend in logs and health output.
func (n *NATS) Name() string { return "nats" }

// Get returns the value stored under key in the KV bucket.
func (n *NATS) Get(
	ctx context.Context,
	key string,
) ([]byte, error) {
	kve, err := n.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return nil, ErrKeyNotFound
		}

		return nil, fmt.Errorf("get kv entry: %w", err)
	}

	return kve.Value(), nil
}

// Set stores value under key in the KV bucket.
func (n *NATS) Set(
	ctx context.Context,
	key string,
	value []byte,
) error {
	if _, err := n.kv.Put(ctx, key, value); err != nil {
		return fmt.Errorf("put kv entry: %w", err)
	}

	return nil
}

// Remove deletes the value stored under key in the KV bucket.
func (n *NATS) Remove(
	ctx context.Context,
	key string,
) error {
	if err := n.kv.Delete(ctx, key); err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return nil
		}

		return fmt.Errorf("delete kv entry: %w", err)
	}

	return nil
}
