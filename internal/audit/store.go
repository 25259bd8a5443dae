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

package audit

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/retr0h/audittrail/internal/store"
)

// DefaultLogKey is the logical key the serialized log document is stored
// under when none is configured.
const DefaultLogKey = "auditTrail"

// marshalJSON is the function used to marshal entries. Override in tests.
var marshalJSON = json.Marshal

// nowFn is the function used to read the clock. Override in tests.
var nowFn = time.Now

// newID is the function used to mint entry IDs. Override in tests.
var newID = uuid.NewString

// MetadataProvider resolves the environment defaults merged into every
// recorded entry's metadata.
type MetadataProvider interface {
	// MetadataDefaults returns environment facts such as app version,
	// client signature, platform, and hostname.
	MetadataDefaults() map[string]string
}

// Store is the append-only audit log. It is constructed once and passed
// by reference to every collaborator that records or queries entries.
//
// In-process calls are serialized by a mutex. Independent processes
// sharing one backing store are not coordinated: each writer reads the
// full log, mutates it, and writes it back as one unit, so the later
// write wins. The system targets a single active writer per backing
// store; multi-writer deployments would need compare-and-swap at the
// store.Backend boundary.
type Store struct {
	logger   *slog.Logger
	backend  store.Backend
	metadata MetadataProvider
	key      string

	mu sync.Mutex
}

// Option configures the Store.
type Option func(*Store)

// WithLogKey overrides the logical key the log document is stored under.
func WithLogKey(
	key string,
) Option {
	return func(s *Store) {
		s.key = key
	}
}

// WithMetadataProvider sets the environment metadata source.
func WithMetadataProvider(
	p MetadataProvider,
) Option {
	return func(s *Store) {
		s.metadata = p
	}
}

// New creates a new Store persisting through backend.
func New(
	logger *slog.Logger,
	backend store.Backend,
	opts ...Option,
) *Store {
	s := &Store{
		logger:  logger,
		backend: backend,
		key:     DefaultLogKey,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// BackendName identifies the serving backend for health output.
func (s *Store) BackendName() string {
	return s.backend.Name()
}

// loadLog reads and decodes the full log document. A missing key yields
// an empty log; malformed stored data never raises, it degrades to an
// empty log with a warning.
func (s *Store) loadLog(
	ctx context.Context,
) []Entry {
	data, err := s.backend.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			s.logger.Warn(
				"cannot read audit log",
				slog.String("backend", s.backend.Name()),
				slog.String("error", err.Error()),
			)
		}

		return []Entry{}
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn(
			"stored audit log is malformed, starting empty",
			slog.String("backend", s.backend.Name()),
			slog.String("error", err.Error()),
		)

		return []Entry{}
	}

	return entries
}

// saveLog encodes and persists the full log document as one unit.
func (s *Store) saveLog(
	ctx context.Context,
	entries []Entry,
) error {
	data, err := marshalJSON(entries)
	if err != nil {
		return err
	}

	return s.backend.Set(ctx, s.key, data)
}
