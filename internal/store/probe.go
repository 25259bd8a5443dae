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
	"fmt"
	"log/slog"
)

// probeKey is the sentinel key written and deleted to verify a backend
// is writable.
const probeKey = "__audittrail_probe__"

// Probe verifies a backend is writable by writing and deleting a
// sentinel key.
func Probe(
	ctx context.Context,
	backend Backend,
) error {
	if err := backend.Set(ctx, probeKey, []byte("ok")); err != nil {
		return fmt.Errorf("probe set: %w", err)
	}

	if err := backend.Remove(ctx, probeKey); err != nil {
		return fmt.Errorf("probe remove: %w", err)
	}

	return nil
}

// Select probes the durable backend once and returns it when writable,
// silently falling back to the in-memory backend otherwise. Degradation
// is logged, never returned: callers cannot distinguish which backend
// serves them except through persistence across process restarts.
func Select(
	ctx context.Context,
	logger *slog.Logger,
	durable Backend,
) Backend {
	if durable == nil {
		return NewMemory()
	}

	if err := Probe(ctx, durable); err != nil {
		logger.Warn(
			"durable store failed probe, falling back to in-memory",
			slog.String("backend", durable.Name()),
			slog.String("error", err.Error()),
		)

		return NewMemory()
	}

	return durable
}
