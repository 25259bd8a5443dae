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
	"fmt"
	"log/slog"
	"strings"
)

// LogAction validates, builds, appends, and persists one audit entry.
// Violating any constraint fails with *ValidationError before any
// persistence side effect. On success the log grows by exactly one entry
// and is persisted synchronously before returning; storage faults past
// validation are absorbed with a warning, never surfaced.
func (s *Store) LogAction(
	ctx context.Context,
	userID string,
	action Action,
	entity string,
	details Details,
	opts Options,
) (*Entry, error) {
	userID = strings.TrimSpace(userID)
	entity = strings.TrimSpace(entity)

	if userID == "" {
		return nil, &ValidationError{Field: "userId", Reason: "must not be blank"}
	}

	if entity == "" {
		return nil, &ValidationError{Field: "entity", Reason: "must not be blank"}
	}

	if !action.Valid() {
		return nil, &ValidationError{
			Field:  "actionType",
			Reason: fmt.Sprintf("%q is not one of CREATE, READ, UPDATE, DELETE", string(action)),
		}
	}

	if action == ActionDelete && strings.TrimSpace(opts.Reason) == "" {
		return nil, &ValidationError{Field: "reason", Reason: "required when actionType is DELETE"}
	}

	correlationID := opts.CorrelationID
	if correlationID == "" {
		correlationID = newID()
	}

	entry := Entry{
		ID:            newID(),
		UserID:        userID,
		Timestamp:     nowFn().UTC(),
		Action:        action,
		Entity:        entity,
		Details:       details,
		Before:        opts.Before,
		After:         opts.After,
		Reason:        opts.Reason,
		CorrelationID: correlationID,
		Metadata:      s.mergeMetadata(opts.Metadata),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := append(s.loadLog(ctx), entry)
	if err := s.saveLog(ctx, entries); err != nil {
		s.logger.Warn(
			"cannot persist audit log",
			slog.String("backend", s.backend.Name()),
			slog.String("error", err.Error()),
		)
	}

	return &entry, nil
}

// RecordError captures an internal fault as a diagnostic READ entry. It
// is the last line of defense: any failure while building or persisting
// the diagnostic yields nil and a log line only, never an error in the
// caller's control flow.
func (s *Store) RecordError(
	ctx context.Context,
	cause error,
	errCtx ErrorContext,
) (entry *Entry) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error(
				"panic while recording diagnostic entry",
				slog.Any("panic", r),
			)

			entry = nil
		}
	}()

	if cause == nil {
		return nil
	}

	name := errCtx.Name
	if name == "" {
		name = fmt.Sprintf("%T", cause)
	}

	userID := errCtx.UserID
	if userID == "" {
		userID = "system"
	}

	details := DiagnosticDetails{
		Name:    name,
		Message: cause.Error(),
		Extra:   errCtx.Extra,
	}

	entry, err := s.LogAction(ctx, userID, ActionRead, "diagnostic", details, Options{})
	if err != nil {
		s.logger.Warn(
			"cannot record diagnostic entry",
			slog.String("cause", cause.Error()),
			slog.String("error", err.Error()),
		)

		return nil
	}

	return entry
}

// mergeMetadata layers caller-supplied metadata over the environment
// defaults, caller values winning key by key.
func (s *Store) mergeMetadata(
	overrides map[string]string,
) map[string]string {
	merged := map[string]string{}

	if s.metadata != nil {
		for k, v := range s.metadata.MetadataDefaults() {
			merged[k] = v
		}
	}

	for k, v := range overrides {
		merged[k] = v
	}

	if len(merged) == 0 {
		return nil
	}

	return merged
}
