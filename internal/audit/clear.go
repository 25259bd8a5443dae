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
	"log/slog"
	"strings"
)

// ClearLogs discards the entire log after a signed authorization.
// Blank credentials fail with *ValidationError before any mutation.
//
// The clear does not itself append an entry: the caller logs the DELETE
// entry carrying the signature payload immediately afterward, so the fact
// and justification of the clear stay traceable even though the cleared
// data is gone.
func (s *Store) ClearLogs(
	ctx context.Context,
	credentials Credentials,
) (*ClearResult, error) {
	if strings.TrimSpace(credentials.Username) == "" {
		return nil, &ValidationError{Field: "username", Reason: "must not be blank"}
	}

	if strings.TrimSpace(credentials.Password) == "" {
		return nil, &ValidationError{Field: "password", Reason: "must not be blank"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cleared := len(s.loadLog(ctx))

	if err := s.saveLog(ctx, []Entry{}); err != nil {
		s.logger.Warn(
			"cannot persist cleared audit log",
			slog.String("backend", s.backend.Name()),
			slog.String("error", err.Error()),
		)
	}

	return &ClearResult{
		Cleared:   cleared,
		Timestamp: nowFn().UTC(),
	}, nil
}
