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

package audit_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/audittrail/internal/audit"
	"github.com/retr0h/audittrail/internal/store"
)

type ClearPublicTestSuite struct {
	suite.Suite

	ctx   context.Context
	store *audit.Store
}

func (s *ClearPublicTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = audit.New(slog.Default(), store.NewMemory())

	for range 3 {
		_, err := s.store.LogAction(
			s.ctx, "u1", audit.ActionCreate, "calculation", nil, audit.Options{})
		s.Require().NoError(err)
	}
}

func (s *ClearPublicTestSuite) TestClearLogs() {
	tests := []struct {
		name        string
		credentials audit.Credentials
		wantErr     bool
		wantField   string
	}{
		{
			name:        "when credentials are present",
			credentials: audit.Credentials{Username: "admin", Password: "hunter2"},
		},
		{
			name:        "when username is blank",
			credentials: audit.Credentials{Username: "", Password: "x"},
			wantErr:     true,
			wantField:   "username",
		},
		{
			name:        "when password is blank",
			credentials: audit.Credentials{Username: "admin", Password: "   "},
			wantErr:     true,
			wantField:   "password",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			before, err := s.store.GetLogs(s.ctx, audit.Query{})
			s.Require().NoError(err)

			result, err := s.store.ClearLogs(s.ctx, tt.credentials)

			after, getErr := s.store.GetLogs(s.ctx, audit.Query{})
			s.Require().NoError(getErr)

			if tt.wantErr {
				s.Nil(result)

				var vErr *audit.ValidationError
				s.Require().ErrorAs(err, &vErr)
				s.Equal(tt.wantField, vErr.Field)

				// no mutation on validation failure
				s.Equal(before.Total, after.Total)
				return
			}

			s.Require().NoError(err)
			s.Equal(before.Total, result.Cleared)
			s.False(result.Timestamp.IsZero())
			s.Equal(0, after.Total)
		})
	}
}

func (s *ClearPublicTestSuite) TestClearThenLogDeleteEntryStaysTraceable() {
	result, err := s.store.ClearLogs(
		s.ctx, audit.Credentials{Username: "admin", Password: "hunter2"})
	s.Require().NoError(err)
	s.Equal(3, result.Cleared)

	// the caller records the clear as a DELETE entry afterward
	entry, err := s.store.LogAction(
		s.ctx,
		"admin",
		audit.ActionDelete,
		"audit",
		audit.LogClearDetails{EntriesCleared: result.Cleared},
		audit.Options{Reason: "retention window elapsed"},
	)
	s.Require().NoError(err)

	page, err := s.store.GetLogs(s.ctx, audit.Query{})
	s.Require().NoError(err)
	s.Equal(1, page.Total)
	s.Equal(entry.ID, page.Items[0].ID)
}

func TestClearPublicTestSuite(t *testing.T) {
	suite.Run(t, new(ClearPublicTestSuite))
}
