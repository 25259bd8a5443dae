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
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	auditstore "github.com/retr0h/audittrail/internal/audit"
)

type AuditGetPublicTestSuite struct {
	suite.Suite

	harness *testHarness
}

func TestAuditGetPublicTestSuite(t *testing.T) {
	suite.Run(t, new(AuditGetPublicTestSuite))
}

func (s *AuditGetPublicTestSuite) SetupTest() {
	s.harness = newTestHarness()
}

func (s *AuditGetPublicTestSuite) TestGetAuditLogByID() {
	logged, err := s.harness.store.LogAction(
		context.Background(),
		"alice",
		auditstore.ActionCreate,
		"calculation",
		nil,
		auditstore.Options{},
	)
	s.Require().NoError(err)

	tests := []struct {
		name     string
		id       string
		wantCode int
	}{
		{
			name:     "when entry exists",
			id:       logged.ID,
			wantCode: http.StatusOK,
		},
		{
			name:     "when entry does not exist",
			id:       "550e8400-e29b-41d4-a716-446655440000",
			wantCode: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			rec := s.harness.do(http.MethodGet, "/audit/logs/"+tc.id, "")

			s.Require().Equal(tc.wantCode, rec.Code)

			if tc.wantCode != http.StatusOK {
				return
			}

			var entry auditstore.Entry
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &entry))
			s.Equal(logged.ID, entry.ID)
			s.Equal("alice", entry.UserID)
		})
	}
}
