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
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	auditapi "github.com/retr0h/audittrail/internal/api/audit"
	auditstore "github.com/retr0h/audittrail/internal/audit"
)

type AuditCreatePublicTestSuite struct {
	suite.Suite

	harness *testHarness
}

func TestAuditCreatePublicTestSuite(t *testing.T) {
	suite.Run(t, new(AuditCreatePublicTestSuite))
}

func (s *AuditCreatePublicTestSuite) SetupTest() {
	s.harness = newTestHarness()
}

func (s *AuditCreatePublicTestSuite) TestCreateAuditLog() {
	tests := []struct {
		name      string
		body      string
		wantCode  int
		wantField string
	}{
		{
			name:     "when request is valid",
			body:     `{"userId":"alice","actionType":"CREATE","entity":"calculation","details":{"expression":"2+2","result":"4"}}`,
			wantCode: http.StatusCreated,
		},
		{
			name:     "when delete carries a reason",
			body:     `{"userId":"alice","actionType":"DELETE","entity":"calculation","reason":"cleanup"}`,
			wantCode: http.StatusCreated,
		},
		{
			name:      "when userId is blank",
			body:      `{"actionType":"CREATE","entity":"calculation"}`,
			wantCode:  http.StatusBadRequest,
			wantField: "userId",
		},
		{
			name:      "when entity is blank",
			body:      `{"userId":"alice","actionType":"CREATE"}`,
			wantCode:  http.StatusBadRequest,
			wantField: "entity",
		},
		{
			name:      "when actionType is unknown",
			body:      `{"userId":"alice","actionType":"PURGE","entity":"calculation"}`,
			wantCode:  http.StatusBadRequest,
			wantField: "actionType",
		},
		{
			name:      "when delete lacks a reason",
			body:      `{"userId":"alice","actionType":"DELETE","entity":"calculation"}`,
			wantCode:  http.StatusBadRequest,
			wantField: "reason",
		},
		{
			name:     "when body is not JSON",
			body:     `not json`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			rec := s.harness.do(http.MethodPost, "/audit/logs", tc.body)

			s.Equal(tc.wantCode, rec.Code)

			if tc.wantField != "" {
				var errResp auditapi.ErrorResponse
				s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &errResp))
				s.Equal(tc.wantField, errResp.Field)
			}
		})
	}
}

func (s *AuditCreatePublicTestSuite) TestCreateAuditLogReturnsEntry() {
	body := `{"userId":"alice","actionType":"CREATE","entity":"calculation","details":{"expression":"2+2","result":"4"},"metadata":{"requestId":"req-1"}}`

	rec := s.harness.do(http.MethodPost, "/audit/logs", body)

	s.Require().Equal(http.StatusCreated, rec.Code)

	var entry auditstore.Entry
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &entry))
	s.NotEmpty(entry.ID)
	s.Equal("alice", entry.UserID)
	s.Equal(auditstore.ActionCreate, entry.Action)
	s.Equal("calculation", entry.Entity)
	s.NotEmpty(entry.CorrelationID)
	s.Equal("req-1", entry.Metadata["requestId"])

	details, ok := entry.Details.(auditstore.CalculationDetails)
	s.Require().True(ok)
	s.Equal("2+2", details.Expression)
}

func (s *AuditCreatePublicTestSuite) TestCreateAuditLogUsesIdentityHeader() {
	req := `{"actionType":"CREATE","entity":"calculation"}`

	// Route the request through a context carrying the identity the
	// middleware would have injected.
	e := s.harness.echo
	httpReq := newJSONRequest(http.MethodPost, "/audit/logs", req)
	rec := newRecorder()

	c := e.NewContext(httpReq, rec)
	c.Set(auditapi.ContextKeyUser, "header-user")

	err := s.harness.handler.CreateAuditLog(c)

	s.Require().NoError(err)
	s.Equal(http.StatusCreated, rec.Code)

	var entry auditstore.Entry
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &entry))
	s.Equal("header-user", entry.UserID)
}

func (s *AuditCreatePublicTestSuite) TestCreateAuditLogPersists() {
	body := `{"userId":"alice","actionType":"UPDATE","entity":"conversion"}`

	rec := s.harness.do(http.MethodPost, "/audit/logs", body)
	s.Require().Equal(http.StatusCreated, rec.Code)

	listRec := s.harness.do(http.MethodGet, "/audit/logs", "")
	s.Require().Equal(http.StatusOK, listRec.Code)

	var page auditstore.Page
	s.Require().NoError(json.Unmarshal(listRec.Body.Bytes(), &page))
	s.Equal(1, page.Total)
	s.Equal("alice", page.Items[0].UserID)
}
