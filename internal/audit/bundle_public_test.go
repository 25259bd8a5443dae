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
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/audittrail/internal/audit"
	"github.com/retr0h/audittrail/internal/store"
)

type BundlePublicTestSuite struct {
	suite.Suite

	ctx   context.Context
	store *audit.Store
}

func (s *BundlePublicTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = audit.New(slog.Default(), store.NewMemory())
}

func (s *BundlePublicTestSuite) TestExportLogsJSONRoundTrip() {
	logged, err := s.store.LogAction(
		s.ctx,
		"u1",
		audit.ActionCreate,
		"calculation",
		audit.CalculationDetails{Expression: "2+2", Result: "4", Mode: "basic"},
		audit.Options{
			Before: json.RawMessage(`{"display":""}`),
			After:  json.RawMessage(`{"display":"4"}`),
		},
	)
	s.Require().NoError(err)

	bundle, err := s.store.ExportLogs(s.ctx, audit.FormatJSON)
	s.Require().NoError(err)

	s.Equal("application/json", bundle.MimeType)
	s.Regexp(`^audit-trail-\d{8}T\d{6}Z\.json$`, bundle.Filename)

	var entries []audit.Entry
	s.Require().NoError(json.Unmarshal(bundle.Content, &entries))
	s.Require().Len(entries, 1)

	// the exported record re-parses structurally identical
	got := entries[0]
	s.Equal(logged.ID, got.ID)
	s.Equal(logged.UserID, got.UserID)
	s.True(logged.Timestamp.Equal(got.Timestamp))
	s.Equal(logged.Action, got.Action)
	s.Equal(logged.Entity, got.Entity)
	s.Equal(logged.Reason, got.Reason)
	s.Equal(logged.CorrelationID, got.CorrelationID)
	s.JSONEq(string(logged.Before), string(got.Before))
	s.JSONEq(string(logged.After), string(got.After))
	s.Equal(
		audit.CalculationDetails{Expression: "2+2", Result: "4", Mode: "basic"},
		got.Details,
	)
}

func (s *BundlePublicTestSuite) TestExportLogsCSV() {
	_, err := s.store.LogAction(
		s.ctx,
		"u1",
		audit.ActionDelete,
		"audit",
		audit.GenericDetails{"op": `clear "all"`},
		audit.Options{Reason: "cleanup"},
	)
	s.Require().NoError(err)

	bundle, err := s.store.ExportLogs(s.ctx, audit.FormatCSV)
	s.Require().NoError(err)

	s.Equal("text/csv", bundle.MimeType)
	s.Regexp(`^audit-trail-\d{8}T\d{6}Z\.csv$`, bundle.Filename)

	lines := strings.Split(strings.TrimRight(string(bundle.Content), "\n"), "\n")
	s.Require().Len(lines, 2)

	s.Equal(
		`"id","timestamp","userId","actionType","entity","reason",`+
			`"correlationId","details","before","after","metadata"`,
		lines[0],
	)

	s.Contains(lines[1], `"DELETE"`)
	s.Contains(lines[1], `"audit"`)
	s.Contains(lines[1], `"cleanup"`)
	// embedded quotes are doubled inside the quoted cell
	s.Contains(lines[1], `clear \""all\""`)
}

func (s *BundlePublicTestSuite) TestExportLogsEmptyLog() {
	bundle, err := s.store.ExportLogs(s.ctx, audit.FormatJSON)
	s.Require().NoError(err)
	s.JSONEq(`[]`, string(bundle.Content))

	bundle, err = s.store.ExportLogs(s.ctx, audit.FormatCSV)
	s.Require().NoError(err)

	lines := strings.Split(strings.TrimRight(string(bundle.Content), "\n"), "\n")
	s.Len(lines, 1) // header only
}

func (s *BundlePublicTestSuite) TestExportLogsUnsupportedFormat() {
	bundle, err := s.store.ExportLogs(s.ctx, "xml")

	s.Nil(bundle)

	var fErr *audit.UnsupportedFormatError
	s.Require().ErrorAs(err, &fErr)
	s.Equal("xml", fErr.Format)
}

func TestBundlePublicTestSuite(t *testing.T) {
	suite.Run(t, new(BundlePublicTestSuite))
}
