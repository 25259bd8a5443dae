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
	"fmt"
	"strings"
	"time"
)

// Export formats recognized by ExportLogs.
const (
	// FormatJSON exports a pretty-printed JSON array.
	FormatJSON = "json"
	// FormatCSV exports the fixed 11-column CSV layout.
	FormatCSV = "csv"
)

// csvHeader is the fixed column layout of CSV exports.
var csvHeader = []string{
	"id", "timestamp", "userId", "actionType", "entity", "reason",
	"correlationId", "details", "before", "after", "metadata",
}

// ExportBundle is one downloadable export of the full log.
type ExportBundle struct {
	// Filename embeds the UTC export timestamp.
	Filename string `json:"filename"`
	// MimeType is the bundle's content type.
	MimeType string `json:"mimeType"`
	// Content is the encoded log.
	Content []byte `json:"content"`
}

// ExportLogs encodes the full log in the requested format. Unknown
// formats fail with *UnsupportedFormatError.
func (s *Store) ExportLogs(
	ctx context.Context,
	format string,
) (*ExportBundle, error) {
	entries := s.loadLog(ctx)
	stamp := nowFn().UTC().Format("20060102T150405Z")

	switch format {
	case FormatJSON:
		content, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json export: %w", err)
		}

		return &ExportBundle{
			Filename: fmt.Sprintf("audit-trail-%s.json", stamp),
			MimeType: "application/json",
			Content:  content,
		}, nil
	case FormatCSV:
		return &ExportBundle{
			Filename: fmt.Sprintf("audit-trail-%s.csv", stamp),
			MimeType: "text/csv",
			Content:  encodeCSV(entries),
		}, nil
	default:
		return nil, &UnsupportedFormatError{Format: format}
	}
}

// encodeCSV renders the fixed 11-column layout. Every cell is quoted,
// embedded quotes are doubled, and nested structures are JSON-encoded
// inside the cell.
func encodeCSV(
	entries []Entry,
) []byte {
	var b strings.Builder

	writeCSVRow(&b, csvHeader)

	for _, entry := range entries {
		writeCSVRow(&b, []string{
			entry.ID,
			entry.Timestamp.UTC().Format(time.RFC3339),
			entry.UserID,
			string(entry.Action),
			entry.Entity,
			entry.Reason,
			entry.CorrelationID,
			jsonCell(entry.Details),
			rawCell(entry.Before),
			rawCell(entry.After),
			jsonCell(entry.Metadata),
		})
	}

	return []byte(b.String())
}

// writeCSVRow writes one row with every cell double-quote-escaped.
func writeCSVRow(
	b *strings.Builder,
	cells []string,
) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}

		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		b.WriteByte('"')
	}

	b.WriteByte('\n')
}

// jsonCell serializes a nested structure for embedding in a CSV cell.
func jsonCell(
	v any,
) string {
	if v == nil {
		return ""
	}

	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}

	return string(data)
}

// rawCell renders an opaque snapshot for embedding in a CSV cell.
func rawCell(
	raw json.RawMessage,
) string {
	return string(raw)
}
