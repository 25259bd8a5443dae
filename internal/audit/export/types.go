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

package export

import (
	"context"

	"github.com/retr0h/audittrail/internal/audit"
)

// Fetcher retrieves one page of audit entries, returning the page and the
// total entry count. audit.Store's Fetch method satisfies this contract.
type Fetcher func(ctx context.Context, limit int, offset int) ([]audit.Entry, int, error)

// Exporter receives fetched entries one at a time.
type Exporter interface {
	// Open prepares the destination for writing.
	Open(ctx context.Context) error
	// Write emits one audit entry.
	Write(ctx context.Context, entry audit.Entry) error
	// Close flushes and releases the destination.
	Close(ctx context.Context) error
}

// Result summarizes a completed export run.
type Result struct {
	// ExportedEntries is the number of entries written.
	ExportedEntries int
	// TotalEntries is the log size reported by the fetcher.
	TotalEntries int
}
