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
	"slices"
	"strings"
	"time"
)

// DefaultPageSize is the page size applied when none is requested.
const DefaultPageSize = 20

// Query selects and pages audit entries. All filters are combined with a
// logical AND; zero values mean "no constraint".
type Query struct {
	// Page is the 1-based page number; coerced to >= 1.
	Page int
	// PageSize is the number of items per page; coerced to >= 1.
	PageSize int
	// UserIDs matches entries whose userId is in the set.
	UserIDs []string
	// Actions matches entries whose actionType is in the set.
	Actions []Action
	// Entities matches entries whose entity is in the set.
	Entities []string
	// CorrelationID matches exactly.
	CorrelationID string
	// From is the inclusive lower timestamp bound.
	From *time.Time
	// To is the inclusive upper timestamp bound.
	To *time.Time
	// Text is a case-insensitive substring matched against the entry's
	// full serialized form.
	Text string
}

// Page is one page of a filtered query, with totals computed over the
// filtered set rather than the raw log.
type Page struct {
	// Items are the entries on this page, newest first.
	Items []Entry `json:"items"`
	// Total is the filtered entry count.
	Total int `json:"total"`
	// Page is the served 1-based page number.
	Page int `json:"page"`
	// PageSize is the served page size.
	PageSize int `json:"pageSize"`
	// TotalPages is always >= 1, even when Total is 0.
	TotalPages int `json:"totalPages"`
}

// GetLogs serves a filtered, paginated view of the log, newest first.
// Requesting a page beyond the last yields empty items without error.
func (s *Store) GetLogs(
	ctx context.Context,
	query Query,
) (*Page, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}

	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	entries := s.loadLog(ctx)
	slices.Reverse(entries)

	filtered := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if query.matches(entry) {
			filtered = append(filtered, entry)
		}
	}

	total := len(filtered)

	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}

	end := start + pageSize
	if end > total {
		end = total
	}

	return &Page{
		Items:      filtered[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// GetLog retrieves a single entry by ID, or ErrEntryNotFound.
func (s *Store) GetLog(
	ctx context.Context,
	id string,
) (*Entry, error) {
	for _, entry := range s.loadLog(ctx) {
		if entry.ID == id {
			return &entry, nil
		}
	}

	return nil, ErrEntryNotFound
}

// Fetch pages through the unfiltered log newest first. It satisfies the
// export pipeline's fetcher contract.
func (s *Store) Fetch(
	ctx context.Context,
	limit int,
	offset int,
) ([]Entry, int, error) {
	if limit < 1 {
		limit = DefaultPageSize
	}

	page, err := s.GetLogs(ctx, Query{Page: offset/limit + 1, PageSize: limit})
	if err != nil {
		return nil, 0, err
	}

	return page.Items, page.Total, nil
}

// matches reports whether entry passes every configured filter.
func (q Query) matches(
	entry Entry,
) bool {
	if len(q.UserIDs) > 0 && !slices.Contains(q.UserIDs, entry.UserID) {
		return false
	}

	if len(q.Actions) > 0 && !slices.Contains(q.Actions, entry.Action) {
		return false
	}

	if len(q.Entities) > 0 && !slices.Contains(q.Entities, entry.Entity) {
		return false
	}

	if q.CorrelationID != "" && entry.CorrelationID != q.CorrelationID {
		return false
	}

	if q.From != nil && entry.Timestamp.Before(*q.From) {
		return false
	}

	if q.To != nil && entry.Timestamp.After(*q.To) {
		return false
	}

	if q.Text != "" {
		serialized, err := json.Marshal(entry)
		if err != nil {
			return false
		}

		if !strings.Contains(
			strings.ToLower(string(serialized)),
			strings.ToLower(q.Text),
		) {
			return false
		}
	}

	return true
}
