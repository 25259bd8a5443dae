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
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	auditstore "github.com/retr0h/audittrail/internal/audit"
)

// GetAuditLogs returns a filtered, paginated view of the audit trail.
func (a *Audit) GetAuditLogs(
	c echo.Context,
) error {
	query, errResp := parseQuery(c)
	if errResp != nil {
		return c.JSON(http.StatusBadRequest, *errResp)
	}

	page, err := a.store.GetLogs(c.Request().Context(), *query)
	if err != nil {
		a.logger.Error(
			"failed to list audit entries",
			slog.String("error", err.Error()),
		)

		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list audit entries",
		})
	}

	return c.JSON(http.StatusOK, page)
}

// parseQuery maps list query parameters onto a store query. It returns an
// error response describing the first invalid parameter.
func parseQuery(
	c echo.Context,
) (*auditstore.Query, *ErrorResponse) {
	query := &auditstore.Query{
		CorrelationID: c.QueryParam("correlation_id"),
		Text:          c.QueryParam("q"),
	}

	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &ErrorResponse{Error: "page must be an integer", Field: "page"}
		}
		query.Page = page
	}

	if raw := c.QueryParam("page_size"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &ErrorResponse{Error: "page_size must be an integer", Field: "page_size"}
		}
		query.PageSize = pageSize
	}

	if userIDs, ok := c.QueryParams()["user_id"]; ok {
		query.UserIDs = userIDs
	}

	if actions, ok := c.QueryParams()["action_type"]; ok {
		for _, raw := range actions {
			action := auditstore.Action(raw)
			if !action.Valid() {
				return nil, &ErrorResponse{
					Error: fmt.Sprintf("%q is not one of CREATE, READ, UPDATE, DELETE", raw),
					Field: "action_type",
				}
			}
			query.Actions = append(query.Actions, action)
		}
	}

	if entities, ok := c.QueryParams()["entity"]; ok {
		query.Entities = entities
	}

	if raw := c.QueryParam("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, &ErrorResponse{Error: "from must be an RFC 3339 timestamp", Field: "from"}
		}
		query.From = &from
	}

	if raw := c.QueryParam("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, &ErrorResponse{Error: "to must be an RFC 3339 timestamp", Field: "to"}
		}
		query.To = &to
	}

	return query, nil
}
