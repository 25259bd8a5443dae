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
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	auditstore "github.com/retr0h/audittrail/internal/audit"
	"github.com/retr0h/audittrail/internal/telemetry"
)

// CreateAuditLog appends one entry to the audit trail.
func (a *Audit) CreateAuditLog(
	c echo.Context,
) error {
	var req CreateLogRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	userID := req.UserID
	if userID == "" {
		userID = UserFromContext(c)
	}

	ctx := c.Request().Context()
	action := auditstore.Action(req.Action)

	metadata := make(map[string]string, len(req.Metadata))
	for k, v := range req.Metadata {
		metadata[k] = v
	}
	telemetry.InjectTraceContext(ctx, metadata)

	entry, err := a.store.LogAction(
		ctx,
		userID,
		action,
		req.Entity,
		auditstore.DecodeDetails(req.Entity, action, req.Details),
		auditstore.Options{
			Reason:        req.Reason,
			Before:        req.Before,
			After:         req.After,
			CorrelationID: req.CorrelationID,
			Metadata:      metadata,
		},
	)
	if err != nil {
		var validationErr *auditstore.ValidationError
		if errors.As(err, &validationErr) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: validationErr.Error(),
				Field: validationErr.Field,
			})
		}

		a.logger.Error(
			"failed to append audit entry",
			slog.String("error", err.Error()),
		)

		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to append audit entry",
		})
	}

	return c.JSON(http.StatusCreated, entry)
}
