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
	"strings"

	"github.com/labstack/echo/v4"

	auditstore "github.com/retr0h/audittrail/internal/audit"
	"github.com/retr0h/audittrail/internal/identity"
)

// ClearAuditLogs discards every entry after verifying the countersigning
// admin's credentials. The clear itself is the first entry of the fresh
// log, carrying the signature payload that authorized it.
func (a *Audit) ClearAuditLogs(
	c echo.Context,
) error {
	var req ClearLogsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	if strings.TrimSpace(req.Username) == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "username must not be blank",
			Field: "username",
		})
	}

	if strings.TrimSpace(req.Password) == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "password must not be blank",
			Field: "password",
		})
	}

	if strings.TrimSpace(req.Reason) == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "reason must not be blank",
			Field: "reason",
		})
	}

	ctx := c.Request().Context()

	if err := a.binder.VerifyCredentials(ctx, req.Username, req.Password); err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			a.store.RecordError(ctx, err, auditstore.ErrorContext{
				Name:   "clearAuthorizationFailed",
				UserID: req.Username,
			})

			return c.JSON(http.StatusUnauthorized, ErrorResponse{
				Error: "invalid credentials",
			})
		}

		a.logger.Error(
			"failed to verify credentials",
			slog.String("error", err.Error()),
		)

		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to verify credentials",
		})
	}

	payload, err := a.binder.CreatePayload(req.Username, req.Reason, req.Comment)
	if err != nil {
		a.logger.Error(
			"failed to create signature payload",
			slog.String("error", err.Error()),
		)

		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to create signature payload",
		})
	}

	result, err := a.store.ClearLogs(ctx, auditstore.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		var validationErr *auditstore.ValidationError
		if errors.As(err, &validationErr) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: validationErr.Error(),
				Field: validationErr.Field,
			})
		}

		a.logger.Error(
			"failed to clear audit log",
			slog.String("error", err.Error()),
		)

		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to clear audit log",
		})
	}

	if _, err := a.store.LogAction(
		ctx,
		req.Username,
		auditstore.ActionDelete,
		"audit",
		auditstore.LogClearDetails{
			Signature:      *payload,
			EntriesCleared: result.Cleared,
		},
		auditstore.Options{Reason: req.Reason},
	); err != nil {
		a.logger.Error(
			"failed to record audit log clear",
			slog.String("error", err.Error()),
		)
	}

	return c.JSON(http.StatusOK, ClearLogsResponse{
		Cleared:   result.Cleared,
		Timestamp: result.Timestamp,
		Signature: *payload,
	})
}
