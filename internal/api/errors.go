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

package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	apiaudit "github.com/retr0h/audittrail/internal/api/audit"
	"github.com/retr0h/audittrail/internal/audit"
)

// errorHandler renders uncaught handler errors as JSON. Server-side
// failures additionally leave a diagnostic entry in the audit trail so
// faults are visible alongside the actions they interrupted.
func (s *Server) errorHandler(
	err error,
	c echo.Context,
) {
	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError && s.auditStore != nil {
		s.auditStore.RecordError(c.Request().Context(), err, audit.ErrorContext{
			Name:   "httpRequestFailed",
			UserID: apiaudit.UserFromContext(c),
			Extra: map[string]any{
				"method": c.Request().Method,
				"path":   c.Request().URL.Path,
			},
		})
	}

	if c.Response().Committed {
		return
	}

	if writeErr := c.JSON(code, apiaudit.ErrorResponse{Error: message}); writeErr != nil {
		s.logger.Error(
			"failed to write error response",
			slog.String("error", writeErr.Error()),
		)
	}
}
