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
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	auditstore "github.com/retr0h/audittrail/internal/audit"
)

// ExportAuditLogs streams the full audit trail in the requested format.
func (a *Audit) ExportAuditLogs(
	c echo.Context,
) error {
	format := c.QueryParam("format")
	if format == "" {
		format = auditstore.FormatJSON
	}

	bundle, err := a.store.ExportLogs(c.Request().Context(), format)
	if err != nil {
		var formatErr *auditstore.UnsupportedFormatError
		if errors.As(err, &formatErr) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: formatErr.Error(),
				Field: "format",
			})
		}

		a.logger.Error(
			"failed to export audit log",
			slog.String("error", err.Error()),
			slog.String("format", format),
		)

		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to export audit log",
		})
	}

	c.Response().Header().Set(
		echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", bundle.Filename),
	)

	return c.Blob(http.StatusOK, bundle.MimeType, bundle.Content)
}
