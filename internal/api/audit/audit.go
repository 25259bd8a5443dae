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

// Package audit provides audit trail API handlers.
package audit

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	auditstore "github.com/retr0h/audittrail/internal/audit"
	"github.com/retr0h/audittrail/internal/signature"
)

// Audit handles all audit trail API requests.
type Audit struct {
	logger *slog.Logger
	store  *auditstore.Store
	binder *signature.Binder
}

// New factory to create a new instance.
func New(
	logger *slog.Logger,
	store *auditstore.Store,
	binder *signature.Binder,
) *Audit {
	return &Audit{
		logger: logger,
		store:  store,
		binder: binder,
	}
}

// Register wires the audit routes into the Echo instance.
func (a *Audit) Register(
	e *echo.Echo,
) {
	g := e.Group("/audit")
	g.POST("/logs", a.CreateAuditLog)
	g.GET("/logs", a.GetAuditLogs)
	g.GET("/logs/:id", a.GetAuditLogByID)
	g.GET("/export", a.ExportAuditLogs)
	g.DELETE("/logs", a.ClearAuditLogs)
}
