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
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/retr0h/audittrail/internal/audit"
	"github.com/retr0h/audittrail/internal/config"
	"github.com/retr0h/audittrail/internal/signature"
)

// Server wraps an Echo instance serving the audit trail API.
type Server struct {
	Echo *echo.Echo

	logger         *slog.Logger
	appConfig      config.Config
	auditStore     *audit.Store
	binder         *signature.Binder
	metricsHandler http.Handler
	version        string
}

// Option configures the Server.
type Option func(*Server)

// WithAuditStore attaches the audit store serving the API.
func WithAuditStore(
	store *audit.Store,
) Option {
	return func(s *Server) {
		s.auditStore = store
	}
}

// WithBinder attaches the signature binder authorizing destructive
// operations.
func WithBinder(
	binder *signature.Binder,
) Option {
	return func(s *Server) {
		s.binder = binder
	}
}

// WithMetricsHandler mounts a Prometheus scrape handler.
func WithMetricsHandler(
	handler http.Handler,
) Option {
	return func(s *Server) {
		s.metricsHandler = handler
	}
}

// WithVersion sets the version string reported by the health endpoint.
func WithVersion(
	version string,
) Option {
	return func(s *Server) {
		s.version = version
	}
}
