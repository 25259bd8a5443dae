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

// Package health provides health check API handlers.
package health

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// BackendNamer reports which persistence backend is serving the store.
type BackendNamer interface {
	BackendName() string
}

// Health handles health check API requests.
type Health struct {
	logger    *slog.Logger
	store     BackendNamer
	startTime time.Time
	version   string
}

// Response is the body returned by GET /health.
type Response struct {
	// Status is "ok" while the process is serving.
	Status string `json:"status"`
	// Backend is the persistence backend currently in use.
	Backend string `json:"backend"`
	// UptimeSeconds is seconds elapsed since process start.
	UptimeSeconds int64 `json:"uptimeSeconds"`
	// Version is the running release, when known.
	Version string `json:"version,omitempty"`
}

// New factory to create a new instance.
func New(
	logger *slog.Logger,
	store BackendNamer,
	startTime time.Time,
	version string,
) *Health {
	return &Health{
		logger:    logger,
		store:     store,
		startTime: startTime,
		version:   version,
	}
}

// Register wires the health route into the Echo instance.
func (h *Health) Register(
	e *echo.Echo,
) {
	e.GET("/health", h.GetHealth)
}

// GetHealth reports liveness and the serving backend.
func (h *Health) GetHealth(
	c echo.Context,
) error {
	return c.JSON(http.StatusOK, Response{
		Status:        "ok",
		Backend:       h.store.BackendName(),
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
		Version:       h.version,
	})
}
