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
	"encoding/json"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/retr0h/audittrail/internal/signature"
)

// Identity headers trusted from the caller.
const (
	HeaderUser  = "X-Audit-User"
	HeaderRoles = "X-Audit-Roles"
)

// Context key constants the identity middleware populates.
const (
	ContextKeyUser  = "identity.user"
	ContextKeyRoles = "identity.roles"
)

// UserFromContext returns the caller identity established by the identity
// middleware, or the empty string when none was supplied.
func UserFromContext(
	c echo.Context,
) string {
	if user, ok := c.Get(ContextKeyUser).(string); ok {
		return user
	}

	return ""
}

// ErrorResponse is the JSON error body returned by every audit endpoint.
type ErrorResponse struct {
	// Error is a human-readable failure description.
	Error string `json:"error"`
	// Field names the offending request field for validation failures.
	Field string `json:"field,omitempty"`
}

// CreateLogRequest is the body of POST /audit/logs.
type CreateLogRequest struct {
	// UserID is the acting identity. Falls back to the identity header
	// when omitted.
	UserID string `json:"userId"`
	// Action is one of CREATE, READ, UPDATE, or DELETE.
	Action string `json:"actionType"`
	// Entity is the resource type acted upon.
	Entity string `json:"entity"`
	// Reason is the stated motive, required for DELETE actions.
	Reason string `json:"reason,omitempty"`
	// CorrelationID groups related entries; generated when omitted.
	CorrelationID string `json:"correlationId,omitempty"`
	// Details is the action-specific payload.
	Details json.RawMessage `json:"details,omitempty"`
	// Before is the pre-action state snapshot.
	Before json.RawMessage `json:"before,omitempty"`
	// After is the post-action state snapshot.
	After json.RawMessage `json:"after,omitempty"`
	// Metadata holds caller-supplied context merged over the ambient
	// defaults.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// ClearLogsRequest is the body of DELETE /audit/logs.
type ClearLogsRequest struct {
	// Username of the countersigning admin.
	Username string `json:"username"`
	// Password of the countersigning admin.
	Password string `json:"password"`
	// Reason is the stated motive for clearing the log.
	Reason string `json:"reason"`
	// Comment is optional free-text context.
	Comment string `json:"comment,omitempty"`
}

// ClearLogsResponse is the body returned by DELETE /audit/logs.
type ClearLogsResponse struct {
	// Cleared is the number of entries discarded.
	Cleared int `json:"cleared"`
	// Timestamp is the instant the clear took effect.
	Timestamp time.Time `json:"timestamp"`
	// Signature is the non-repudiation payload bound to the clear.
	Signature signature.Payload `json:"signature"`
}
