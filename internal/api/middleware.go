// Copyright (c) 2024 John Dewey

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
	"strings"

	"github.com/labstack/echo/v4"

	apiaudit "github.com/retr0h/audittrail/internal/api/audit"
)

// identityMiddleware lifts identity headers into the request context so
// handlers can attribute actions to the caller. Authentication happens at
// the deployment's edge; these headers carry the already-established
// identity through to audit attribution.
func identityMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if user := strings.TrimSpace(c.Request().Header.Get(apiaudit.HeaderUser)); user != "" {
				c.Set(apiaudit.ContextKeyUser, user)
			}

			if roles := strings.TrimSpace(c.Request().Header.Get(apiaudit.HeaderRoles)); roles != "" {
				parts := strings.Split(roles, ",")
				parsed := make([]string, 0, len(parts))
				for _, part := range parts {
					if trimmed := strings.TrimSpace(part); trimmed != "" {
						parsed = append(parsed, trimmed)
					}
				}
				c.Set(apiaudit.ContextKeyRoles, parsed)
			}

			return next(c)
		}
	}
}
