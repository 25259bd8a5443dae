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

package audit_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	auditapi "github.com/retr0h/audittrail/internal/api/audit"
	auditstore "github.com/retr0h/audittrail/internal/audit"
	"github.com/retr0h/audittrail/internal/identity"
	"github.com/retr0h/audittrail/internal/signature"
	"github.com/retr0h/audittrail/internal/store"
)

// testHarness bundles a handler wired to a fresh in-memory store.
type testHarness struct {
	echo    *echo.Echo
	handler *auditapi.Audit
	store   *auditstore.Store
}

// newTestHarness creates an audit handler over an in-memory store with a
// single known admin ("admin" / "hunter2").
func newTestHarness() *testHarness {
	logger := slog.Default()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}

	verifier := identity.NewStaticVerifier(logger, map[string]string{
		"admin": string(hash),
	})

	auditStore := auditstore.New(logger, store.NewMemory())
	handler := auditapi.New(logger, auditStore, signature.New(logger, verifier))

	e := echo.New()
	handler.Register(e)

	return &testHarness{
		echo:    e,
		handler: handler,
		store:   auditStore,
	}
}

// newJSONRequest builds an httptest request with a JSON content type.
func newJSONRequest(
	method string,
	target string,
	body string,
) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

// newRecorder builds a fresh response recorder.
func newRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}

// do runs one request through the Echo router and returns the recorder.
func (h *testHarness) do(
	method string,
	target string,
	body string,
) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	h.echo.ServeHTTP(rec, req)

	return rec
}

// seed appends count entries for userID acting on entity.
func (h *testHarness) seed(
	userID string,
	entity string,
	count int,
) {
	for i := 0; i < count; i++ {
		_, err := h.store.LogAction(
			context.Background(),
			userID,
			auditstore.ActionCreate,
			entity,
			auditstore.CalculationDetails{Expression: "1+1", Result: "2"},
			auditstore.Options{},
		)
		if err != nil {
			panic(err)
		}
	}
}
