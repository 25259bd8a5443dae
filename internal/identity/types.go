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

// Package identity verifies signer credentials for destructive operations.
package identity

import (
	"context"
	"errors"
)

// ErrInvalidCredentials is returned when a username/secret pair cannot be
// verified. Unknown users and wrong secrets are deliberately not
// distinguished.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Verifier re-checks a signer's identity inside a sensitive-action flow,
// independent of whatever primary session the caller already holds.
// Implementations must be side-effect-free with respect to ambient sessions.
type Verifier interface {
	// Verify checks the username/secret pair, returning
	// ErrInvalidCredentials (possibly wrapped) on failure.
	Verify(ctx context.Context, username string, secret string) error
}
