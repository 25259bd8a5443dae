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

package identity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ensure StaticVerifier implements Verifier at compile time.
var _ Verifier = (*StaticVerifier)(nil)

// StaticVerifier verifies credentials against a config-provided table of
// username to bcrypt-hash pairs. It exists so standalone deployments can
// exercise the signing flow; anything real substitutes its own Verifier.
type StaticVerifier struct {
	hashes map[string]string
	logger *slog.Logger
}

// NewStaticVerifier creates a new StaticVerifier over a username to
// bcrypt-hash table.
func NewStaticVerifier(
	logger *slog.Logger,
	hashes map[string]string,
) *StaticVerifier {
	return &StaticVerifier{
		hashes: hashes,
		logger: logger,
	}
}

// Verify checks the secret against the stored bcrypt hash for username.
func (v *StaticVerifier) Verify(
	_ context.Context,
	username string,
	secret string,
) error {
	hash, ok := v.hashes[strings.TrimSpace(username)]
	if !ok {
		v.logger.Debug(
			"credential check for unknown signer",
			slog.String("username", username),
		)

		return fmt.Errorf("verify signer %q: %w", username, ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)); err != nil {
		return fmt.Errorf("verify signer %q: %w", username, ErrInvalidCredentials)
	}

	return nil
}
