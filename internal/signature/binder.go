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

package signature

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/retr0h/audittrail/internal/identity"
)

// nowFn is the function used to read the clock. Override in tests.
var nowFn = time.Now

// Binder creates signature payloads and re-checks signer credentials.
type Binder struct {
	verifier identity.Verifier
	logger   *slog.Logger
}

// New creates a new Binder delegating credential checks to verifier.
func New(
	logger *slog.Logger,
	verifier identity.Verifier,
) *Binder {
	return &Binder{
		verifier: verifier,
		logger:   logger,
	}
}

// CreatePayload derives a payload binding userID, reason, and comment to
// the current instant. Identical inputs at the same instant produce an
// identical hash; changing any component changes it.
func (b *Binder) CreatePayload(
	userID string,
	reason string,
	comment string,
) (*Payload, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("create signature payload: userID must not be blank")
	}

	ts := nowFn().UTC().Format(time.RFC3339)

	return &Payload{
		SignerID:      userID,
		ISOTimestamp:  ts,
		SignatureHash: bindHash(userID, reason, comment, ts),
		Reason:        reason,
		Comment:       comment,
	}, nil
}

// VerifyCredentials re-checks the signer's identity via the configured
// Verifier. It holds no session state of its own, so repeated calls are
// side-effect-free.
func (b *Binder) VerifyCredentials(
	ctx context.Context,
	username string,
	secret string,
) error {
	if err := b.verifier.Verify(ctx, username, secret); err != nil {
		return fmt.Errorf("verify credentials: %w", err)
	}

	return nil
}

// bindHash digests the ordered (signerId, reason, comment, timestamp)
// tuple. Components are length-prefixed so no two tuples share an
// encoding.
func bindHash(
	signerID string,
	reason string,
	comment string,
	isoTimestamp string,
) string {
	h := sha256.New()
	for _, part := range []string{signerID, reason, comment, isoTimestamp} {
		fmt.Fprintf(h, "%d:%s", len(part), part)
	}

	return hex.EncodeToString(h.Sum(nil))
}
