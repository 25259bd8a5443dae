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

// Package signature binds signer identity, motive, and time into a
// non-repudiation payload for destructive operations.
package signature

// Payload is a non-repudiation record created fresh per signing event.
// It is never persisted on its own; callers embed it in the details of the
// audit entry that records the action it authorized.
type Payload struct {
	// SignerID is the identity the payload is bound to.
	SignerID string `json:"signerId"`
	// ISOTimestamp is the signing instant in RFC 3339 form.
	ISOTimestamp string `json:"isoTimestamp"`
	// SignatureHash is the hex SHA-256 digest binding signer, motive,
	// and time. It makes tampering evident, not forgery impossible:
	// anyone holding the tuple can recompute it. Authenticity comes from
	// the credential verification performed before signing.
	SignatureHash string `json:"signatureHash"`
	// Reason is the signer's stated motive.
	Reason string `json:"reason"`
	// Comment is optional free-text context.
	Comment string `json:"comment,omitempty"`
}
