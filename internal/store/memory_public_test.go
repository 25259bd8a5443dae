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

package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/audittrail/internal/store"
)

type MemoryPublicTestSuite struct {
	suite.Suite

	ctx context.Context
}

func (s *MemoryPublicTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *MemoryPublicTestSuite) TestRoundTrip() {
	m := store.NewMemory()

	s.Require().NoError(m.Set(s.ctx, "auditTrail", []byte(`[]`)))

	got, err := m.Get(s.ctx, "auditTrail")
	s.Require().NoError(err)
	s.Equal([]byte(`[]`), got)
}

func (s *MemoryPublicTestSuite) TestGetMissingKey() {
	m := store.NewMemory()

	_, err := m.Get(s.ctx, "absent")
	s.Require().ErrorIs(err, store.ErrKeyNotFound)
}

func (s *MemoryPublicTestSuite) TestStoredValueIsCopied() {
	m := store.NewMemory()

	value := []byte("original")
	s.Require().NoError(m.Set(s.ctx, "k", value))
	value[0] = 'X'

	got, err := m.Get(s.ctx, "k")
	s.Require().NoError(err)
	s.Equal([]byte("original"), got)

	// Mutating the returned slice must not corrupt stored state either.
	got[0] = 'Y'

	again, err := m.Get(s.ctx, "k")
	s.Require().NoError(err)
	s.Equal([]byte("original"), again)
}

func (s *MemoryPublicTestSuite) TestRemove() {
	m := store.NewMemory()

	s.Require().NoError(m.Set(s.ctx, "k", []byte("v")))
	s.Require().NoError(m.Remove(s.ctx, "k"))

	_, err := m.Get(s.ctx, "k")
	s.Require().ErrorIs(err, store.ErrKeyNotFound)

	// Removing an absent key is not an error.
	s.NoError(m.Remove(s.ctx, "k"))
}

func (s *MemoryPublicTestSuite) TestName() {
	s.Equal("memory", store.NewMemory().Name())
}

func TestMemoryPublicTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryPublicTestSuite))
}
