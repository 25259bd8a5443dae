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
	"errors"
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/retr0h/audittrail/internal/store"
	"github.com/retr0h/audittrail/internal/store/mocks"
)

type ProbePublicTestSuite struct {
	suite.Suite

	ctx      context.Context
	mockCtrl *gomock.Controller
	backend  *mocks.MockBackend
}

func (s *ProbePublicTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.backend = mocks.NewMockBackend(s.mockCtrl)
}

func (s *ProbePublicTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ProbePublicTestSuite) TestProbe() {
	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "when sentinel write and delete succeed",
			setupMock: func() {
				s.backend.EXPECT().Set(s.ctx, gomock.Any(), gomock.Any()).Return(nil)
				s.backend.EXPECT().Remove(s.ctx, gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "when sentinel write fails",
			setupMock: func() {
				s.backend.EXPECT().
					Set(s.ctx, gomock.Any(), gomock.Any()).
					Return(errors.New("disk full"))
			},
			wantErr: true,
		},
		{
			name: "when sentinel delete fails",
			setupMock: func() {
				s.backend.EXPECT().Set(s.ctx, gomock.Any(), gomock.Any()).Return(nil)
				s.backend.EXPECT().
					Remove(s.ctx, gomock.Any()).
					Return(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			tt.setupMock()

			err := store.Probe(s.ctx, s.backend)

			if tt.wantErr {
				s.Error(err)
			} else {
				s.NoError(err)
			}
		})
	}
}

func (s *ProbePublicTestSuite) TestSelectReturnsDurableBackend() {
	s.backend.EXPECT().Set(s.ctx, gomock.Any(), gomock.Any()).Return(nil)
	s.backend.EXPECT().Remove(s.ctx, gomock.Any()).Return(nil)

	selected := store.Select(s.ctx, slog.Default(), s.backend)

	s.Same(s.backend, selected)
}

func (s *ProbePublicTestSuite) TestSelectFallsBackOnProbeFailure() {
	s.backend.EXPECT().
		Set(s.ctx, gomock.Any(), gomock.Any()).
		Return(errors.New("unreachable"))
	s.backend.EXPECT().Name().Return("nats").AnyTimes()

	selected := store.Select(s.ctx, slog.Default(), s.backend)

	s.Equal("memory", selected.Name())
}

func (s *ProbePublicTestSuite) TestSelectWithNilDurable() {
	selected := store.Select(s.ctx, slog.Default(), nil)

	s.Equal("memory", selected.Name())
}

func TestProbePublicTestSuite(t *testing.T) {
	suite.Run(t, new(ProbePublicTestSuite))
}
