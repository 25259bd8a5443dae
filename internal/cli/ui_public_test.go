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

package cli_test

import (
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/audittrail/internal/cli"
)

type UITestSuite struct {
	suite.Suite
}

func captureStdout(
	fn func(),
) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	_ = w.Close()
	out, _ := io.ReadAll(r)
	os.Stdout = old

	return string(out)
}

func (suite *UITestSuite) TestPrintKV() {
	tests := []struct {
		name       string
		pairs      []string
		wantOutput bool
	}{
		{
			name:       "when valid pairs prints output",
			pairs:      []string{"Cleared", "42"},
			wantOutput: true,
		},
		{
			name:       "when multiple pairs prints all",
			pairs:      []string{"Signer", "admin", "Status", "ok"},
			wantOutput: true,
		},
		{
			name:       "when odd number of pairs prints nothing",
			pairs:      []string{"Cleared"},
			wantOutput: false,
		},
		{
			name:       "when empty prints nothing",
			pairs:      []string{},
			wantOutput: false,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			output := captureStdout(func() {
				cli.PrintKV(tc.pairs...)
			})

			if tc.wantOutput {
				suite.NotEmpty(output)
			} else {
				suite.Empty(output)
			}
		})
	}
}

func (suite *UITestSuite) TestPrintCompactTable() {
	tests := []struct {
		name     string
		sections []cli.Section
		contains []string
	}{
		{
			name: "when rows present renders headers and cells",
			sections: []cli.Section{
				{
					Title:   "Audit Entries",
					Headers: []string{"id", "user"},
					Rows:    [][]string{{"abc-123", "alice@example.com"}},
				},
			},
			contains: []string{"Audit Entries", "ID", "USER", "abc-123", "alice@example.com"},
		},
		{
			name: "when cell is multi-line it is flattened",
			sections: []cli.Section{
				{
					Headers: []string{"reason"},
					Rows:    [][]string{{"cleanup\nafter migration"}},
				},
			},
			contains: []string{"cleanup after migration"},
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			output := captureStdout(func() {
				cli.PrintCompactTable(tc.sections)
			})

			for _, want := range tc.contains {
				suite.Contains(output, want)
			}
		})
	}
}

func (suite *UITestSuite) TestFormatAge() {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{
			name: "when zero returns empty",
			d:    0,
			want: "",
		},
		{
			name: "when seconds only",
			d:    30 * time.Second,
			want: "30s",
		},
		{
			name: "when minutes only",
			d:    45 * time.Minute,
			want: "45m",
		},
		{
			name: "when hours and minutes",
			d:    12*time.Hour + 30*time.Minute,
			want: "12h 30m",
		},
		{
			name: "when days and hours",
			d:    3*24*time.Hour + 4*time.Hour,
			want: "3d 4h",
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			suite.Equal(tc.want, cli.FormatAge(tc.d))
		})
	}
}

func (suite *UITestSuite) TestFormatBytes() {
	tests := []struct {
		name string
		b    int
		want string
	}{
		{
			name: "when below a kilobyte",
			b:    512,
			want: "512 B",
		},
		{
			name: "when kilobytes",
			b:    5325,
			want: "5.2 KB",
		},
		{
			name: "when megabytes",
			b:    1024 * 1024,
			want: "1.0 MB",
		},
		{
			name: "when gigabytes",
			b:    2 * 1024 * 1024 * 1024,
			want: "2.0 GB",
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			suite.Equal(tc.want, cli.FormatBytes(tc.b))
		})
	}
}

func TestUITestSuite(t *testing.T) {
	suite.Run(t, new(UITestSuite))
}
