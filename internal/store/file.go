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

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// ensure File implements Backend at compile time.
var _ Backend = (*File)(nil)

// File is a durable backend storing one file per key under a directory.
type File struct {
	fs  afero.Fs
	dir string
}

// NewFile creates a new File backend rooted at dir.
func NewFile(
	fs afero.Fs,
	dir string,
) *File {
	return &File{
		fs:  fs,
		dir: dir,
	}
}

// Name identifies the backend in logs and health output.
func (f *File) Name() string { return "file" }

// Get returns the contents of the file stored for key.
func (f *File) Get(
	_ context.Context,
	key string,
) ([]byte, error) {
	data, err := afero.ReadFile(f.fs, f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrKeyNotFound
		}

		return nil, fmt.Errorf("read key file: %w", err)
	}

	return data, nil
}

// Set writes value to a temporary file and renames it into place so a
// crashed write never leaves a truncated document behind.
func (f *File) Set(
	_ context.Context,
	key string,
	value []byte,
) error {
	if err := f.fs.MkdirAll(f.dir, 0o750); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	path := f.path(key)
	tmp := path + ".tmp"

	if err := afero.WriteFile(f.fs, tmp, value, 0o600); err != nil {
		return fmt.Errorf("write key file: %w", err)
	}

	if err := f.fs.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename key file: %w", err)
	}

	return nil
}

// Remove deletes the file stored for key.
func (f *File) Remove(
	_ context.Context,
	key string,
) error {
	if err := f.fs.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove key file: %w", err)
	}

	return nil
}

// path maps a logical key to its file under the store directory.
func (f *File) path(
	key string,
) string {
	return filepath.Join(f.dir, key+".json")
}
