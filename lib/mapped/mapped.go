// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mapped

import (
	"fmt"
	"os"
	"runtime/debug"
)

// DefaultMinMapSize is the file size at which [ReadFile] switches from
// reading to mapping.
const DefaultMinMapSize = 64 * 1024

// File is the loaded contents of a file.
type File struct {
	path   string
	data   []byte
	mapped bool
}

// ReadFile loads path, mapping it when it is a regular file of at least
// minMapSize bytes and the platform supports mapping. A minMapSize of
// zero or less maps every non-empty regular file.
func ReadFile(path string, minMapSize int64) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if info.Mode().IsRegular() && info.Size() > 0 && info.Size() >= minMapSize && mapSupported {
		return Open(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if data == nil {
		data = []byte{}
	}
	return &File{path: path, data: data}, nil
}

// Bytes returns the file contents. The slice is read-only and valid
// until Close.
func (f *File) Bytes() []byte {
	return f.data
}

// Mapped reports whether the contents are memory mapped.
func (f *File) Mapped() bool {
	return f.mapped
}

// Use calls fn with the file contents. A page fault while fn runs (the
// file was truncated underneath the mapping, or the storage failed) is
// returned as an error.
func (f *File) Use(fn func(data []byte) error) (err error) {
	if !f.mapped {
		return fn(f.data)
	}

	old := debug.SetPanicOnFault(true)
	defer func() {
		debug.SetPanicOnFault(old)
		if r := recover(); r != nil {
			err = fmt.Errorf("page fault reading mapped file %s: %v", f.path, r)
		}
	}()
	return fn(f.data)
}

// Close releases the mapping, if any. Bytes must not be used afterwards.
func (f *File) Close() error {
	if !f.mapped {
		f.data = nil
		return nil
	}
	err := unmap(f.data)
	f.data = nil
	f.mapped = false
	if err != nil {
		return fmt.Errorf("unmapping %s: %w", f.path, err)
	}
	return nil
}
