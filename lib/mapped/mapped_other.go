// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !(darwin || linux)

package mapped

import (
	"fmt"
	"os"
)

const mapSupported = false

// Open reads the file at path. This platform has no mapping support.
func Open(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if data == nil {
		data = []byte{}
	}
	return &File{path: path, data: data}, nil
}

func unmap([]byte) error {
	return nil
}
