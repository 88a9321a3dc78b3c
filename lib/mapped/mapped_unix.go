// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build darwin || linux

package mapped

import (
	"fmt"

	"golang.org/x/sys/unix"
)

const mapSupported = true

// Open memory-maps the regular file at path read-only. The descriptor
// is closed once the mapping exists; the mapping keeps the file alive.
// An empty file yields an empty, unmapped File.
func Open(path string) (*File, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer unix.Close(fd)

	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		return nil, fmt.Errorf("stating %s: %w", path, err)
	}
	if stat.Mode&unix.S_IFMT != unix.S_IFREG {
		return nil, fmt.Errorf("%s is not a regular file", path)
	}
	if stat.Size == 0 {
		return &File{path: path, data: []byte{}}, nil
	}

	data, err := unix.Mmap(fd, 0, int(stat.Size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("memory-mapping %s: %w", path, err)
	}
	// Encoding and comparing read front to back.
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)

	return &File{path: path, data: data, mapped: true}, nil
}

func unmap(data []byte) error {
	return unix.Munmap(data)
}
