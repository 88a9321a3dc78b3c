// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bufcmp

import (
	"encoding/binary"
	"unsafe"
)

// wideEqual scans same-length, non-empty buffers. Tests wrap it to
// verify which inputs reach the content scan.
var wideEqual = equalWords

// Equal reports whether a and b hold the same bytes, treating nil as a
// value distinct from an empty buffer. See the package documentation
// for the exact rules.
func Equal(a, b []byte) bool {
	if sameStorage(a, b) {
		return true
	}
	if (a == nil) != (b == nil) {
		return false
	}
	if a == nil {
		return true
	}
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return wideEqual(a, b)
}

// sameStorage reports whether a and b are the same view of the same
// backing array.
func sameStorage(a, b []byte) bool {
	return len(a) == len(b) && unsafe.SliceData(a) == unsafe.SliceData(b)
}

// equalWords compares len(a) bytes of a and b, which must have equal
// length, as 32-bit words followed by the trailing bytes.
func equalWords(a, b []byte) bool {
	length := len(a)
	b = b[:length]

	offset := 0
	for words := length >> 2; words > 0; words-- {
		if binary.LittleEndian.Uint32(a[offset:]) != binary.LittleEndian.Uint32(b[offset:]) {
			return false
		}
		offset += 4
	}

	for remaining := length & 3; remaining > 0; remaining-- {
		if a[offset] != b[offset] {
			return false
		}
		offset++
	}
	return true
}
