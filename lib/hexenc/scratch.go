// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hexenc

import (
	"math/bits"
	"sync"
	"unsafe"
)

const (
	// stackScratchSize is the largest output built in a local array.
	// It covers the default threshold including the prefix unit.
	stackScratchSize = 2 * (DefaultThreshold + 1)

	// Pooled scratch classes are powers of two from 8 KiB to 1 MiB.
	minPooledShift = 13
	maxPooledShift = 20
)

// scratchPools holds *[]byte buffers, one pool per size class.
var scratchPools [maxPooledShift - minPooledShift + 1]sync.Pool

func init() {
	for class := range scratchPools {
		size := 1 << (minPooledShift + class)
		scratchPools[class].New = func() any {
			buffer := make([]byte, size)
			return &buffer
		}
	}
}

// sizeClass returns the pool index holding buffers of at least size
// bytes, or -1 when size exceeds the largest class.
func sizeClass(size int) int {
	if size > 1<<maxPooledShift {
		return -1
	}
	shift := bits.Len(uint(size - 1))
	if shift < minPooledShift {
		shift = minPooledShift
	}
	return shift - minPooledShift
}

// encodeTransient builds the output in scratch that does not outlive
// the call and returns a copy of it.
func encodeTransient(src []byte, size int, prefix bool, digits *table) string {
	if size <= stackScratchSize {
		var stack [stackScratchSize]byte
		scratch := stack[:size]
		encodeInto(scratch, src, prefix, digits)
		return string(scratch)
	}

	class := sizeClass(size)
	if class < 0 {
		// Beyond the largest class (only reachable with a raised
		// threshold). The scratch is dropped after the copy.
		scratch := make([]byte, size)
		encodeInto(scratch, src, prefix, digits)
		return string(scratch)
	}

	pooled := scratchPools[class].Get().(*[]byte)
	scratch := (*pooled)[:size]
	encodeInto(scratch, src, prefix, digits)
	result := string(scratch)
	scratchPools[class].Put(pooled)
	return result
}

// encodeHeap builds the output in a fresh buffer that becomes the
// result string. The buffer is never written again after conversion.
func encodeHeap(src []byte, size int, prefix bool, digits *table) string {
	buffer := make([]byte, size)
	encodeInto(buffer, src, prefix, digits)
	return unsafe.String(unsafe.SliceData(buffer), size)
}
