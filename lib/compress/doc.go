// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package compress decompresses input buffers before they are encoded
// or compared, so commands can operate on the original bytes of a
// compressed blob.
//
// Two frame formats are supported:
//
//   - zstd (RFC 8878), magic 28 B5 2F FD
//   - LZ4 frame, magic 04 22 4D 18
//
// [FormatAuto] sniffs the magic number with [Detect] and passes
// unrecognized data through unchanged. [FormatNone] always passes data
// through without copying.
//
// Decompressed output is capped at [MaxDecompressedSize]; larger output
// is an error rather than an unbounded allocation.
package compress
