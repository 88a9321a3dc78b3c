// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package hexenc converts byte buffers to hexadecimal strings.
//
// The encoder is tuned for the common case of short buffers (IDs,
// digests, tokens in log lines) while staying safe for arbitrarily large
// inputs. Every non-empty call is dispatched by output size:
//
//   - transient path: the characters are written into scratch storage
//     whose lifetime ends with the call. Output that fits a fixed-size
//     local array is built on the goroutine stack; larger output borrows
//     a buffer from a size-class pool and returns it before the call
//     returns. The result string is a copy of the scratch.
//   - heap path: the characters are written into a freshly allocated
//     buffer which becomes the result string without a second copy.
//
// The boundary is the encoder's threshold, measured in length units:
// one unit per input byte, plus one for the "0x" prefix (each unit is
// two output characters). Units at or below the threshold take the
// transient path. The default threshold is [DefaultThreshold].
//
// The package-level [ToHex], [SetThreshold] and [Threshold] functions
// act on a process-wide default encoder. Components that want isolated
// policy construct their own with [NewEncoder].
//
// Both paths produce identical output; the only observable difference is
// allocation behavior. [WithDispatchObserver] exposes the chosen [Path]
// for instrumentation and tests.
//
// A nil buffer is an error ([ErrNilInput]); an empty non-nil buffer
// encodes to "" or "0x". A negative threshold is rejected with
// [ErrInvalidThreshold] and the previous value stays in effect.
//
// This package has no dependencies on other Bureau packages.
package hexenc
