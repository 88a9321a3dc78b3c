// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package bufcmp compares byte buffers for equality.
//
// [Equal] is a total function over all pairs of buffers, including nil
// ones. It runs a sequence of cheap short-circuit checks before touching
// buffer contents:
//
//  1. both arguments share storage (same data pointer and length): equal
//  2. exactly one argument is nil: not equal
//  3. both are nil: equal
//  4. lengths differ: not equal
//  5. both are empty: equal
//
// Only then does it scan the contents, four bytes at a time as a single
// 32-bit word, followed by the one to three trailing bytes one at a
// time. The scan never reads past the shared length.
//
// Nil and empty are distinct: Equal(nil, []byte{}) is false. Callers
// that do not care about the distinction should use bytes.Equal.
//
// Equal returns at the first mismatching word, so its running time
// depends on where buffers differ. It is a throughput-oriented compare
// for keys and identifiers and must not be used to compare secrets; use
// crypto/subtle.ConstantTimeCompare for those.
package bufcmp
