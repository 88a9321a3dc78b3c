// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package bytearray defines the byte-buffer capability set consumed by
// other components: hex formatting and buffer equality.
//
// Consumers depend on the [Provider] interface and receive an
// implementation explicitly (constructor argument, struct field), so
// tests and alternate policies substitute their own without touching
// global state. [Standard] is the production implementation, composed
// from [hexenc] and [bufcmp]:
//
//	provider := bytearray.New(hexenc.NewEncoder())
//	id, err := provider.ToHex(digest[:], true, false)
//	same := provider.Equal(expected, actual)
//
// This package keeps no mutable package-level provider.
package bytearray
