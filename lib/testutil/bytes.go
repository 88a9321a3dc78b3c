// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import "math/rand/v2"

// Bytes returns length pseudo-random bytes derived from seed. The same
// seed and length always produce the same buffer. A zero length
// returns a non-nil empty slice.
//
//	input := testutil.Bytes(42, 1024)
func Bytes(seed uint64, length int) []byte {
	generator := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	data := make([]byte, length)
	for i := range data {
		data[i] = byte(generator.Uint32())
	}
	return data
}
