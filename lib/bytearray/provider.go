// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bytearray

import (
	"github.com/bureau-foundation/bytearray/lib/bufcmp"
	"github.com/bureau-foundation/bytearray/lib/hexenc"
)

// Provider is the byte-buffer capability set.
type Provider interface {
	// ToHex returns the hexadecimal representation of data, optionally
	// prefixed with "0x", using upper- or lower-case letters.
	ToHex(data []byte, prefix, uppercase bool) (string, error)

	// Equal reports whether two buffers hold the same bytes. Nil is
	// distinct from empty.
	Equal(a, b []byte) bool
}

// Standard implements [Provider] with [hexenc.Encoder] and
// [bufcmp.Equal].
type Standard struct {
	encoder *hexenc.Encoder
}

var _ Provider = (*Standard)(nil)

// New returns a Standard provider encoding with encoder. A nil encoder
// selects the process-wide [hexenc.Default].
func New(encoder *hexenc.Encoder) *Standard {
	if encoder == nil {
		encoder = hexenc.Default()
	}
	return &Standard{encoder: encoder}
}

// Encoder returns the encoder backing ToHex.
func (s *Standard) Encoder() *hexenc.Encoder {
	return s.encoder
}

// ToHex implements [Provider].
func (s *Standard) ToHex(data []byte, prefix, uppercase bool) (string, error) {
	return s.encoder.ToHex(data, prefix, uppercase)
}

// Equal implements [Provider].
func (s *Standard) Equal(a, b []byte) bool {
	return bufcmp.Equal(a, b)
}
