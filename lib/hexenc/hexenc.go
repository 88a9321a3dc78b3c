// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hexenc

import (
	"errors"
	"fmt"
	"slices"
	"sync/atomic"
)

// DefaultThreshold is the dispatch threshold, in length units, of a new
// encoder and of the process-wide default encoder.
const DefaultThreshold = 2048

var (
	// ErrNilInput is returned when the buffer to encode is nil. An empty
	// non-nil buffer is valid input.
	ErrNilInput = errors.New("hexenc: nil input buffer")

	// ErrInvalidThreshold is returned when a negative threshold is
	// configured. The rejected value is included in the wrapping error.
	ErrInvalidThreshold = errors.New("hexenc: threshold must be non-negative")
)

// Path identifies which buffer strategy served an encode call.
type Path uint8

const (
	// PathTransient is the call-scoped scratch strategy.
	PathTransient Path = iota + 1

	// PathHeap is the fresh heap buffer strategy.
	PathHeap
)

// String returns "transient" or "heap".
func (p Path) String() string {
	switch p {
	case PathTransient:
		return "transient"
	case PathHeap:
		return "heap"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(p))
	}
}

// Option configures an [Encoder] at construction.
type Option func(*Encoder)

// WithDispatchObserver registers a function called with the chosen path
// and the output length (in bytes) for every non-empty encode. The
// observer runs synchronously on the encoding goroutine and must be
// safe for concurrent use if the encoder is shared.
func WithDispatchObserver(observe func(path Path, outputLength int)) Option {
	return func(e *Encoder) {
		e.observe = observe
	}
}

// Encoder converts buffers to hex strings, choosing a buffer strategy
// per call from its threshold. Encoders are safe for concurrent use.
//
// Construct with [NewEncoder]. The zero value has a threshold of 0 and
// sends every non-empty call to the heap path.
type Encoder struct {
	threshold atomic.Int64
	observe   func(Path, int)
}

// NewEncoder returns an encoder with [DefaultThreshold].
func NewEncoder(options ...Option) *Encoder {
	encoder := &Encoder{}
	encoder.threshold.Store(DefaultThreshold)
	for _, option := range options {
		option(encoder)
	}
	return encoder
}

// Threshold returns the current dispatch threshold in length units.
func (e *Encoder) Threshold() int {
	return int(e.threshold.Load())
}

// SetThreshold changes the dispatch threshold for subsequent calls.
// Calls already in progress keep the value they read. A negative value
// is rejected with [ErrInvalidThreshold] and the threshold is left
// unchanged.
func (e *Encoder) SetThreshold(units int) error {
	if units < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidThreshold, units)
	}
	e.threshold.Store(int64(units))
	return nil
}

// ToHex returns the hexadecimal representation of src: two digits per
// byte, high nibble first, optionally preceded by "0x". Letters are
// upper or lower case according to uppercase; the prefix is always a
// lower-case "0x".
//
// The result has exactly [EncodedLen](len(src), prefix) characters.
func (e *Encoder) ToHex(src []byte, prefix, uppercase bool) (string, error) {
	if src == nil {
		return "", ErrNilInput
	}
	if len(src) == 0 {
		if prefix {
			return "0x", nil
		}
		return "", nil
	}

	// One unit per input byte plus one for the prefix, each unit being
	// two characters.
	units := len(src)
	if prefix {
		units++
	}
	size := units * 2
	digits := lookup(uppercase)

	if int64(units) <= e.threshold.Load() {
		e.dispatched(PathTransient, size)
		return encodeTransient(src, size, prefix, digits), nil
	}
	e.dispatched(PathHeap, size)
	return encodeHeap(src, size, prefix, digits), nil
}

func (e *Encoder) dispatched(path Path, size int) {
	if e.observe != nil {
		e.observe(path, size)
	}
}

// EncodedLen returns the length of the hex encoding of n bytes.
func EncodedLen(n int, prefix bool) int {
	if prefix {
		return n*2 + 2
	}
	return n * 2
}

// AppendHex appends the hex encoding of src to dst and returns the
// extended buffer. The caller owns the storage, so no dispatch happens.
// A nil src is rejected with [ErrNilInput]; dst may be nil.
func AppendHex(dst, src []byte, prefix, uppercase bool) ([]byte, error) {
	if src == nil {
		return dst, ErrNilInput
	}
	size := EncodedLen(len(src), prefix)
	start := len(dst)
	dst = slices.Grow(dst, size)[:start+size]
	encodeInto(dst[start:], src, prefix, lookup(uppercase))
	return dst, nil
}

// defaultEncoder carries the process-wide threshold.
var defaultEncoder = NewEncoder()

// Default returns the process-wide encoder used by the package-level
// functions.
func Default() *Encoder {
	return defaultEncoder
}

// ToHex encodes src with the process-wide encoder. See [Encoder.ToHex].
func ToHex(src []byte, prefix, uppercase bool) (string, error) {
	return defaultEncoder.ToHex(src, prefix, uppercase)
}

// Threshold returns the process-wide dispatch threshold.
func Threshold() int {
	return defaultEncoder.Threshold()
}

// SetThreshold sets the process-wide dispatch threshold. See
// [Encoder.SetThreshold].
func SetThreshold(units int) error {
	return defaultEncoder.SetThreshold(units)
}
