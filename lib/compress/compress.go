// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// MaxDecompressedSize bounds the output of [Decompress].
const MaxDecompressedSize = 1 << 30

// ErrTooLarge is returned when decompressed output would exceed
// [MaxDecompressedSize].
var ErrTooLarge = errors.New("compress: decompressed size exceeds limit")

// Format names an input compression format.
type Format string

const (
	// FormatNone passes input through.
	FormatNone Format = "none"
	// FormatAuto detects zstd or LZ4 by magic number.
	FormatAuto Format = "auto"
	// FormatZstd is a zstd frame.
	FormatZstd Format = "zstd"
	// FormatLZ4 is an LZ4 frame.
	FormatLZ4 Format = "lz4"
)

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// ParseFormat parses a format name. The empty string is FormatNone.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case "", FormatNone:
		return FormatNone, nil
	case FormatAuto, FormatZstd, FormatLZ4:
		return Format(name), nil
	default:
		return "", fmt.Errorf("unknown compression format %q (allowed: none, auto, zstd, lz4)", name)
	}
}

// Detect returns the format whose magic number starts data, or
// FormatNone.
func Detect(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return FormatZstd
	case bytes.HasPrefix(data, lz4Magic):
		return FormatLZ4
	default:
		return FormatNone
	}
}

// zstdDecoder is shared across calls; DecodeAll is safe for concurrent
// use.
var zstdDecoder *zstd.Decoder

func init() {
	var err error
	zstdDecoder, err = zstd.NewReader(nil,
		zstd.WithDecoderMaxMemory(MaxDecompressedSize),
	)
	if err != nil {
		panic("compress: zstd decoder initialization failed: " + err.Error())
	}
}

// Decompress returns the decompressed contents of data. For FormatNone
// (and FormatAuto on unrecognized data) it returns data itself.
func Decompress(data []byte, format Format) ([]byte, error) {
	if format == FormatAuto {
		format = Detect(data)
	}

	switch format {
	case FormatNone:
		return data, nil
	case FormatZstd:
		return decompressZstd(data)
	case FormatLZ4:
		return decompressLZ4(data)
	default:
		return nil, fmt.Errorf("unsupported compression format %q", string(format))
	}
}

func decompressZstd(data []byte) ([]byte, error) {
	decompressed, err := zstdDecoder.DecodeAll(data, nil)
	if err != nil {
		if errors.Is(err, zstd.ErrDecoderSizeExceeded) {
			return nil, ErrTooLarge
		}
		return nil, fmt.Errorf("zstd decompress: %w", err)
	}
	if decompressed == nil {
		// An empty frame decodes to empty content, not to "no buffer".
		decompressed = []byte{}
	}
	return decompressed, nil
}

func decompressLZ4(data []byte) ([]byte, error) {
	reader := lz4.NewReader(bytes.NewReader(data))
	decompressed, err := io.ReadAll(io.LimitReader(reader, MaxDecompressedSize+1))
	if err != nil {
		return nil, fmt.Errorf("lz4 decompress: %w", err)
	}
	if len(decompressed) > MaxDecompressedSize {
		return nil, ErrTooLarge
	}
	return decompressed, nil
}
