// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"

	"github.com/bureau-foundation/bytearray/lib/hexenc"
)

// Size is the length in bytes of every digest this package produces.
const Size = 32

// Algorithm identifies a digest function.
type Algorithm string

const (
	// BLAKE3 is unkeyed BLAKE3 with 32-byte output.
	BLAKE3 Algorithm = "blake3"
	// SHA256 is FIPS 180-4 SHA-256.
	SHA256 Algorithm = "sha256"
	// BLAKE2b is BLAKE2b-256, unkeyed.
	BLAKE2b Algorithm = "blake2b"
)

// ParseAlgorithm parses an algorithm name.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(name)) {
	case BLAKE3:
		return BLAKE3, nil
	case SHA256:
		return SHA256, nil
	case BLAKE2b:
		return BLAKE2b, nil
	default:
		return "", fmt.Errorf("unknown digest algorithm %q (allowed: blake3, sha256, blake2b)", name)
	}
}

// String returns the algorithm name.
func (a Algorithm) String() string {
	return string(a)
}

func (a Algorithm) newHash() (hash.Hash, error) {
	switch a {
	case BLAKE3:
		return blake3.New(), nil
	case SHA256:
		return sha256.New(), nil
	case BLAKE2b:
		// New256 only fails for keys longer than 64 bytes.
		return blake2b.New256(nil)
	default:
		return nil, fmt.Errorf("unknown digest algorithm %q", string(a))
	}
}

// Sum returns the digest of data.
func Sum(algorithm Algorithm, data []byte) ([]byte, error) {
	hasher, err := algorithm.newHash()
	if err != nil {
		return nil, err
	}
	hasher.Write(data)
	return hasher.Sum(nil), nil
}

// SumFile returns the digest of the file at path, streaming its
// contents through the hash.
func SumFile(algorithm Algorithm, path string) ([]byte, error) {
	hasher, err := algorithm.newHash()
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s for hashing: %w", path, err)
	}
	defer file.Close()

	if _, err := io.Copy(hasher, file); err != nil {
		return nil, fmt.Errorf("hashing %s: %w", path, err)
	}
	return hasher.Sum(nil), nil
}

// Format returns the hex encoding of digest.
func Format(digest []byte, prefix, uppercase bool) (string, error) {
	return hexenc.ToHex(digest, prefix, uppercase)
}

// Parse decodes a hex digest, accepting an optional "0x" prefix and
// either letter case. The decoded value must be [Size] bytes.
func Parse(text string) ([]byte, error) {
	text = strings.TrimPrefix(text, "0x")
	decoded, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("parsing digest: %w", err)
	}
	if len(decoded) != Size {
		return nil, fmt.Errorf("digest is %d bytes, want %d", len(decoded), Size)
	}
	return decoded, nil
}
