// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package digest computes fixed-size content digests of byte buffers
// and files, and formats them as hex.
//
// Three algorithms are available, all producing 32-byte digests:
//
//   - [BLAKE3] (default) -- fastest on large inputs
//   - [SHA256] -- for interoperability with sha256sum and friends
//   - [BLAKE2b] -- BLAKE2b-256
//
// The API surface:
//
//   - [Sum] -- digest of an in-memory buffer
//   - [SumFile] -- streams a file through the hash (via io.Copy) with
//     constant memory regardless of file size
//   - [Format] -- hex encoding of a digest through [hexenc]
//   - [Parse] -- parses a hex digest (with or without "0x") back to
//     bytes, validating length
package digest
