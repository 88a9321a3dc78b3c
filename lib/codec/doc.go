// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec encodes structured command results.
//
// Results leave a bytearray command in one of three forms, selected by
// [Format]:
//
//   - text: the bare value (hex string, "equal"/"different") which the
//     command prints itself; codec is not involved.
//   - json: one JSON object per result, newline terminated, for shell
//     pipelines and humans.
//   - cbor: one CBOR data item per result using Core Deterministic
//     Encoding (RFC 8949 §4.2), for programs that want compact,
//     byte-for-byte reproducible records.
//
// Result types carry `json` struct tags only. fxamacker/cbor reads
// `json` tags when `cbor` tags are absent, so one tag controls field
// naming and omitempty for both encodings.
//
//	err := codec.Write(os.Stdout, codec.FormatCBOR, result)
//
// [Marshal], [Unmarshal], [NewEncoder] and [NewDecoder] expose the CBOR
// modes directly; [Diagnose] renders CBOR diagnostic notation for
// debugging and tests.
package codec
