// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"encoding/json"
	"fmt"
	"io"
)

// Format selects how a command writes its result.
type Format string

const (
	// FormatText prints the bare value.
	FormatText Format = "text"
	// FormatJSON writes one JSON object per line.
	FormatJSON Format = "json"
	// FormatCBOR writes one deterministic CBOR data item.
	FormatCBOR Format = "cbor"
)

// ParseFormat parses a format name.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatText, FormatJSON, FormatCBOR:
		return Format(name), nil
	default:
		return "", fmt.Errorf("unknown output format %q (allowed: text, json, cbor)", name)
	}
}

// Write encodes value to w as format. FormatText is rejected: text
// output is the caller's own rendering.
func Write(w io.Writer, format Format, value any) error {
	switch format {
	case FormatJSON:
		if err := json.NewEncoder(w).Encode(value); err != nil {
			return fmt.Errorf("writing JSON result: %w", err)
		}
		return nil
	case FormatCBOR:
		if err := NewEncoder(w).Encode(value); err != nil {
			return fmt.Errorf("writing CBOR result: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("format %q has no structured encoding", format)
	}
}
