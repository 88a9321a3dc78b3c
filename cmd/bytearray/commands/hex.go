// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/bytearray/cmd/bytearray/cli"
)

type hexParams struct {
	globalParams
	prefix     bool
	upper      bool
	threshold  int
	decompress string
}

type hexResult struct {
	Command   string `json:"command" cbor:"command"`
	Input     string `json:"input" cbor:"input"`
	Length    int    `json:"length" cbor:"length"`
	Prefix    bool   `json:"prefix" cbor:"prefix"`
	Uppercase bool   `json:"uppercase" cbor:"uppercase"`
	Hex       string `json:"hex" cbor:"hex"`
}

func hexCommand(streams Streams) *cli.Command {
	var params hexParams

	return &cli.Command{
		Name:    "hex",
		Summary: "Print the hex encoding of a file",
		Description: `Print the hexadecimal encoding of FILE, or of standard input when FILE
is "-" or omitted. Each byte becomes two digits, high nibble first.`,
		Usage: "bytearray hex [flags] [FILE|-]",
		Examples: []cli.Example{
			{Description: "Encode a file with a 0x prefix", Command: "bytearray hex --prefix key.bin"},
			{Description: "Encode a zstd-compressed dump in upper case", Command: "bytearray hex --upper --decompress zstd dump.zst"},
			{Description: "Encode standard input as a JSON record", Command: "head -c 16 /dev/urandom | bytearray hex --format json"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("hex", pflag.ContinueOnError)
			params.register(flagSet)
			flagSet.BoolVar(&params.prefix, "prefix", false, `prepend "0x"`)
			flagSet.BoolVar(&params.upper, "upper", false, "use upper-case digits A-F")
			flagSet.IntVar(&params.threshold, "threshold", 0, "encoder dispatch threshold in length units")
			flagSet.StringVar(&params.decompress, "decompress", "", "input compression: none, auto, zstd, or lz4")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 1 {
				return cli.Validation("hex takes at most one input, got %d", len(args))
			}
			input := stdinName
			if len(args) == 1 {
				input = args[0]
			}
			return runHex(streams, &params, input)
		},
	}
}

func runHex(streams Streams, params *hexParams, input string) error {
	s, err := newSession(streams, &params.globalParams, "hex")
	if err != nil {
		return err
	}

	if params.changed("threshold") {
		if err := s.encoder.SetThreshold(params.threshold); err != nil {
			return cli.Validation("--threshold: %w", err)
		}
	}
	prefix := s.config.Hex.Prefix
	if params.changed("prefix") {
		prefix = params.prefix
	}
	upper := s.config.Hex.Uppercase
	if params.changed("upper") {
		upper = params.upper
	}
	format, err := s.resolveDecompress(&params.globalParams, params.decompress)
	if err != nil {
		return err
	}

	return s.withInput(input, format, func(data []byte) error {
		encoded, err := s.provider.ToHex(data, prefix, upper)
		if err != nil {
			return cli.Internal("encoding %s: %w", input, err)
		}
		return s.emit(encoded, hexResult{
			Command:   "hex",
			Input:     input,
			Length:    len(data),
			Prefix:    prefix,
			Uppercase: upper,
			Hex:       encoded,
		})
	})
}
