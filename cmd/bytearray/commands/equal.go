// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/bytearray/cmd/bytearray/cli"
)

type equalParams struct {
	globalParams
	decompress string
}

type equalResult struct {
	Command string `json:"command" cbor:"command"`
	First   string `json:"first" cbor:"first"`
	Second  string `json:"second" cbor:"second"`
	Equal   bool   `json:"equal" cbor:"equal"`
}

func equalCommand(streams Streams) *cli.Command {
	var params equalParams

	return &cli.Command{
		Name:    "equal",
		Summary: "Compare two files byte for byte",
		Description: `Compare the contents of FILE1 and FILE2. Prints "equal" and exits 0
when they match, prints "different" and exits 1 when they do not, and
exits 2 on any error. Either file may be "-" for standard input.

The comparison is not constant-time and must not be used on secrets.`,
		Usage: "bytearray equal [flags] FILE1 FILE2",
		Examples: []cli.Example{
			{Description: "Check that a copy is intact", Command: "bytearray equal original.bin copy.bin"},
			{Description: "Compare a compressed archive to its source", Command: "bytearray equal --decompress auto data.bin data.bin.zst"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("equal", pflag.ContinueOnError)
			params.register(flagSet)
			flagSet.StringVar(&params.decompress, "decompress", "", "input compression: none, auto, zstd, or lz4")
			return flagSet
		},
		Run: func(args []string) error {
			if err := runEqual(streams, &params, args); err != nil {
				if _, silent := err.(*cli.ExitError); silent {
					return err
				}
				return &cli.ExitError{Code: cli.ExitUsage, Err: err}
			}
			return nil
		},
	}
}

func runEqual(streams Streams, params *equalParams, args []string) error {
	if len(args) != 2 {
		return cli.Validation("equal takes exactly two inputs, got %d", len(args))
	}
	first, second := args[0], args[1]
	if first == stdinName && second == stdinName {
		return cli.Validation("standard input can be only one of the inputs")
	}

	s, err := newSession(streams, &params.globalParams, "equal")
	if err != nil {
		return err
	}
	format, err := s.resolveDecompress(&params.globalParams, params.decompress)
	if err != nil {
		return err
	}

	var equal bool
	err = s.withInput(first, format, func(a []byte) error {
		return s.withInput(second, format, func(b []byte) error {
			equal = s.provider.Equal(a, b)
			return nil
		})
	})
	if err != nil {
		return err
	}

	text := "different"
	if equal {
		text = "equal"
	}
	if err := s.emit(text, equalResult{Command: "equal", First: first, Second: second, Equal: equal}); err != nil {
		return err
	}
	if !equal {
		return &cli.ExitError{Code: cli.ExitFailure}
	}
	return nil
}
