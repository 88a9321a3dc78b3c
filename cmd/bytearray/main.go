// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Bytearray encodes files as hexadecimal, compares files byte for byte,
// and prints file digests.
//
// Usage:
//
//	bytearray hex [--prefix] [--upper] [--threshold N] [--decompress F] [FILE|-]
//	bytearray equal [--decompress F] FILE1 FILE2
//	bytearray digest [--algorithm A] [--prefix] [--upper] [--expect HEX] FILE|-
//	bytearray version [--digest A]
//
// Every command accepts --config, --format (text, json, cbor), and
// --log-level. Run "bytearray <command> --help" for details.
package main

import (
	"os"

	"github.com/bureau-foundation/bytearray/cmd/bytearray/cli"
	"github.com/bureau-foundation/bytearray/cmd/bytearray/commands"
)

func main() {
	os.Exit(cli.Exit(run(os.Args[1:]), os.Stderr))
}

func run(args []string) error {
	return commands.Root(commands.Streams{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}).Execute(args)
}
