// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"io"

	"github.com/bureau-foundation/bytearray/cmd/bytearray/cli"
)

// Streams are the standard streams the commands read and write.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Root returns the bytearray command tree bound to streams.
func Root(streams Streams) *cli.Command {
	return &cli.Command{
		Name:    "bytearray",
		Summary: "Hex encoding, buffer comparison, and digests for files",
		Description: `Encode files as hexadecimal, compare two files byte for byte, or
digest a file. Large inputs are memory mapped; zstd and LZ4 compressed
inputs are expanded with --decompress.`,
		Output: streams.Stderr,
		Subcommands: []*cli.Command{
			hexCommand(streams),
			equalCommand(streams),
			digestCommand(streams),
			versionCommand(streams),
		},
	}
}
