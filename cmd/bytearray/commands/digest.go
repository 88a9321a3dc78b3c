// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/bytearray/cmd/bytearray/cli"
	"github.com/bureau-foundation/bytearray/lib/digest"
)

type digestParams struct {
	globalParams
	algorithm string
	prefix    bool
	upper     bool
	expect    string
}

type digestResult struct {
	Command   string `json:"command" cbor:"command"`
	Input     string `json:"input" cbor:"input"`
	Algorithm string `json:"algorithm" cbor:"algorithm"`
	Digest    string `json:"digest" cbor:"digest"`
	Match     *bool  `json:"match,omitempty" cbor:"match,omitempty"`
}

func digestCommand(streams Streams) *cli.Command {
	var params digestParams

	return &cli.Command{
		Name:    "digest",
		Summary: "Print the digest of a file",
		Description: `Hash FILE (or standard input for "-") and print the 32-byte digest as
hex. The algorithm defaults to the configured one (blake3 unless set).`,
		Usage: "bytearray digest [flags] FILE|-",
		Examples: []cli.Example{
			{Description: "BLAKE3 digest of a file", Command: "bytearray digest image.raw"},
			{Description: "SHA-256 digest with a 0x prefix", Command: "bytearray digest --algorithm sha256 --prefix image.raw"},
			{Description: "Fail unless the file has a published digest", Command: "bytearray digest --expect 0x1f2e... image.raw"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("digest", pflag.ContinueOnError)
			params.register(flagSet)
			flagSet.StringVar(&params.algorithm, "algorithm", "", "digest algorithm: blake3, sha256, or blake2b")
			flagSet.BoolVar(&params.prefix, "prefix", false, `prepend "0x"`)
			flagSet.BoolVar(&params.upper, "upper", false, "use upper-case digits A-F")
			flagSet.StringVar(&params.expect, "expect", "", "expected hex digest; exit 1 on mismatch")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("digest takes exactly one input, got %d", len(args))
			}
			return runDigest(streams, &params, args[0])
		},
	}
}

func runDigest(streams Streams, params *digestParams, input string) error {
	s, err := newSession(streams, &params.globalParams, "digest")
	if err != nil {
		return err
	}

	name := s.config.Digest.Algorithm
	if params.changed("algorithm") {
		name = params.algorithm
	}
	algorithm, err := digest.ParseAlgorithm(name)
	if err != nil {
		return cli.Validation("%w", err)
	}
	prefix := s.config.Hex.Prefix
	if params.changed("prefix") {
		prefix = params.prefix
	}
	upper := s.config.Hex.Uppercase
	if params.changed("upper") {
		upper = params.upper
	}
	var expected []byte
	if params.expect != "" {
		expected, err = digest.Parse(params.expect)
		if err != nil {
			return cli.Validation("--expect: %w", err)
		}
	}

	var sum []byte
	if input == stdinName {
		data, err := io.ReadAll(s.streams.Stdin)
		if err != nil {
			return cli.Internal("reading standard input: %w", err)
		}
		sum, err = digest.Sum(algorithm, data)
		if err != nil {
			return cli.Internal("%w", err)
		}
	} else {
		sum, err = digest.SumFile(algorithm, input)
		if errors.Is(err, fs.ErrNotExist) {
			return cli.NotFound("input %s does not exist", input)
		}
		if err != nil {
			return cli.Internal("%w", err)
		}
	}

	text, err := digest.Format(sum, prefix, upper)
	if err != nil {
		return cli.Internal("%w", err)
	}
	s.logger.Debug("digested input", "input", input, "algorithm", algorithm.String())

	result := digestResult{
		Command:   "digest",
		Input:     input,
		Algorithm: algorithm.String(),
		Digest:    text,
	}
	if expected != nil {
		match := s.provider.Equal(sum, expected)
		result.Match = &match
	}
	if err := s.emit(text, result); err != nil {
		return err
	}
	if result.Match != nil && !*result.Match {
		return &cli.ExitError{Code: cli.ExitFailure, Err: fmt.Errorf("%s digest of %s does not match %s", algorithm, input, params.expect)}
	}
	return nil
}
