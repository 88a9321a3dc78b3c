// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/bytearray/cmd/bytearray/cli"
	"github.com/bureau-foundation/bytearray/lib/codec"
	"github.com/bureau-foundation/bytearray/lib/digest"
	"github.com/bureau-foundation/bytearray/lib/version"
)

type versionParams struct {
	globalParams
	digest string
}

type versionResult struct {
	Command   string `json:"command" cbor:"command"`
	Version   string `json:"version" cbor:"version"`
	Commit    string `json:"commit" cbor:"commit"`
	BuildTime string `json:"build_time" cbor:"build_time"`
	Go        string `json:"go" cbor:"go"`
	Platform  string `json:"platform" cbor:"platform"`
	Binary    string `json:"binary,omitempty" cbor:"binary,omitempty"`
	Algorithm string `json:"algorithm,omitempty" cbor:"algorithm,omitempty"`
	Digest    string `json:"digest,omitempty" cbor:"digest,omitempty"`
}

func versionCommand(streams Streams) *cli.Command {
	var params versionParams

	return &cli.Command{
		Name:    "version",
		Summary: "Print build information",
		Usage:   "bytearray version [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("version", pflag.ContinueOnError)
			params.register(flagSet)
			flagSet.StringVar(&params.digest, "digest", "", "also print the running binary's digest with this algorithm")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 0 {
				return cli.Validation("version takes no arguments")
			}
			return runVersion(streams, &params)
		},
	}
}

func runVersion(streams Streams, params *versionParams) error {
	s, err := newSession(streams, &params.globalParams, "version")
	if err != nil {
		return err
	}

	result := versionResult{
		Command:   "version",
		Version:   version.Short(),
		Commit:    version.Commit(),
		BuildTime: version.BuildTime,
		Go:        runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if params.digest != "" {
		algorithm, err := digest.ParseAlgorithm(params.digest)
		if err != nil {
			return cli.Validation("--digest: %w", err)
		}
		result.Digest, result.Binary, err = version.SelfDigest(algorithm)
		if err != nil {
			return cli.Internal("%w", err)
		}
		result.Algorithm = algorithm.String()
	}

	if s.format != codec.FormatText {
		return s.emit("", result)
	}
	if err := version.Print(s.streams.Stdout, "bytearray"); err != nil {
		return cli.Internal("writing output: %w", err)
	}
	if result.Digest != "" {
		return s.emit(fmt.Sprintf("  Binary: %s\n  %s: %s", result.Binary, result.Algorithm, result.Digest), result)
	}
	return nil
}
