// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"io"
	"io/fs"

	"github.com/bureau-foundation/bytearray/cmd/bytearray/cli"
	"github.com/bureau-foundation/bytearray/lib/compress"
	"github.com/bureau-foundation/bytearray/lib/mapped"
)

// stdinName is the input argument that selects standard input.
const stdinName = "-"

// resolveDecompress returns the --decompress flag value if given, else
// the configured one.
func (s *session) resolveDecompress(params *globalParams, flagValue string) (compress.Format, error) {
	name := s.config.Input.Decompress
	if params.changed("decompress") {
		name = flagValue
	}
	format, err := compress.ParseFormat(name)
	if err != nil {
		return "", cli.Validation("%w", err)
	}
	return format, nil
}

// withInput loads the named input (a path or "-" for stdin), expands it
// per format, and calls fn with the bytes. fn must not retain data: a
// mapped file is released when withInput returns.
func (s *session) withInput(name string, format compress.Format, fn func(data []byte) error) error {
	if name == stdinName {
		data, err := io.ReadAll(s.streams.Stdin)
		if err != nil {
			return cli.Internal("reading standard input: %w", err)
		}
		if data == nil {
			data = []byte{}
		}
		s.logger.Debug("loaded input", "input", "stdin", "bytes", len(data))
		return s.expand(name, data, format, fn)
	}

	file, err := mapped.ReadFile(name, s.config.Input.MmapMinSize)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cli.NotFound("input %s does not exist", name)
		}
		return cli.Internal("%w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.Warn("releasing input failed", "input", name, "error", err)
		}
	}()
	s.logger.Debug("loaded input", "input", name, "bytes", len(file.Bytes()), "mapped", file.Mapped())

	return file.Use(func(data []byte) error {
		return s.expand(name, data, format, fn)
	})
}

func (s *session) expand(name string, data []byte, format compress.Format, fn func([]byte) error) error {
	if format == compress.FormatNone {
		return fn(data)
	}
	expanded, err := compress.Decompress(data, format)
	if err != nil {
		return cli.Internal("decompressing %s: %w", name, err)
	}
	s.logger.Debug("decompressed input", "input", name, "format", string(format),
		"compressed_bytes", len(data), "bytes", len(expanded))
	return fn(expanded)
}
