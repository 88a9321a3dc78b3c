// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/bytearray/cmd/bytearray/cli"
	"github.com/bureau-foundation/bytearray/lib/bytearray"
	"github.com/bureau-foundation/bytearray/lib/codec"
	"github.com/bureau-foundation/bytearray/lib/config"
	"github.com/bureau-foundation/bytearray/lib/hexenc"
)

// globalParams are the flags every command accepts.
type globalParams struct {
	configPath string
	format     string
	logLevel   string

	// flagSet is the set most recently built for this command, kept so
	// Run can ask which flags were given explicitly.
	flagSet *pflag.FlagSet
}

func (g *globalParams) register(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&g.configPath, "config", "", "configuration file (default: $"+config.EnvVar+")")
	flagSet.StringVar(&g.format, "format", "", "output format: text, json, or cbor")
	flagSet.StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn, or error")
	g.flagSet = flagSet
}

func (g *globalParams) changed(name string) bool {
	return g.flagSet != nil && g.flagSet.Changed(name)
}

// session is the resolved configuration and services for one command
// invocation.
type session struct {
	streams  Streams
	config   *config.Config
	format   codec.Format
	logger   *slog.Logger
	encoder  *hexenc.Encoder
	provider bytearray.Provider
}

// newSession loads configuration, applies the global flags, and builds
// the logger and encoder.
func newSession(streams Streams, params *globalParams, command string) (*session, error) {
	cfg, err := loadConfig(params.configPath)
	if err != nil {
		return nil, err
	}

	if params.changed("format") {
		cfg.Output.Format = params.format
	}
	if params.changed("log-level") {
		cfg.Log.Level = params.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, cli.Validation("invalid configuration: %w", err)
	}

	format, err := codec.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, cli.Validation("%w", err)
	}
	level, err := config.ParseLogLevel(cfg.Log.Level)
	if err != nil {
		return nil, cli.Validation("%w", err)
	}
	logger := cli.NewCommandLogger(streams.Stderr, level).With("command", command)

	encoder := hexenc.NewEncoder(hexenc.WithDispatchObserver(func(path hexenc.Path, outputLength int) {
		logger.Debug("hex dispatch", "path", path.String(), "output_bytes", outputLength)
	}))
	if err := cfg.ApplyTo(encoder); err != nil {
		return nil, cli.Validation("%w", err)
	}

	return &session{
		streams:  streams,
		config:   cfg,
		format:   format,
		logger:   logger,
		encoder:  encoder,
		provider: bytearray.New(encoder),
	}, nil
}

func loadConfig(path string) (*config.Config, error) {
	switch {
	case path != "":
		cfg, err := config.LoadFile(path)
		if err != nil {
			return nil, cli.Validation("loading --config: %w", err)
		}
		return cfg, nil
	case os.Getenv(config.EnvVar) != "":
		cfg, err := config.Load()
		if err != nil {
			return nil, cli.Validation("loading $%s: %w", config.EnvVar, err)
		}
		return cfg, nil
	default:
		return config.Default(), nil
	}
}

// emit writes value as a structured record, or text followed by a
// newline when the session format is text.
func (s *session) emit(text string, value any) error {
	if s.format == codec.FormatText {
		if _, err := io.WriteString(s.streams.Stdout, text+"\n"); err != nil {
			return cli.Internal("writing output: %w", err)
		}
		return nil
	}
	if err := codec.Write(s.streams.Stdout, s.format, value); err != nil {
		return cli.Internal("%w", err)
	}
	return nil
}
