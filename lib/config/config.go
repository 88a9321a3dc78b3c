// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/bytearray/lib/codec"
	"github.com/bureau-foundation/bytearray/lib/compress"
	"github.com/bureau-foundation/bytearray/lib/digest"
	"github.com/bureau-foundation/bytearray/lib/hexenc"
	"github.com/bureau-foundation/bytearray/lib/mapped"
)

// EnvVar names the environment variable read by [Load].
const EnvVar = "BYTEARRAY_CONFIG"

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local development machines.
	Development Environment = "development"
	// Staging is for pre-production testing.
	Staging Environment = "staging"
	// Production is for production deployments.
	Production Environment = "production"
)

// Config is the complete bytearray configuration.
type Config struct {
	// Environment selects which override section applies.
	Environment Environment `yaml:"environment"`

	Hex    HexConfig    `yaml:"hex"`
	Input  InputConfig  `yaml:"input"`
	Digest DigestConfig `yaml:"digest"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`

	Development *Overrides `yaml:"development,omitempty"`
	Staging     *Overrides `yaml:"staging,omitempty"`
	Production  *Overrides `yaml:"production,omitempty"`
}

// HexConfig configures hex encoding.
type HexConfig struct {
	// Threshold is the encoder dispatch threshold in length units
	// (input bytes plus one for the prefix).
	Threshold int `yaml:"threshold"`

	// Prefix and Uppercase are the defaults for the hex and digest
	// commands when the flags are not given.
	Prefix    bool `yaml:"prefix"`
	Uppercase bool `yaml:"uppercase"`
}

// InputConfig configures how input files are loaded.
type InputConfig struct {
	// Decompress is none, auto, zstd, or lz4.
	Decompress string `yaml:"decompress"`

	// MmapMinSize is the file size at which input is memory mapped
	// instead of read.
	MmapMinSize int64 `yaml:"mmap_min_size"`
}

// DigestConfig configures the digest command.
type DigestConfig struct {
	// Algorithm is blake3, sha256, or blake2b.
	Algorithm string `yaml:"algorithm"`
}

// OutputConfig configures result rendering.
type OutputConfig struct {
	// Format is text, json, or cbor.
	Format string `yaml:"format"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	// Level is a slog level name: debug, info, warn, or error.
	Level string `yaml:"level"`
}

// Overrides holds the fields an environment section may change. Nil
// fields leave the base value in place.
type Overrides struct {
	Hex    *HexOverrides    `yaml:"hex,omitempty"`
	Input  *InputOverrides  `yaml:"input,omitempty"`
	Digest *DigestOverrides `yaml:"digest,omitempty"`
	Output *OutputOverrides `yaml:"output,omitempty"`
	Log    *LogOverrides    `yaml:"log,omitempty"`
}

// HexOverrides overrides [HexConfig] fields.
type HexOverrides struct {
	Threshold *int  `yaml:"threshold"`
	Prefix    *bool `yaml:"prefix"`
	Uppercase *bool `yaml:"uppercase"`
}

// InputOverrides overrides [InputConfig] fields.
type InputOverrides struct {
	Decompress  *string `yaml:"decompress"`
	MmapMinSize *int64  `yaml:"mmap_min_size"`
}

// DigestOverrides overrides [DigestConfig] fields.
type DigestOverrides struct {
	Algorithm *string `yaml:"algorithm"`
}

// OutputOverrides overrides [OutputConfig] fields.
type OutputOverrides struct {
	Format *string `yaml:"format"`
}

// LogOverrides overrides [LogConfig] fields.
type LogOverrides struct {
	Level *string `yaml:"level"`
}

// Default returns the configuration that matches the library defaults.
// A loaded file is merged over it.
func Default() *Config {
	return &Config{
		Environment: Development,
		Hex: HexConfig{
			Threshold: hexenc.DefaultThreshold,
		},
		Input: InputConfig{
			Decompress:  string(compress.FormatNone),
			MmapMinSize: mapped.DefaultMinMapSize,
		},
		Digest: DigestConfig{
			Algorithm: string(digest.BLAKE3),
		},
		Output: OutputConfig{
			Format: string(codec.FormatText),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the file named by BYTEARRAY_CONFIG.
// It fails when the variable is unset; there is no default location.
func Load() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of a config file, or use --config", EnvVar)
	}
	return LoadFile(path)
}

// LoadFile loads configuration from path, applies the matching
// environment section, and expands variables. The result is not
// validated; call [Config.Validate].
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	cfg.applyEnvironmentOverrides()
	cfg.expandVariables()
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	// YAML is a superset of JSON, so JSONC only needs its comments and
	// trailing commas removed.
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		data = jsonc.ToJSON(data)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvironmentOverrides() {
	var overrides *Overrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		overrides = c.Production
		if overrides == nil {
			level := "warn"
			overrides = &Overrides{Log: &LogOverrides{Level: &level}}
		}
	}

	if overrides == nil {
		return
	}

	if hex := overrides.Hex; hex != nil {
		setIf(&c.Hex.Threshold, hex.Threshold)
		setIf(&c.Hex.Prefix, hex.Prefix)
		setIf(&c.Hex.Uppercase, hex.Uppercase)
	}
	if input := overrides.Input; input != nil {
		setIf(&c.Input.Decompress, input.Decompress)
		setIf(&c.Input.MmapMinSize, input.MmapMinSize)
	}
	if overrides.Digest != nil {
		setIf(&c.Digest.Algorithm, overrides.Digest.Algorithm)
	}
	if overrides.Output != nil {
		setIf(&c.Output.Format, overrides.Output.Format)
	}
	if overrides.Log != nil {
		setIf(&c.Log.Level, overrides.Log.Level)
	}
}

func setIf[T any](target *T, value *T) {
	if value != nil {
		*target = *value
	}
}

func (c *Config) expandVariables() {
	c.Input.Decompress = expandVars(c.Input.Decompress)
	c.Digest.Algorithm = expandVars(c.Digest.Algorithm)
	c.Output.Format = expandVars(c.Output.Format)
	c.Log.Level = expandVars(c.Log.Level)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} from the environment.
// An unset or empty variable without a default expands to "".
func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if value := os.Getenv(parts[1]); value != "" {
			return value
		}
		return parts[2]
	})
}

// Validate checks every field and reports all problems together.
func (c *Config) Validate() error {
	var errs []error

	switch c.Environment {
	case Development, Staging, Production:
	default:
		errs = append(errs, fmt.Errorf("invalid environment: %q", c.Environment))
	}

	if c.Hex.Threshold < 0 {
		errs = append(errs, fmt.Errorf("hex.threshold: %w: %d", hexenc.ErrInvalidThreshold, c.Hex.Threshold))
	}
	if _, err := compress.ParseFormat(c.Input.Decompress); err != nil {
		errs = append(errs, fmt.Errorf("input.decompress: %w", err))
	}
	if c.Input.MmapMinSize < 0 {
		errs = append(errs, fmt.Errorf("input.mmap_min_size must be non-negative, got %d", c.Input.MmapMinSize))
	}
	if _, err := digest.ParseAlgorithm(c.Digest.Algorithm); err != nil {
		errs = append(errs, fmt.Errorf("digest.algorithm: %w", err))
	}
	if _, err := codec.ParseFormat(c.Output.Format); err != nil {
		errs = append(errs, fmt.Errorf("output.format: %w", err))
	}
	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	return errors.Join(errs...)
}

// ApplyTo installs the hex settings on encoder.
func (c *Config) ApplyTo(encoder *hexenc.Encoder) error {
	if err := encoder.SetThreshold(c.Hex.Threshold); err != nil {
		return fmt.Errorf("hex.threshold: %w", err)
	}
	return nil
}

// ParseLogLevel parses a slog level name such as "debug" or "warn".
func ParseLogLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("invalid log level %q (allowed: debug, info, warn, error)", name)
	}
	return level, nil
}
