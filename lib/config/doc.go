// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the bytearray
// tool.
//
// Configuration is loaded from a single file specified by either the
// BYTEARRAY_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There is no file discovery. Files ending in .json or
// .jsonc are accepted with comments and trailing commas; everything
// else is parsed as YAML.
//
// The file may contain environment-specific sections (development,
// staging, production) whose fields override the base values when
// [Config].Environment matches. A production config without a
// production section logs at warn level.
//
// String fields support ${VAR} and ${VAR:-default} expansion from the
// process environment.
//
// Key exports:
//
//   - [Config] -- Hex, Input, Digest, Output and Log sections
//   - [Default] -- a Config matching the built-in library defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [Config.Validate] and [Config.ApplyTo] -- check and install
package config
