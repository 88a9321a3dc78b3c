// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands assembles the bytearray command tree: hex, equal,
// digest, and version. [Root] returns the tree bound to a set of
// [Streams], so tests drive the commands with in-memory buffers.
//
// Every command shares the global --config, --format, and --log-level
// flags. Flag values override the config file, which overrides the
// built-in defaults. Without --config the BYTEARRAY_CONFIG variable is
// consulted, and without either the defaults apply.
package commands
