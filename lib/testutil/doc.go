// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for bytearray packages.
//
// [Bytes] returns deterministic pseudo-random buffers from a seed, so a
// failing test reproduces with the same data on every run. Use it
// instead of crypto/rand or time-seeded generators.
//
// [WriteFile] writes a fixture into a per-test temporary directory and
// returns its path.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no bytearray-internal dependencies.
package testutil
