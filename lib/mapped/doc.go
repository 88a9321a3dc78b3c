// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package mapped loads input files for byte-level processing, memory
// mapping large ones instead of copying them onto the heap.
//
// [ReadFile] picks the strategy by size: files at or above the caller's
// threshold are mapped read-only (on Linux and Darwin), smaller files
// are read with os.ReadFile. Either way the caller gets a [File] whose
// [File.Bytes] is never nil (an empty file yields an empty slice) and
// must call [File.Close] when done.
//
// A mapped file reflects later writes by other processes, and truncating
// it while mapped turns reads past the new end into page faults. Access
// the contents inside [File.Use], which converts such a fault into an
// error instead of crashing the process.
package mapped
