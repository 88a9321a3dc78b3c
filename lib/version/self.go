// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bureau-foundation/bytearray/lib/digest"
)

// SelfDigest returns the hex digest and resolved path of the running
// binary. Symlinks are followed so the digest describes the file that
// was actually executed.
func SelfDigest(algorithm digest.Algorithm) (hexDigest string, binaryPath string, err error) {
	executable, err := os.Executable()
	if err != nil {
		return "", "", fmt.Errorf("locating running binary: %w", err)
	}
	binaryPath, err = filepath.EvalSymlinks(executable)
	if err != nil {
		return "", "", fmt.Errorf("resolving %s: %w", executable, err)
	}

	sum, err := digest.SumFile(algorithm, binaryPath)
	if err != nil {
		return "", "", err
	}
	hexDigest, err = digest.Format(sum, false, false)
	if err != nil {
		return "", "", err
	}
	return hexDigest, binaryPath, nil
}
