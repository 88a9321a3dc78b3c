// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"bytes"
	"os"
	"runtime"
	"strings"
	"testing"

	"github.com/bureau-foundation/bytearray/lib/digest"
)

func setBuildInfo(t *testing.T, version, commit, dirty, buildTime string) {
	t.Helper()
	saved := [4]string{Version, GitCommit, GitDirty, BuildTime}
	Version, GitCommit, GitDirty, BuildTime = version, commit, dirty, buildTime
	t.Cleanup(func() {
		Version, GitCommit, GitDirty, BuildTime = saved[0], saved[1], saved[2], saved[3]
	})
}

func TestInfo(t *testing.T) {
	setBuildInfo(t, "1.2.3", "abc1234", "false", "2026-01-02T03:04:05Z")
	if got, want := Info(), "1.2.3 (abc1234, 2026-01-02T03:04:05Z)"; got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}

	GitDirty = "true"
	if got, want := Info(), "1.2.3 (abc1234-dirty, 2026-01-02T03:04:05Z)"; got != want {
		t.Errorf("Info() dirty = %q, want %q", got, want)
	}
}

func TestFull(t *testing.T) {
	full := Full()
	if !strings.HasPrefix(full, Info()) {
		t.Errorf("Full() = %q does not start with Info()", full)
	}
	if !strings.Contains(full, runtime.Version()) {
		t.Errorf("Full() = %q is missing the Go version", full)
	}
	if !strings.Contains(full, runtime.GOOS+"/"+runtime.GOARCH) {
		t.Errorf("Full() = %q is missing the platform", full)
	}
}

func TestShortAndCommit(t *testing.T) {
	setBuildInfo(t, "2.0.0", "deadbee", "false", "unknown")
	if Short() != "2.0.0" {
		t.Errorf("Short() = %q", Short())
	}
	if Commit() != "deadbee" {
		t.Errorf("Commit() = %q", Commit())
	}
}

func TestPrint(t *testing.T) {
	var buffer bytes.Buffer
	if err := Print(&buffer, "bytearray"); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if got, want := buffer.String(), "bytearray "+Full()+"\n"; got != want {
		t.Errorf("Print wrote %q, want %q", got, want)
	}
}

func TestSelfDigest(t *testing.T) {
	hexDigest, path, err := SelfDigest(digest.SHA256)
	if err != nil {
		t.Fatalf("SelfDigest: %v", err)
	}
	if len(hexDigest) != digest.Size*2 {
		t.Errorf("digest length = %d, want %d", len(hexDigest), digest.Size*2)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("reported binary path %s: %v", path, err)
	}

	again, _, err := SelfDigest(digest.SHA256)
	if err != nil {
		t.Fatalf("second SelfDigest: %v", err)
	}
	if again != hexDigest {
		t.Error("SelfDigest is not stable across calls")
	}
}
