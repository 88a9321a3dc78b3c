// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/bureau-foundation/bytearray/cmd/bytearray/cli"
	"github.com/bureau-foundation/bytearray/lib/codec"
	"github.com/bureau-foundation/bytearray/lib/config"
	"github.com/bureau-foundation/bytearray/lib/testutil"
	"github.com/bureau-foundation/bytearray/lib/version"
)

type result struct {
	stdout string
	stderr string
	code   int
}

func TestMain(m *testing.M) {
	// Commands fall back to BYTEARRAY_CONFIG; tests start without it.
	os.Unsetenv(config.EnvVar)
	os.Exit(m.Run())
}

// execute runs the command tree with the given stdin and arguments.
func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := Root(Streams{
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
	}).Execute(args)
	code := cli.Exit(err, &stderr)
	return result{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

func expectCode(t *testing.T, got result, want int) {
	t.Helper()
	if got.code != want {
		t.Fatalf("exit code = %d, want %d\nstdout: %s\nstderr: %s", got.code, want, got.stdout, got.stderr)
	}
}

func TestHex(t *testing.T) {
	path := testutil.WriteFile(t, "input.bin", []byte{0x01, 0xab, 0xff})

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"plain", []string{"hex", path}, "01abff\n"},
		{"prefix", []string{"hex", "--prefix", path}, "0x01abff\n"},
		{"upper", []string{"hex", "--upper", path}, "01ABFF\n"},
		{"prefix upper", []string{"hex", "--prefix", "--upper", path}, "0x01ABFF\n"},
		{"zero threshold", []string{"hex", "--threshold", "0", path}, "01abff\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := execute(t, "", test.args...)
			expectCode(t, got, 0)
			if got.stdout != test.want {
				t.Errorf("stdout = %q, want %q", got.stdout, test.want)
			}
		})
	}
}

func TestHexStdin(t *testing.T) {
	for _, args := range [][]string{{"hex"}, {"hex", "-"}} {
		got := execute(t, "Hi", args...)
		expectCode(t, got, 0)
		if got.stdout != "4869\n" {
			t.Errorf("%v: stdout = %q, want 4869", args, got.stdout)
		}
	}
}

func TestHexEmptyInput(t *testing.T) {
	path := testutil.WriteFile(t, "empty", nil)

	got := execute(t, "", "hex", path)
	expectCode(t, got, 0)
	if got.stdout != "\n" {
		t.Errorf("stdout = %q, want empty line", got.stdout)
	}

	got = execute(t, "", "hex", "--prefix", path)
	expectCode(t, got, 0)
	if got.stdout != "0x\n" {
		t.Errorf("stdout = %q, want 0x", got.stdout)
	}
}

func TestHexLargeMappedFile(t *testing.T) {
	content := testutil.Bytes(42, 100*1024)
	path := testutil.WriteFile(t, "large.bin", content)

	got := execute(t, "", "hex", path)
	expectCode(t, got, 0)
	if got.stdout != hex.EncodeToString(content)+"\n" {
		t.Error("large file encoding mismatch")
	}
}

func TestHexDecompress(t *testing.T) {
	content := []byte("compressed payload")

	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatalf("zstd.NewWriter: %v", err)
	}
	zstdPath := testutil.WriteFile(t, "input.zst", encoder.EncodeAll(content, nil))
	encoder.Close()

	var lz4Buffer bytes.Buffer
	writer := lz4.NewWriter(&lz4Buffer)
	if _, err := writer.Write(content); err != nil {
		t.Fatalf("lz4 write: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("lz4 close: %v", err)
	}
	lz4Path := testutil.WriteFile(t, "input.lz4", lz4Buffer.Bytes())

	want := hex.EncodeToString(content) + "\n"
	for _, args := range [][]string{
		{"hex", "--decompress", "zstd", zstdPath},
		{"hex", "--decompress", "auto", zstdPath},
		{"hex", "--decompress", "lz4", lz4Path},
		{"hex", "--decompress", "auto", lz4Path},
	} {
		got := execute(t, "", args...)
		expectCode(t, got, 0)
		if got.stdout != want {
			t.Errorf("%v: stdout = %q, want %q", args, got.stdout, want)
		}
	}

	got := execute(t, "", "hex", "--decompress", "zstd", testutil.WriteFile(t, "raw", content))
	expectCode(t, got, 1)
	if !strings.Contains(got.stderr, "decompressing") {
		t.Errorf("stderr = %q, want decompression error", got.stderr)
	}

	got = execute(t, "", "hex", "--decompress", "gzip", zstdPath)
	expectCode(t, got, 2)
}

func TestHexErrors(t *testing.T) {
	path := testutil.WriteFile(t, "input.bin", []byte{1})

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantText string
	}{
		{"negative threshold", []string{"hex", "--threshold", "-1", path}, 2, "threshold must be non-negative"},
		{"too many inputs", []string{"hex", path, path}, 2, "at most one input"},
		{"missing file", []string{"hex", path + ".missing"}, 1, "does not exist"},
		{"unknown flag", []string{"hex", "--prefx", path}, 2, "did you mean --prefix?"},
		{"bad format", []string{"hex", "--format", "xml", path}, 2, "output.format"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := execute(t, "", test.args...)
			expectCode(t, got, test.wantCode)
			if !strings.Contains(got.stderr, test.wantText) {
				t.Errorf("stderr = %q, want it to contain %q", got.stderr, test.wantText)
			}
		})
	}
}

func TestHexStructuredOutput(t *testing.T) {
	path := testutil.WriteFile(t, "input.bin", []byte{0xde, 0xad})

	got := execute(t, "", "hex", "--format", "json", "--prefix", path)
	expectCode(t, got, 0)
	var record hexResult
	if err := json.Unmarshal([]byte(got.stdout), &record); err != nil {
		t.Fatalf("JSON output: %v\n%s", err, got.stdout)
	}
	if record.Command != "hex" || record.Hex != "0xdead" || record.Length != 2 || !record.Prefix {
		t.Errorf("JSON record = %+v", record)
	}

	got = execute(t, "", "hex", "--format", "cbor", "--upper", path)
	expectCode(t, got, 0)
	var cborRecord hexResult
	if err := codec.Unmarshal([]byte(got.stdout), &cborRecord); err != nil {
		t.Fatalf("CBOR output: %v", err)
	}
	if cborRecord.Hex != "DEAD" || !cborRecord.Uppercase || cborRecord.Input != path {
		t.Errorf("CBOR record = %+v", cborRecord)
	}
}

func TestHexConfigFile(t *testing.T) {
	path := testutil.WriteFile(t, "input.bin", []byte{0xab})
	configPath := testutil.WriteFile(t, "bytearray.yaml", []byte("hex:\n  prefix: true\n  uppercase: true\n"))

	got := execute(t, "", "hex", "--config", configPath, path)
	expectCode(t, got, 0)
	if got.stdout != "0xAB\n" {
		t.Errorf("stdout = %q, want 0xAB from config", got.stdout)
	}

	got = execute(t, "", "hex", "--config", configPath, "--upper=false", path)
	expectCode(t, got, 0)
	if got.stdout != "0xab\n" {
		t.Errorf("stdout = %q, want flag to override config", got.stdout)
	}
}

func TestHexConfigFromEnvironment(t *testing.T) {
	path := testutil.WriteFile(t, "input.bin", []byte{0xab})
	t.Setenv(config.EnvVar, testutil.WriteFile(t, "bytearray.jsonc", []byte(`{
  // Scripts parse these records.
  "output": {"format": "json"},
}`)))

	got := execute(t, "", "hex", path)
	expectCode(t, got, 0)
	if !strings.HasPrefix(got.stdout, `{"command":"hex"`) {
		t.Errorf("stdout = %q, want a JSON record", got.stdout)
	}
}

func TestHexInvalidConfig(t *testing.T) {
	path := testutil.WriteFile(t, "input.bin", []byte{0xab})
	configPath := testutil.WriteFile(t, "bytearray.yaml", []byte("hex:\n  threshold: -4\n"))

	got := execute(t, "", "hex", "--config", configPath, path)
	expectCode(t, got, 2)
	if !strings.Contains(got.stderr, "hex.threshold") {
		t.Errorf("stderr = %q, want the invalid field named", got.stderr)
	}
}

func TestHexDebugLogsDispatch(t *testing.T) {
	path := testutil.WriteFile(t, "input.bin", []byte{1, 2, 3})

	got := execute(t, "", "hex", "--log-level", "debug", path)
	expectCode(t, got, 0)
	if !strings.Contains(got.stderr, `"msg":"hex dispatch"`) || !strings.Contains(got.stderr, `"path":"transient"`) {
		t.Errorf("stderr = %q, want a transient dispatch record", got.stderr)
	}

	got = execute(t, "", "hex", "--log-level", "debug", "--threshold", "0", path)
	expectCode(t, got, 0)
	if !strings.Contains(got.stderr, `"path":"heap"`) {
		t.Errorf("stderr = %q, want a heap dispatch record", got.stderr)
	}
}

func TestEqual(t *testing.T) {
	content := testutil.Bytes(7, 500)
	first := testutil.WriteFile(t, "first", content)
	second := testutil.WriteFile(t, "second", append([]byte(nil), content...))
	changed := append([]byte(nil), content...)
	changed[499] ^= 1
	third := testutil.WriteFile(t, "third", changed)
	empty := testutil.WriteFile(t, "empty", nil)

	tests := []struct {
		name     string
		args     []string
		stdin    string
		wantCode int
		wantOut  string
	}{
		{"same contents", []string{"equal", first, second}, "", 0, "equal\n"},
		{"same file", []string{"equal", first, first}, "", 0, "equal\n"},
		{"last byte differs", []string{"equal", first, third}, "", 1, "different\n"},
		{"length differs", []string{"equal", first, empty}, "", 1, "different\n"},
		{"both empty", []string{"equal", empty, empty}, "", 0, "equal\n"},
		{"stdin", []string{"equal", "-", empty}, "", 0, "equal\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := execute(t, test.stdin, test.args...)
			expectCode(t, got, test.wantCode)
			if got.stdout != test.wantOut {
				t.Errorf("stdout = %q, want %q", got.stdout, test.wantOut)
			}
			if got.stderr != "" {
				t.Errorf("stderr = %q, want nothing", got.stderr)
			}
		})
	}
}

func TestEqualErrorsExitTwo(t *testing.T) {
	path := testutil.WriteFile(t, "input", []byte{1})

	for _, args := range [][]string{
		{"equal", path},
		{"equal", path, path, path},
		{"equal", path, path + ".missing"},
		{"equal", "-", "-"},
		{"equal", "--decompress", "brotli", path, path},
	} {
		got := execute(t, "", args...)
		expectCode(t, got, 2)
		if !strings.HasPrefix(got.stderr, "error: ") {
			t.Errorf("%v: stderr = %q, want an error line", args, got.stderr)
		}
	}
}

func TestEqualDecompressed(t *testing.T) {
	content := []byte("the same bytes, stored two ways")
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatalf("zstd.NewWriter: %v", err)
	}
	plain := testutil.WriteFile(t, "plain", content)
	packed := testutil.WriteFile(t, "packed.zst", encoder.EncodeAll(content, nil))
	encoder.Close()

	got := execute(t, "", "equal", "--decompress", "auto", plain, packed)
	expectCode(t, got, 0)

	got = execute(t, "", "equal", plain, packed)
	expectCode(t, got, 1)
}

func TestEqualJSON(t *testing.T) {
	first := testutil.WriteFile(t, "first", []byte{1})
	second := testutil.WriteFile(t, "second", []byte{2})

	got := execute(t, "", "equal", "--format", "json", first, second)
	expectCode(t, got, 1)
	var record equalResult
	if err := json.Unmarshal([]byte(got.stdout), &record); err != nil {
		t.Fatalf("JSON output: %v\n%s", err, got.stdout)
	}
	if record.Command != "equal" || record.Equal || record.First != first || record.Second != second {
		t.Errorf("JSON record = %+v", record)
	}
}

func TestDigest(t *testing.T) {
	path := testutil.WriteFile(t, "abc", []byte("abc"))
	empty := testutil.WriteFile(t, "empty", nil)

	const sha256abc = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	const blake3empty = "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262"

	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{"sha256", []string{"digest", "--algorithm", "sha256", path}, "", sha256abc},
		{"sha256 prefix upper", []string{"digest", "--algorithm", "SHA256", "--prefix", "--upper", path}, "", "0x" + strings.ToUpper(sha256abc)},
		{"default blake3", []string{"digest", empty}, "", blake3empty},
		{"stdin", []string{"digest", "--algorithm", "sha256", "-"}, "abc", sha256abc},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := execute(t, test.stdin, test.args...)
			expectCode(t, got, 0)
			if got.stdout != test.want+"\n" {
				t.Errorf("stdout = %q, want %q", got.stdout, test.want)
			}
		})
	}
}

func TestDigestExpect(t *testing.T) {
	path := testutil.WriteFile(t, "abc", []byte("abc"))
	const sha256abc = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

	got := execute(t, "", "digest", "--algorithm", "sha256", "--expect", "0x"+strings.ToUpper(sha256abc), path)
	expectCode(t, got, 0)

	wrong := strings.Repeat("00", 32)
	got = execute(t, "", "digest", "--algorithm", "sha256", "--expect", wrong, path)
	expectCode(t, got, 1)
	if !strings.Contains(got.stderr, "does not match") {
		t.Errorf("stderr = %q, want mismatch message", got.stderr)
	}

	got = execute(t, "", "digest", "--expect", "abcd", path)
	expectCode(t, got, 2)

	got = execute(t, "", "digest", "--format", "json", "--algorithm", "sha256", "--expect", sha256abc, path)
	expectCode(t, got, 0)
	var record digestResult
	if err := json.Unmarshal([]byte(got.stdout), &record); err != nil {
		t.Fatalf("JSON output: %v", err)
	}
	if record.Match == nil || !*record.Match || record.Algorithm != "sha256" {
		t.Errorf("JSON record = %+v", record)
	}
}

func TestDigestErrors(t *testing.T) {
	path := testutil.WriteFile(t, "abc", []byte("abc"))

	expectCode(t, execute(t, "", "digest"), 2)
	expectCode(t, execute(t, "", "digest", "--algorithm", "md5", path), 2)
	expectCode(t, execute(t, "", "digest", path+".missing"), 1)
}

func TestVersion(t *testing.T) {
	got := execute(t, "", "version")
	expectCode(t, got, 0)
	if got.stdout != "bytearray "+version.Full()+"\n" {
		t.Errorf("stdout = %q", got.stdout)
	}

	got = execute(t, "", "version", "--format", "json", "--digest", "sha256")
	expectCode(t, got, 0)
	var record versionResult
	if err := json.Unmarshal([]byte(got.stdout), &record); err != nil {
		t.Fatalf("JSON output: %v\n%s", err, got.stdout)
	}
	if record.Version != version.Short() || record.Algorithm != "sha256" || len(record.Digest) != 64 {
		t.Errorf("JSON record = %+v", record)
	}

	expectCode(t, execute(t, "", "version", "extra"), 2)
	expectCode(t, execute(t, "", "version", "--digest", "crc32"), 2)
}

func TestUnknownCommand(t *testing.T) {
	got := execute(t, "", "hx")
	expectCode(t, got, 2)
	if !strings.Contains(got.stderr, `did you mean "hex"?`) {
		t.Errorf("stderr = %q, want suggestion", got.stderr)
	}
}

func TestRootHelp(t *testing.T) {
	got := execute(t, "", "--help")
	expectCode(t, got, 0)
	for _, name := range []string{"hex", "equal", "digest", "version"} {
		if !strings.Contains(got.stderr, name) {
			t.Errorf("help is missing %s:\n%s", name, got.stderr)
		}
	}
}
