// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
)

// chaincat runs the command with quiet logging and returns its exit status,
// stdout and stderr.
func chaincat(t testing.TB, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	args = append([]string{"-log-level", "error"}, args...)
	code := Run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeFile(t testing.TB, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func numberedLines(n int) string {
	var sb strings.Builder
	for i := range n {
		fmt.Fprintf(&sb, "line %d\n", i)
	}
	return sb.String()
}

func TestStdin(t *testing.T) {
	code, out, _ := chaincat(t, "a\nb\n")
	require.Equal(t, 0, code)
	require.Equal(t, "a\nb\n", out)

	code, out, _ = chaincat(t, "x\n", "-")
	require.Equal(t, 0, code)
	require.Equal(t, "x\n", out)
}

func TestFilesInArgumentOrder(t *testing.T) {
	a := writeFile(t, "a.txt", numberedLines(200))
	b := writeFile(t, "b.txt", "tail 1\ntail 2\n")
	code, out, _ := chaincat(t, "", a, b)
	require.Equal(t, 0, code)
	require.Equal(t, numberedLines(200)+"tail 1\ntail 2\n", out)
}

func TestHead(t *testing.T) {
	p := writeFile(t, "big.txt", numberedLines(10_000))
	code, out, _ := chaincat(t, "", "-n", "2", p)
	require.Equal(t, 0, code)
	require.Equal(t, "line 0\nline 1\n", out)
}

func TestAt(t *testing.T) {
	p := writeFile(t, "f.txt", numberedLines(5))
	code, out, _ := chaincat(t, "", "-at", "3", p)
	require.Equal(t, 0, code)
	require.Equal(t, "line 3\n", out)

	code, out, _ = chaincat(t, "", "-at", "-1", p)
	require.Equal(t, 0, code)
	require.Equal(t, "line 4\n", out)

	code, out, stderr := chaincat(t, "", "-at", "9", p)
	require.Equal(t, 1, code)
	require.Empty(t, out)
	require.Contains(t, stderr, "index 9 out of range")
}

func TestGrepCount(t *testing.T) {
	code, out, _ := chaincat(t, "apple\nbanana\ncherry\navocado\n", "-grep", "a", "-count")
	require.Equal(t, 0, code)
	require.Equal(t, "3\n", out)

	code, out, _ = chaincat(t, "apple\nbanana\ncherry\navocado\n", "-grep", "an")
	require.Equal(t, 0, code)
	require.Equal(t, "banana\n", out)
}

func TestUniq(t *testing.T) {
	in := "a\nb\na\nc\nb\n"
	tests := []struct {
		size string
		want string
	}{
		{"1", "a\nb\na\nc\nb\n"},
		{"2", "a\nb\nc\nb\n"},
		{"10", "a\nb\nc\n"},
	}
	for _, tt := range tests {
		t.Run(tt.size, func(t *testing.T) {
			code, out, _ := chaincat(t, in, "-uniq", tt.size)
			require.Equal(t, 0, code)
			require.Equal(t, tt.want, out)
		})
	}
}

func TestPrimes(t *testing.T) {
	code, out, _ := chaincat(t, "", "-primes", "12")
	require.Equal(t, 0, code)
	require.Equal(t, "2\n3\n5\n7\n11\n13\n17\n19\n23\n29\n31\n37\n", out)
}

func TestMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")
	code, out, stderr := chaincat(t, "", missing)
	require.Equal(t, 1, code)
	require.Empty(t, out)
	require.Contains(t, stderr, "missing.txt")
}

func TestBadUsage(t *testing.T) {
	code, _, stderr := chaincat(t, "", "-nope")
	require.Equal(t, 2, code)
	require.Contains(t, stderr, "Usage: chaincat")

	code, _, _ = chaincat(t, "", "-n", "-1")
	require.Equal(t, 2, code)

	code, _, _ = chaincat(t, "", "-count", "-at", "1")
	require.Equal(t, 2, code)
}

func TestHelp(t *testing.T) {
	code, out, _ := chaincat(t, "", "-help")
	require.Equal(t, 0, code)
	require.Contains(t, out, "-primes")
}

func TestConfigFile(t *testing.T) {
	cfg := writeFile(t, "chaincat.yaml", "lines: 1\ngrep: b\nlog_level: error\n")
	in := "ab\nbc\ncd\nbd\n"

	code, out, _ := chaincat(t, in, "-config", cfg)
	require.Equal(t, 0, code)
	require.Equal(t, "ab\n", out)

	code, out, _ = chaincat(t, in, "-config", cfg, "-n", "3")
	require.Equal(t, 0, code)
	require.Equal(t, "ab\nbc\nbd\n", out)
}

func TestConfigRejectsUnknownKeys(t *testing.T) {
	cfg := writeFile(t, "chaincat.yaml", "lines: 1\nbogus: true\n")
	code, _, stderr := chaincat(t, "", "-config", cfg)
	require.Equal(t, 2, code)
	require.Contains(t, stderr, "bogus")
}

func TestDecodeConfig(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, decodeConfig(strings.NewReader(""), &cfg))
	require.Equal(t, defaultConfig(), cfg)

	require.NoError(t, decodeConfig(strings.NewReader("at: -2\nuniq: 8\n"), &cfg))
	require.NotNil(t, cfg.At)
	require.Equal(t, -2, *cfg.At)
	require.Equal(t, 8, cfg.Uniq)
	require.Equal(t, "info", cfg.LogLevel)

	require.Error(t, decodeConfig(strings.NewReader("primes: -1\n"), &cfg))
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	_, err := newLogger(&bytes.Buffer{}, "loud")
	require.Error(t, err)
	l, err := newLogger(&bytes.Buffer{}, "debug")
	require.NoError(t, err)
	require.NotNil(t, l)
}

// cancelingWriter cancels its context on the first write.
type cancelingWriter struct {
	bytes.Buffer
	cancel context.CancelFunc
}

func (w *cancelingWriter) Write(p []byte) (int, error) {
	w.cancel()
	return w.Buffer.Write(p)
}

func quietContext(t testing.TB) context.Context {
	return logctx.NewContext(t.Context(), zap.NewNop())
}

func TestInterruptedWalkFails(t *testing.T) {
	ctx, cancel := context.WithCancel(quietContext(t))
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })
	go func() {
		_, _ = io.WriteString(pw, "first\n")
	}()

	out := &cancelingWriter{cancel: cancel}
	err := run(ctx, defaultConfig(), nil, pr, out)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, "first\n", out.String())
}

func TestCanceledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(quietContext(t))
	cancel()
	var out bytes.Buffer
	err := run(ctx, defaultConfig(), nil, strings.NewReader("a\nb\n"), &out)
	require.ErrorIs(t, err, context.Canceled)
}
