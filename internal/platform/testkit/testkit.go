// Package testkit holds helpers shared by gridiron tests
package testkit

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	perr "gridiron/internal/platform/errors"
)

// MustPanic fails t unless fn panics
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic, got none")
		}
	}()
	fn()
}

// MustContain fails t unless got contains want, long output goes to a file under t.TempDir
func MustContain(t *testing.T, got, want string) {
	t.Helper()
	if strings.Contains(got, want) {
		return
	}
	if len(got) <= 512 {
		t.Fatalf("expected %q in:\n%s", want, got)
	}
	p := filepath.Join(t.TempDir(), "output.txt")
	_ = os.WriteFile(p, []byte(got), 0o600)
	t.Fatalf("expected %q in %d bytes of output, written to %s", want, len(got), p)
}

// MustCode fails t unless err carries code
func MustCode(t *testing.T, err error, code perr.ErrorCode) {
	t.Helper()
	if !perr.IsCode(err, code) {
		t.Fatalf("want error code %d, got %d (%v)", code, perr.CodeOf(err), err)
	}
}

// WriteFile writes data to name inside a fresh temp dir and returns the path
func WriteFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

// Gzip compresses s, for .csv.gz fixtures
func Gzip(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(s)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

var seamMu sync.Mutex

// Swap points target at replacement until t ends
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	orig := *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
}

// Serial holds a process wide lock until t ends, for tests that Swap package seams
func Serial(t *testing.T) {
	t.Helper()
	seamMu.Lock()
	t.Cleanup(seamMu.Unlock)
}
