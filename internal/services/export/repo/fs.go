// Package repo holds export sinks
package repo

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	perr "gridiron/internal/platform/errors"
)

const (
	defaultFilePerm os.FileMode = 0o644
	defaultDirPerm  os.FileMode = 0o755
)

// FS writes JSON documents into one directory
// every write goes to a temp file in the same directory and is renamed over the target,
// so readers see the previous document or the new one, never a partial file
type FS struct {
	Dir      string
	FilePerm os.FileMode
	DirPerm  os.FileMode
}

// NewFS returns a sink rooted at dir with default permissions
func NewFS(dir string) *FS {
	return &FS{Dir: dir, FilePerm: defaultFilePerm, DirPerm: defaultDirPerm}
}

// WriteJSON encodes v with two space indent and stores it as Dir/name
// name must be a bare file name
func (s *FS) WriteJSON(ctx context.Context, name string, v any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !flatName(name) {
		return "", perr.WithField(perr.InvalidArgf("export: %q is not a plain file name", name), "name")
	}
	b, err := Encode(v)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeJSON, "export: encode %s", name)
	}
	if err := os.MkdirAll(s.Dir, s.dirPerm()); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "export: create %s", s.Dir)
	}
	dest := filepath.Join(s.Dir, name)
	if err := writeAtomic(dest, b, s.filePerm()); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "export: write %s", dest)
	}
	return dest, nil
}

// Encode renders v the way every export document is stored
// two space indent, no HTML escaping, trailing newline
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func flatName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && filepath.Base(name) == name
}

func writeAtomic(dest string, b []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(dest)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err = tmp.Chmod(perm); err != nil {
		return err
	}
	bw := bufio.NewWriter(tmp)
	if _, err = bw.Write(b); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Rename(tmpPath, dest); err != nil {
		return err
	}
	syncDir(dir)
	return nil
}

// syncDir persists the rename, best effort
func syncDir(dir string) {
	f, err := os.Open(dir)
	if err != nil {
		return
	}
	_ = f.Sync()
	_ = f.Close()
}

func (s *FS) filePerm() os.FileMode {
	if s.FilePerm == 0 {
		return defaultFilePerm
	}
	return s.FilePerm
}

func (s *FS) dirPerm() os.FileMode {
	if s.DirPerm == 0 {
		return defaultDirPerm
	}
	return s.DirPerm
}
