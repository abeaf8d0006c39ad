package bdb

import (
	"bufio"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"time"

	"gridiron/internal/core/tracking"
	perr "gridiron/internal/platform/errors"
	"gridiron/internal/platform/logger"
)

const readBufSize = 256 * 1024

var gzipMagic = []byte{0x1f, 0x8b}

// Source opens tracking files by path
type Source interface {
	Stat(path string) error
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// FileSource reads from the local filesystem
type FileSource struct{}

// NewFileSource returns a filesystem backed Source
func NewFileSource() *FileSource { return &FileSource{} }

// Stat reports ErrorCodeNotFound when path is missing or is a directory
func (FileSource) Stat(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return perr.NotFoundf("file not found: %s", path)
		}
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "stat %s", path)
	}
	if fi.IsDir() {
		return perr.NotFoundf("file not found: %s is a directory", path)
	}
	return nil
}

// Open returns a reader over the decompressed file contents
func (FileSource) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, perr.NotFoundf("file not found: %s", path)
		}
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "open %s", path)
	}
	rc, err := maybeGzip(f)
	if err != nil {
		_ = f.Close()
		return nil, perr.Wrapf(err, perr.ErrorCodeValidation, "gzip header %s", path)
	}
	return rc, nil
}

// readCloser pairs a wrapped reader with the closers underneath it
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var first error
	for _, c := range r.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// maybeGzip peeks at the first bytes and inflates when they carry the gzip magic
func maybeGzip(f *os.File) (io.ReadCloser, error) {
	br := bufio.NewReaderSize(f, readBufSize)
	head, err := br.Peek(len(gzipMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if len(head) == len(gzipMagic) && head[0] == gzipMagic[0] && head[1] == gzipMagic[1] {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return &readCloser{Reader: gz, closers: []io.Closer{gz, f}}, nil
	}
	return &readCloser{Reader: br, closers: []io.Closer{f}}, nil
}

// Loader decodes whole tables from a Source
type Loader struct {
	src Source
}

// NewLoader builds a loader, nil src means the local filesystem
func NewLoader(src Source) *Loader {
	if src == nil {
		src = NewFileSource()
	}
	return &Loader{src: src}
}

// Stat checks that path exists without reading it
func (l *Loader) Stat(path string) error { return l.src.Stat(path) }

// LoadTable reads every row of path as a table of the given kind
func (l *Loader) LoadTable(ctx context.Context, path string, kind tracking.Kind) (*tracking.Table, error) {
	log := logger.Named("bdb")
	start := time.Now()

	rc, err := l.src.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	t, err := tracking.ReadTable(ctx, rc, kind)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, perr.WithOp(err, "bdb.load "+path)
	}

	log.Info().
		Str("path", path).
		Str("kind", string(kind)).
		Int("rows", len(t.Rows)).
		Dur("took", time.Since(start)).
		Msg("bdb: table loaded")
	return t, nil
}
