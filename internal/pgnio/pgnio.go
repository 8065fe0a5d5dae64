// Package pgnio opens and creates PGN files, compressed or not, and replays
// SAN lines into packed positions.
package pgnio

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"github.com/klauspost/compress/zstd"
)

// IsPGNFile reports whether name is a .pgn or .pgn.zst file.
func IsPGNFile(name string) bool {
	ext := filepath.Ext(name)
	if ext == ".pgn" {
		return true
	}
	if ext == ".zst" {
		base := name[:len(name)-4]
		return filepath.Ext(base) == ".pgn"
	}
	return false
}

func compressed(path string) bool { return filepath.Ext(path) == ".zst" }

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

// Open opens path for reading, decompressing .zst files.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !compressed(path) {
		return f, nil
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	rc := dec.IOReadCloser()
	return &readCloser{Reader: rc, closers: []io.Closer{rc, f}}, nil
}

type writeCloser struct {
	*bufio.Writer
	enc *zstd.Encoder
	f   *os.File
}

func (w *writeCloser) Close() error {
	err := w.Writer.Flush()
	if w.enc != nil {
		if cerr := w.enc.Close(); err == nil {
			err = cerr
		}
	}
	if cerr := w.f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Create creates path for writing, compressing when it ends in .zst.
// Parent directories are created as needed.
func Create(path string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if !compressed(path) {
		return &writeCloser{Writer: bufio.NewWriter(f), f: f}, nil
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		f.Close()
		return nil, err
	}
	return &writeCloser{Writer: bufio.NewWriter(enc), enc: enc, f: f}, nil
}

// ReadFile reads a whole file through Open.
func ReadFile(path string) ([]byte, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// Slug builds a file name stem from free text such as an opening name and
// a game count.
func Slug(parts ...string) string {
	return slug.Make(strings.Join(parts, " "))
}
