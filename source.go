package lpreader

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"io"
	"os"

	"github.com/pkg/errors"
)

// LineSource is the one contract the lexer needs from a byte source:
// pull lines on demand, release resources on Close. spec.md §6 treats a
// plain file, a gzip-decompressed stream, and an in-memory buffer
// identically through exactly this interface.
type LineSource interface {
	// ReadLine returns the next line (without its terminator) and true,
	// or ("", false) once the source is exhausted.
	ReadLine() (string, bool)
	Close() error
}

// scannerSource adapts a bufio.Scanner-backed io.ReadCloser to LineSource.
type scannerSource struct {
	scanner *bufio.Scanner
	closer  io.Closer
}

func (s *scannerSource) ReadLine() (string, bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

func (s *scannerSource) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// NewFileSource opens path and returns a LineSource reading it line by
// line. bufio.Scanner's default line splitting already drops the '\r' of
// a CRLF line ending; the lexer strips any trailing '\r' that remains,
// per spec.md §4.1.
func NewFileSource(path string) (LineSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "NewFileSource failed to open %s", path)
	}
	return &scannerSource{scanner: bufio.NewScanner(f), closer: f}, nil
}

// gzipSource closes both the gzip reader and the underlying file.
type gzipSource struct {
	scanner *bufio.Scanner
	gz      *gzip.Reader
	file    *os.File
}

func (s *gzipSource) ReadLine() (string, bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

func (s *gzipSource) Close() error {
	gzErr := s.gz.Close()
	fileErr := s.file.Close()
	if gzErr != nil {
		return errors.Wrap(gzErr, "gzipSource failed to close gzip reader")
	}
	if fileErr != nil {
		return errors.Wrap(fileErr, "gzipSource failed to close file")
	}
	return nil
}

// NewGzipSource opens path, treats it as gzip-compressed, and returns a
// LineSource over the decompressed stream. The core treats this
// identically to a plain file source (spec.md §6); compression is an
// opaque upstream concern.
func NewGzipSource(path string) (LineSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "NewGzipSource failed to open %s", path)
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrapf(err, "NewGzipSource failed to init gzip reader for %s", path)
	}
	return &gzipSource{scanner: bufio.NewScanner(gz), gz: gz, file: f}, nil
}

// NewBytesSource wraps an in-memory LP document.
func NewBytesSource(data []byte) LineSource {
	return &scannerSource{scanner: bufio.NewScanner(bytes.NewReader(data))}
}

// NewStringSource is a convenience wrapper over NewBytesSource.
func NewStringSource(s string) LineSource {
	return NewBytesSource([]byte(s))
}
