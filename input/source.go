package input

import (
	"bufio"
	"compress/bzip2"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// MaxLineSize bounds a single input line. Tracer lines are short; the cap
// only guards against unbounded memory on corrupt or mislabeled input.
const MaxLineSize = 1 << 20

// Source yields the lines of one input stream, decompressing on the fly.
// It implements the line-source contract of the aggregation pipeline: Next
// until false, then Err to tell clean end-of-input from a read failure.
type Source struct {
	scanner *bufio.Scanner
	format  Format
	closers []io.Closer
	err     error
}

// NewSource wraps r, sniffing the compression format from the stream's
// first bytes and stacking the matching decompressor. The sniff peeks
// without consuming, so r does not need to be seekable.
func NewSource(r io.Reader) (*Source, error) {
	br := bufio.NewReader(r)

	prefix, err := br.Peek(maxMagicLen)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("sniff input: %w", err)
	}

	src := &Source{format: DetectFormat(prefix)}

	var payload io.Reader
	switch src.format {
	case FormatGzip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		src.closers = append(src.closers, zr)
		payload = zr
	case FormatZstd:
		zr, err := newZstdReader(br)
		if err != nil {
			return nil, fmt.Errorf("open zstd stream: %w", err)
		}
		src.closers = append(src.closers, zr)
		payload = zr
	case FormatXZ:
		xr, err := xz.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("open xz stream: %w", err)
		}
		payload = xr
	case FormatBzip2:
		payload = bzip2.NewReader(br)
	case FormatLZ4:
		payload = lz4.NewReader(br)
	case FormatS2:
		payload = s2.NewReader(br)
	default:
		payload = br
	}

	scanner := bufio.NewScanner(payload)
	scanner.Buffer(make([]byte, 64*1024), MaxLineSize)
	src.scanner = scanner

	return src, nil
}

// Open opens path as a Source. The path "-" (or an empty path) selects
// standard input. Close releases the file along with any decompressor.
func Open(path string) (*Source, error) {
	if path == "" || path == "-" {
		return NewSource(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	src, err := NewSource(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	src.closers = append(src.closers, f)

	return src, nil
}

// Next returns the next line without its terminator. ok is false once the
// stream is exhausted or has failed; Err tells the two apart.
func (s *Source) Next() (line string, ok bool) {
	if s.err != nil {
		return "", false
	}
	if !s.scanner.Scan() {
		s.err = s.scanner.Err()
		return "", false
	}

	return s.scanner.Text(), true
}

// Err returns the first read error, or nil after a clean end of input.
func (s *Source) Err() error {
	return s.err
}

// Format returns the compression format detected on the stream.
func (s *Source) Format() Format {
	return s.format
}

// Close releases the decompressor and, for sources opened from a path, the
// underlying file. It is safe to call more than once.
func (s *Source) Close() error {
	var firstErr error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.closers = nil

	return firstErr
}
