//go:build !cgozstd

package input

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// newZstdReader creates a streaming zstd reader using the pure Go decoder.
// Decoder concurrency is pinned to 1: the pipeline is strictly sequential
// and the single-goroutine decoder keeps it that way.
func newZstdReader(r io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}

	return &zstdReadCloser{dec: dec}, nil
}

// zstdReadCloser adapts the decoder's error-less Close to io.Closer.
type zstdReadCloser struct {
	dec *zstd.Decoder
}

func (z *zstdReadCloser) Read(p []byte) (int, error) {
	return z.dec.Read(p)
}

func (z *zstdReadCloser) Close() error {
	z.dec.Close()
	return nil
}
