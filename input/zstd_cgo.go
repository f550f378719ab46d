//go:build cgozstd

package input

import (
	"io"

	"github.com/valyala/gozstd"
)

// newZstdReader creates a streaming zstd reader backed by the cgo bindings.
// Selected with the cgozstd build tag; decodes the same streams as the pure
// Go decoder, trading build portability for libzstd's throughput.
func newZstdReader(r io.Reader) (io.ReadCloser, error) {
	return &gozstdReadCloser{zr: gozstd.NewReader(r)}, nil
}

// gozstdReadCloser adapts the reader's Release to io.Closer.
type gozstdReadCloser struct {
	zr *gozstd.Reader
}

func (g *gozstdReadCloser) Read(p []byte) (int, error) {
	return g.zr.Read(p)
}

func (g *gozstdReadCloser) Close() error {
	g.zr.Release()
	return nil
}
