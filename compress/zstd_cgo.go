//go:build cgo

package compress

import (
	"io"

	"github.com/valyala/gozstd"
)

// newZstdReader wraps r with the cgo-backed Zstandard frame decoder.
func newZstdReader(r io.Reader) (io.ReadCloser, error) {
	return &gozstdReadCloser{zr: gozstd.NewReader(r)}, nil
}

// gozstdReadCloser adapts gozstd's Release lifecycle to io.ReadCloser.
type gozstdReadCloser struct {
	zr *gozstd.Reader
}

func (rc *gozstdReadCloser) Read(p []byte) (int, error) {
	return rc.zr.Read(p)
}

func (rc *gozstdReadCloser) Close() error {
	rc.zr.Release()

	return nil
}
