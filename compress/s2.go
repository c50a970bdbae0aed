package compress

import (
	"io"

	"github.com/klauspost/compress/s2"
)

// newS2Reader wraps r with a streaming S2 frame decoder.
//
// The s2.Reader holds no resources beyond its window buffer, so the returned
// ReadCloser's Close is a no-op.
func newS2Reader(r io.Reader) io.ReadCloser {
	return io.NopCloser(s2.NewReader(r))
}
