package compress

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// newLZ4Reader wraps r with a streaming LZ4 frame decoder.
//
// The lz4.Reader holds no resources beyond its block buffers, so the
// returned ReadCloser's Close is a no-op.
func newLZ4Reader(r io.Reader) io.ReadCloser {
	return io.NopCloser(lz4.NewReader(r))
}
