package compress

import (
	"fmt"
	"io"

	"github.com/probeops/pinglog/errs"
	"github.com/probeops/pinglog/format"
)

// NewReader wraps r with the streaming decompressor for the given
// compression type.
//
// The returned ReadCloser owns only decompressor state; closing it does not
// close r. Callers remain responsible for the underlying byte source.
//
// Returns errs.ErrUnsupportedCompression for unknown types.
func NewReader(r io.Reader, compression format.CompressionType) (io.ReadCloser, error) {
	switch compression {
	case format.CompressionNone:
		return io.NopCloser(r), nil
	case format.CompressionZstd:
		return newZstdReader(r)
	case format.CompressionS2:
		return newS2Reader(r), nil
	case format.CompressionLZ4:
		return newLZ4Reader(r), nil
	case format.CompressionGzip:
		return newGzipReader(r)
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compression)
	}
}
