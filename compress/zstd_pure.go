//go:build !cgo

package compress

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// newZstdReader wraps r with the pure-Go Zstandard frame decoder.
//
// Single-threaded decoding: the record reader is strictly sequential, so
// decoder concurrency only costs memory here.
func newZstdReader(r io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(r,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(true),
	)
	if err != nil {
		return nil, fmt.Errorf("open zstd stream: %w", err)
	}

	return dec.IOReadCloser(), nil
}
