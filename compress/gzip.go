package compress

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// newGzipReader wraps r with a streaming gzip decoder. Reading validates the
// gzip header eagerly, so a non-gzip byte source fails here rather than on
// the first Read.
func newGzipReader(r io.Reader) (io.ReadCloser, error) {
	gr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("open gzip stream: %w", err)
	}

	return gr, nil
}
