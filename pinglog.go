// Package pinglog decodes the append-only binary telemetry log produced by a
// network-probing daemon into structured measurement records.
//
// The log is a flat MessagePack value stream with no record framing. Each
// record is either
//
//	[string-timestamp, int-elapsed-µs, int-inflight, int-lost, array-received]
//
// or the same shape without the leading timestamp, in which case the record
// inherits the timestamp of the nearest preceding record that carried one.
// Boundary detection relies entirely on the value types: the received array
// is always the last field of a record.
//
// # Basic Usage
//
// Reading a log file:
//
//	f, err := pinglog.Open("gateway.pinglog")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	for rec, err := range f.All() {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(rec)
//	}
//
// Compressed archives (.zst, .gz, .lz4, .s2) are detected by extension and
// decompressed transparently. For non-file sources, wrap any io.Reader with
// NewReader.
//
// # Package Structure
//
// This package provides convenient top-level wrappers; the subpackages carry
// the implementation: value (the MessagePack variant stream), record (the
// record assembly/build/iteration core), compress and format (archived log
// input), and stats (per-log summaries).
package pinglog

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"

	"github.com/probeops/pinglog/compress"
	"github.com/probeops/pinglog/format"
	"github.com/probeops/pinglog/internal/hash"
	"github.com/probeops/pinglog/record"
)

// NewReader creates a record reader decoding from an arbitrary byte source.
// The source must already be decompressed.
func NewReader(r io.Reader) *record.Reader {
	return record.NewReader(r)
}

// File is an open log file: a record reader plus the handles it owns.
type File struct {
	*record.Reader

	src  io.ReadCloser
	file *os.File
}

// Open opens a log file for reading, wrapping it with the decompressor its
// extension indicates. The returned File must be closed by the caller.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	src, err := compress.NewReader(f, format.Detect(path))
	if err != nil {
		f.Close()

		return nil, err
	}

	return &File{
		Reader: record.NewReader(src),
		src:    src,
		file:   f,
	}, nil
}

// Close releases the decompressor state and the underlying file handle.
func (f *File) Close() error {
	return multierr.Append(f.src.Close(), f.file.Close())
}

// LogID returns the stable 64-bit identity of a log, keyed by its path.
func LogID(path string) uint64 {
	return hash.ID(path)
}
