// Package compress provides streaming decompression for archived log files.
//
// The probing daemon appends to an uncompressed log and compresses it on
// rotation; readers see one of several frame formats depending on the
// archiver configuration. This package wraps the underlying byte source with
// the matching decompressor:
//
//   - None: pass-through (live, un-rotated logs)
//   - Zstd: Zstandard frames (cgo-accelerated when available)
//   - S2:   S2 frames
//   - LZ4:  LZ4 frames
//   - Gzip: gzip members
//
// Decompression is strictly streaming: logs can be larger than memory and
// the record reader only ever pulls forward.
package compress
