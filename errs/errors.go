// Package errs defines sentinel errors shared across pinglog packages.
package errs

import "errors"

var (
	// ErrIncompleteRecord indicates a trailing record with fewer fields than
	// required. The record reader consumes it internally and terminates the
	// sequence cleanly; it is exported so callers and tests can classify
	// builder-level failures.
	ErrIncompleteRecord = errors.New("incomplete trailing record")

	// ErrMalformedTimestamp indicates a leading string field that does not
	// parse as an ISO-8601 timestamp. This is a hard failure: the stream is
	// not in the expected shape.
	ErrMalformedTimestamp = errors.New("malformed timestamp")

	// ErrUnexpectedType indicates a value of a different kind than the
	// accessor or field position requires.
	ErrUnexpectedType = errors.New("unexpected value type")

	// ErrUnsupportedType indicates a MessagePack value kind the stream does
	// not model (maps, extensions).
	ErrUnsupportedType = errors.New("unsupported value type")

	// ErrIntegerOverflow indicates an unsigned integer value too large to
	// represent as int64.
	ErrIntegerOverflow = errors.New("integer overflows int64")

	// ErrUnsupportedCompression indicates an unknown compression type.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)
