package record

import (
	"errors"
	"io"
	"iter"
	"time"

	"github.com/probeops/pinglog/errs"
	"github.com/probeops/pinglog/value"
)

// Reader decodes a telemetry log into a lazy, finite, forward-only sequence
// of Records.
//
// The reader holds exactly one piece of state across records: the last
// resolved timestamp, inherited by records that omit an explicit one. The
// sequence is single-pass and non-restartable; once exhausted, Next keeps
// reporting no more records.
//
// Termination is ordinary, not exceptional: both clean end of log and a
// half-written trailing record (fewer than the required fields) end the
// sequence without an error. Everything else — a malformed timestamp, a
// field of the wrong kind, an underlying decode or I/O failure — surfaces
// once through Next and moves the reader to its terminal state.
//
// Note: Reader is NOT safe for concurrent use.
type Reader struct {
	stream *value.Stream
	lastTS time.Time
	done   bool
}

// NewReader creates a record reader decoding from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{stream: value.NewStream(r)}
}

// Next advances the reader by one record.
//
// Returns:
//   - Record: the next record when ok is true
//   - bool: false when the sequence has ended (clean end of log or truncated
//     trailing record); never true again afterwards
//   - error: hard decode failure; the reader is terminal afterwards
func (r *Reader) Next() (Record, bool, error) {
	if r.done {
		return Record{}, false, nil
	}

	group, err := nextGroup(r.stream)
	if err != nil {
		r.done = true

		return Record{}, false, err
	}
	if group == nil {
		r.done = true

		return Record{}, false, nil
	}

	rec, ts, err := buildRecord(group, r.lastTS)
	if err != nil {
		r.done = true
		if errors.Is(err, errs.ErrIncompleteRecord) {
			// A writer interrupted mid-record is indistinguishable from a
			// clean end of log at this layer.
			return Record{}, false, nil
		}

		return Record{}, false, err
	}

	r.lastTS = ts

	return rec, true, nil
}

// All returns an iterator over the remaining records.
//
// The iterator yields (Record, nil) for each record and, on a hard decode
// failure, a final (zero Record, error) pair. It shares the reader's
// single-pass state: breaking out and resuming, or mixing All with Next,
// continues from the same position.
func (r *Reader) All() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		for {
			rec, ok, err := r.Next()
			if err != nil {
				yield(Record{}, err)

				return
			}
			if !ok {
				return
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}
