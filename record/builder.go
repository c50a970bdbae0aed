package record

import (
	"fmt"
	"time"

	"github.com/probeops/pinglog/errs"
	"github.com/probeops/pinglog/value"
)

// recordFieldCount is the number of fields after the optional leading
// timestamp: elapsed microseconds, in-flight count, lost count, received list.
const recordFieldCount = 4

// timestampLayouts are the accepted encodings of the explicit timestamp
// string. The daemon writes RFC 3339 with microseconds and a numeric offset;
// older logs carry the offset-less ISO-8601 form.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", errs.ErrMalformedTimestamp, s)
}

// buildRecord interprets one raw field group into a Record.
//
// A leading string is the record's explicit timestamp; it becomes the new
// carried timestamp. Without one the record inherits last unchanged (which
// may be the zero time if no timestamp has ever been seen).
//
// Returns errs.ErrIncompleteRecord when the group does not contain exactly
// the four required fields after the optional timestamp. This is the
// expected shape of a half-written trailing record, not a corruption report.
func buildRecord(group []value.Value, last time.Time) (Record, time.Time, error) {
	ts := last
	if len(group) > 0 && group[0].IsString() {
		str, _ := group[0].Str()
		parsed, err := parseTimestamp(str)
		if err != nil {
			return Record{}, last, err
		}
		ts = parsed
		group = group[1:]
	}

	if len(group) != recordFieldCount {
		return Record{}, last, fmt.Errorf("%w: %d of %d fields",
			errs.ErrIncompleteRecord, len(group), recordFieldCount)
	}

	elapsedUs, err := group[0].Int()
	if err != nil {
		return Record{}, last, fmt.Errorf("elapsed field: %w", err)
	}
	inflight, err := group[1].Int()
	if err != nil {
		return Record{}, last, fmt.Errorf("inflight field: %w", err)
	}
	lost, err := group[2].Int()
	if err != nil {
		return Record{}, last, fmt.Errorf("lost field: %w", err)
	}
	received, err := group[3].Array()
	if err != nil {
		return Record{}, last, fmt.Errorf("received field: %w", err)
	}

	rec := Record{
		Timestamp: ts,
		Elapsed:   time.Duration(elapsedUs) * time.Microsecond,
		Inflight:  int(inflight),
		Lost:      int(lost),
		Received:  received,
	}

	return rec, ts, nil
}
