package record

import (
	"fmt"
	"time"

	"github.com/probeops/pinglog/value"
)

// Record is one structured measurement decoded from the log.
//
// Timestamp is the resolved wall-clock base of the record: the record's own
// explicit timestamp if it carried one, otherwise the timestamp inherited
// from the nearest preceding record that had one. The zero time means no
// record so far has ever carried a timestamp.
type Record struct {
	Timestamp time.Time
	Elapsed   time.Duration
	Inflight  int
	Lost      int
	Received  []value.Value
}

// HasTimestamp reports whether the record has a resolved timestamp,
// explicit or inherited.
func (r Record) HasTimestamp() bool {
	return !r.Timestamp.IsZero()
}

// ObservedAt returns the absolute point in time the measurement was taken:
// the resolved timestamp plus the elapsed duration. ok is false when no
// timestamp has ever been seen on or before this record.
func (r Record) ObservedAt() (time.Time, bool) {
	if r.Timestamp.IsZero() {
		return time.Time{}, false
	}

	return r.Timestamp.Add(r.Elapsed), true
}

// String renders the record as a single human-readable line:
// time of observation (or "unknown"), in-flight count, lost count and the
// received sequence.
func (r Record) String() string {
	observed := "unknown"
	if at, ok := r.ObservedAt(); ok {
		observed = at.Format("15:04:05.000000")
	}

	return fmt.Sprintf("%s inflight=%d lost=%d recv=%s",
		observed, r.Inflight, r.Lost, value.NewArray(r.Received...))
}
