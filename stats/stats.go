// Package stats computes per-log summaries by streaming decoded records.
package stats

import (
	"time"

	"github.com/probeops/pinglog/record"
	"github.com/probeops/pinglog/value"
)

// Summary aggregates one full pass over a log's records.
//
// Received entries are the probe round-trip times in microseconds as the
// daemon wrote them; non-integer entries are counted but excluded from the
// receive-time aggregate.
type Summary struct {
	Records     int
	Packets     int           // total received entries across all records
	Lost        int           // total lost-probe count
	MaxInflight int           // highest in-flight count seen
	RecvTotal   time.Duration // sum of integer receive times
	recvSamples int

	// First and Last bound the observed time span. Both are zero when no
	// record in the log ever resolved a timestamp.
	First time.Time
	Last  time.Time
}

// LossRatio returns lost probes as a fraction of all probes accounted for
// (received plus lost). Returns 0 for an empty log.
func (s Summary) LossRatio() float64 {
	total := s.Packets + s.Lost
	if total == 0 {
		return 0
	}

	return float64(s.Lost) / float64(total)
}

// AvgRecv returns the mean receive time over all integer received entries,
// or 0 when the log carried none.
func (s Summary) AvgRecv() time.Duration {
	if s.recvSamples == 0 {
		return 0
	}

	return s.RecvTotal / time.Duration(s.recvSamples)
}

// Span returns the observed time range of the log, or ok=false when no
// record ever resolved a timestamp.
func (s Summary) Span() (first, last time.Time, ok bool) {
	if s.First.IsZero() {
		return time.Time{}, time.Time{}, false
	}

	return s.First, s.Last, true
}

// Collect drains the reader and aggregates every remaining record.
//
// Collect shares the reader's single-pass contract: it consumes records from
// the reader's current position to the end of the sequence. A hard decode
// failure aborts the pass and returns the partial summary alongside the
// error.
func Collect(r *record.Reader) (Summary, error) {
	var s Summary
	for rec, err := range r.All() {
		if err != nil {
			return s, err
		}

		s.add(rec)
	}

	return s, nil
}

func (s *Summary) add(rec record.Record) {
	s.Records++
	s.Lost += rec.Lost
	s.Packets += len(rec.Received)
	if rec.Inflight > s.MaxInflight {
		s.MaxInflight = rec.Inflight
	}

	for _, v := range rec.Received {
		if v.Kind() != value.KindInt {
			continue
		}
		us, _ := v.Int()
		s.RecvTotal += time.Duration(us) * time.Microsecond
		s.recvSamples++
	}

	if at, ok := rec.ObservedAt(); ok {
		if s.First.IsZero() || at.Before(s.First) {
			s.First = at
		}
		if at.After(s.Last) {
			s.Last = at
		}
	}
}
