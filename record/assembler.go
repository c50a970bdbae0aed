package record

import "github.com/probeops/pinglog/value"

// nextGroup pulls values from the stream until it has the raw fields of one
// record. The log has no record framing: an array value (the received list)
// is always the last field of a record, so it terminates the group.
//
// Returns:
//   - []value.Value: the raw field group; nil when the stream was already
//     exhausted (clean end of log)
//   - error: underlying decode or I/O failure
//
// A group that ends because the stream ran out before an array was seen is
// returned as-is; classifying it as incomplete is the builder's job, not the
// assembler's.
func nextGroup(s *value.Stream) ([]value.Value, error) {
	var group []value.Value
	for {
		v, ok, err := s.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			if len(group) == 0 {
				return nil, nil
			}

			return group, nil
		}

		group = append(group, v)
		if v.IsArray() {
			return group, nil
		}
	}
}
