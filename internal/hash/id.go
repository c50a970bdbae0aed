package hash

import "github.com/cespare/xxhash/v2"

// ID computes the stable 64-bit identity of a log, keyed by its path.
// xxHash64 keeps IDs deterministic across runs so multi-file output stays
// attributable.
func ID(path string) uint64 {
	return xxhash.Sum64String(path)
}
