package cave

import (
	"encoding/binary"
	"math/rand"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Source is the random number source used by the fill stage.
type Source interface {
	// Range returns a value in [lo, hi).
	Range(lo, hi int) int
}

// randSource adapts math/rand to Source
type randSource struct {
	rng *rand.Rand
}

// NewSource creates a deterministic Source for the given seed string
func NewSource(seed string) Source {
	return &randSource{rng: rand.New(rand.NewSource(SeedValue(seed)))}
}

// Range returns a value in [lo, hi). It returns lo when the range is empty.
func (s *randSource) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo)
}

// SeedValue maps a seed string to the integer seed of the generator.
// Base-10 integers are used as-is so numeric seeds stay readable; any other
// string is hashed with BLAKE2b and the first eight bytes are used.
func SeedValue(seed string) int64 {
	trimmed := strings.TrimSpace(seed)
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return n
	}
	sum := blake2b.Sum256([]byte(seed))
	return int64(binary.LittleEndian.Uint64(sum[:8]))
}
