package hashtogroup

import (
	"fmt"

	"github.com/f3rmion/blsagg/group"
)

// DefaultMaxAttempts bounds the try-and-increment loop. The counter is a
// single byte, so this is also the largest meaningful value.
const DefaultMaxAttempts = 256

// Mapper hashes messages to points with try-and-increment under a fixed
// domain tag.
type Mapper struct {
	// Hasher expands the tagged input into a candidate digest.
	Hasher Hasher

	// DomainTag separates this mapping from hashes used elsewhere.
	DomainTag []byte

	// MaxAttempts is the number of counters tried before giving up.
	// Values outside (0, 256] are treated as DefaultMaxAttempts.
	MaxAttempts int
}

// New creates a Mapper with the given domain tag and the default
// BLAKE2b hasher.
func New(tag string) *Mapper {
	return NewWithHasher(tag, &Blake2bHasher{})
}

// NewWithHasher creates a Mapper with the given domain tag and hasher.
func NewWithHasher(tag string, h Hasher) *Mapper {
	return &Mapper{
		Hasher:      h,
		DomainTag:   []byte(tag),
		MaxAttempts: DefaultMaxAttempts,
	}
}

// Digest returns the n-byte candidate for the given counter:
// Expand(n, DomainTag || counter || msg).
func (m *Mapper) Digest(counter uint8, msg []byte, n int) []byte {
	return m.Hasher.Expand(n, m.DomainTag, []byte{counter}, msg)
}

// Map deterministically hashes msg to a non-identity point of g.
//
// Each attempt expands a fresh digest and asks g to decompress it. About
// half of all candidates lie on the curve, so exhausting MaxAttempts means
// the hasher or the group binding is broken; Map panics in that case.
func (m *Mapper) Map(g group.Group, msg []byte) group.Point {
	attempts := m.MaxAttempts
	if attempts <= 0 || attempts > DefaultMaxAttempts {
		attempts = DefaultMaxAttempts
	}
	size := g.PointSize()
	for i := 0; i < attempts; i++ {
		if p, ok := g.PointFromDigest(m.Digest(uint8(i), msg, size)); ok {
			return p
		}
	}
	panic(fmt.Sprintf("bug: hashtogroup: no point found for tag %q after %d attempts", m.DomainTag, attempts))
}
