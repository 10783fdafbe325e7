package bls12377

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/f3rmion/blsagg/group"
)

// Scalar represents an element of the BLS12-377 scalar field Fr.
// It implements [group.Scalar] by wrapping gnark-crypto's fr.Element,
// which keeps values reduced modulo r in Montgomery form.
type Scalar struct {
	inner fr.Element
}

// Add sets s to a + b (mod r) and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	s.inner.Add(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Sub sets s to a - b (mod r) and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	s.inner.Sub(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Mul sets s to a * b (mod r) and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	s.inner.Mul(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Negate sets s to -a (mod r) and returns s.
func (s *Scalar) Negate(a group.Scalar) group.Scalar {
	s.inner.Neg(&a.(*Scalar).inner)
	return s
}

// Invert sets s to a^(-1) (mod r) and returns s.
// Returns an error if a is zero, as zero has no multiplicative inverse.
func (s *Scalar) Invert(a group.Scalar) (group.Scalar, error) {
	aScalar := a.(*Scalar)
	if aScalar.IsZero() {
		return nil, errors.New("cannot invert zero scalar")
	}
	s.inner.Inverse(&aScalar.inner)
	return s, nil
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	s.inner.Set(&a.(*Scalar).inner)
	return s
}

// SetUint64 sets s to v and returns s.
func (s *Scalar) SetUint64(v uint64) group.Scalar {
	s.inner.SetUint64(v)
	return s
}

// Bytes returns the scalar as a 32-byte big-endian representation.
func (s *Scalar) Bytes() []byte {
	b := s.inner.Bytes()
	return b[:]
}

// SetBytes sets s from a 32-byte big-endian encoding and returns s.
// Values not below r are rejected rather than reduced.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	if len(data) != fr.Bytes {
		return nil, fmt.Errorf("scalar: got %d bytes, want %d: %w", len(data), fr.Bytes, group.ErrMalformedEncoding)
	}
	if err := s.inner.SetBytesCanonical(data); err != nil {
		return nil, fmt.Errorf("scalar: %w", group.ErrInvalidScalar)
	}
	return s, nil
}

// Bits returns the canonical integer value of s as a bit set whose bit i
// is the coefficient of 2^i.
func (s *Scalar) Bits() *bitset.BitSet {
	words := s.inner.Bits()
	return bitset.From(words[:])
}

// Equal reports whether s and b represent the same scalar value.
func (s *Scalar) Equal(b group.Scalar) bool {
	return s.inner.Equal(&b.(*Scalar).inner)
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.inner.IsZero()
}

// Zeroize overwrites s with zero.
func (s *Scalar) Zeroize() {
	s.inner.SetZero()
}

// scalarMask clears the bits of the top byte that lie above the bit length of r.
const scalarMask = byte(0xFF >> (8*fr.Bytes - fr.Bits))
