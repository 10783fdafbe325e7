package bls12377

import (
	"fmt"

	curve "github.com/consensys/gnark-crypto/ecc/bls12-377"

	"github.com/f3rmion/blsagg/group"
)

// GT represents an element of the BLS12-377 target group, the order-r
// subgroup of Fp12*. It implements [group.Target] by wrapping
// gnark-crypto's GT.
type GT struct {
	inner curve.GT
}

func newGT() *GT {
	var t GT
	t.inner.SetOne()
	return &t
}

// Combine sets t to a * b and returns t.
func (t *GT) Combine(a, b group.Target) group.Target {
	t.inner.Mul(&a.(*GT).inner, &b.(*GT).inner)
	return t
}

// Exp sets t to a^s and returns t.
//
// The exponent is consumed one bit at a time from the least significant
// end: the base is squared once per bit position and multiplied into the
// accumulator at every set bit.
func (t *GT) Exp(a group.Target, s group.Scalar) group.Target {
	base := a.(*GT).inner
	var acc curve.GT
	acc.SetOne()

	bits := s.Bits()
	var pos uint
	for i, ok := bits.NextSet(0); ok; i, ok = bits.NextSet(i + 1) {
		for ; pos < i; pos++ {
			base.Square(&base)
		}
		acc.Mul(&acc, &base)
	}
	t.inner = acc
	return t
}

// Set copies the value of a into t and returns t.
func (t *GT) Set(a group.Target) group.Target {
	t.inner.Set(&a.(*GT).inner)
	return t
}

// Bytes returns the 576-byte encoding of t.
func (t *GT) Bytes() []byte {
	b := t.inner.Bytes()
	return b[:]
}

// SetBytes sets t from its 576-byte encoding and returns t.
// The element must lie in the order-r subgroup.
func (t *GT) SetBytes(data []byte) (group.Target, error) {
	if len(data) != curve.SizeOfGT {
		return nil, fmt.Errorf("gt: got %d bytes, want %d: %w", len(data), curve.SizeOfGT, group.ErrMalformedEncoding)
	}
	var v curve.GT
	if err := v.SetBytes(data); err != nil {
		return nil, fmt.Errorf("gt: %v: %w", err, group.ErrInvalidPoint)
	}
	if v.IsZero() || !v.IsInSubGroup() {
		return nil, fmt.Errorf("gt: not in order-r subgroup: %w", group.ErrInvalidPoint)
	}
	t.inner = v
	return t, nil
}

// Equal reports whether t and b are the same element.
func (t *GT) Equal(b group.Target) bool {
	return t.inner.Equal(&b.(*GT).inner)
}

// IsOne reports whether t is the identity of GT.
func (t *GT) IsOne() bool {
	return t.inner.IsOne()
}
