package bls12377

import (
	"bytes"
	"fmt"
	"math/big"

	curve "github.com/consensys/gnark-crypto/ecc/bls12-377"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fp"

	"github.com/f3rmion/blsagg/group"
)

// Flag bits of the most significant byte of a compressed encoding.
const (
	flagCompressed = byte(0b100 << 5)
	flagLargest    = byte(0b101 << 5)
	flagMask       = byte(0b111 << 5)

	// coordMask keeps the bits of a big-endian base field element.
	coordMask = byte(0xFF >> (8*fp.Bytes - fp.Bits))
)

// checkFlags rejects encodings that are not in compressed form.
func checkFlags(name string, data []byte, size int) error {
	if len(data) != size {
		return fmt.Errorf("%s: got %d bytes, want %d: %w", name, len(data), size, group.ErrMalformedEncoding)
	}
	if data[0]&flagCompressed == 0 || data[0]&flagMask == flagMask {
		return fmt.Errorf("%s: flags %#02x: %w", name, data[0]&flagMask, group.ErrMalformedEncoding)
	}
	return nil
}

// G1Point represents a point of the BLS12-377 G1 subgroup.
// It implements [group.Point] by wrapping gnark-crypto's G1Jac.
//
// Points are kept in Jacobian coordinates. The identity element has Z = 0.
type G1Point struct {
	inner curve.G1Jac
}

func newG1Point() *G1Point {
	var p G1Point
	p.inner.X.SetOne()
	p.inner.Y.SetOne()
	return &p
}

// Add sets p to a + b and returns p.
func (p *G1Point) Add(a, b group.Point) group.Point {
	var r curve.G1Jac
	r.Set(&a.(*G1Point).inner)
	r.AddAssign(&b.(*G1Point).inner)
	p.inner = r
	return p
}

// Sub sets p to a - b and returns p.
func (p *G1Point) Sub(a, b group.Point) group.Point {
	var r curve.G1Jac
	r.Set(&a.(*G1Point).inner)
	r.SubAssign(&b.(*G1Point).inner)
	p.inner = r
	return p
}

// Negate sets p to -a and returns p.
func (p *G1Point) Negate(a group.Point) group.Point {
	p.inner.Neg(&a.(*G1Point).inner)
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *G1Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	k := s.(*Scalar).inner.BigInt(new(big.Int))
	p.inner.ScalarMultiplication(&q.(*G1Point).inner, k)
	return p
}

// Set copies the value of a into p and returns p.
func (p *G1Point) Set(a group.Point) group.Point {
	p.inner.Set(&a.(*G1Point).inner)
	return p
}

// Affine returns p in affine coordinates.
func (p *G1Point) Affine() curve.G1Affine {
	var a curve.G1Affine
	a.FromJacobian(&p.inner)
	return a
}

// Bytes returns the 48-byte compressed encoding of p.
func (p *G1Point) Bytes() []byte {
	a := p.Affine()
	b := a.Bytes()
	return b[:]
}

// SetBytes sets p from a 48-byte compressed encoding and returns p.
// The decoded point must lie in the prime-order subgroup.
func (p *G1Point) SetBytes(data []byte) (group.Point, error) {
	if err := checkFlags("g1", data, curve.SizeOfG1AffineCompressed); err != nil {
		return nil, err
	}
	var a curve.G1Affine
	dec := curve.NewDecoder(bytes.NewReader(data), curve.NoSubgroupChecks())
	if err := dec.Decode(&a); err != nil {
		return nil, fmt.Errorf("g1: %v: %w", err, group.ErrInvalidPoint)
	}
	if !a.IsInSubGroup() {
		return nil, fmt.Errorf("g1: not in prime-order subgroup: %w", group.ErrInvalidPoint)
	}
	p.inner.FromAffine(&a)
	return p, nil
}

// Equal reports whether p and b represent the same point.
func (p *G1Point) Equal(b group.Point) bool {
	return p.inner.Equal(&b.(*G1Point).inner)
}

// IsIdentity reports whether p is the point at infinity.
func (p *G1Point) IsIdentity() bool {
	return p.inner.Z.IsZero()
}

// G2Point represents a point of the BLS12-377 G2 subgroup, defined over
// the quadratic extension Fp2. It implements [group.Point] by wrapping
// gnark-crypto's G2Jac.
type G2Point struct {
	inner curve.G2Jac
}

func newG2Point() *G2Point {
	var p G2Point
	p.inner.X.SetOne()
	p.inner.Y.SetOne()
	return &p
}

// Add sets p to a + b and returns p.
func (p *G2Point) Add(a, b group.Point) group.Point {
	var r curve.G2Jac
	r.Set(&a.(*G2Point).inner)
	r.AddAssign(&b.(*G2Point).inner)
	p.inner = r
	return p
}

// Sub sets p to a - b and returns p.
func (p *G2Point) Sub(a, b group.Point) group.Point {
	var r curve.G2Jac
	r.Set(&a.(*G2Point).inner)
	r.SubAssign(&b.(*G2Point).inner)
	p.inner = r
	return p
}

// Negate sets p to -a and returns p.
func (p *G2Point) Negate(a group.Point) group.Point {
	p.inner.Neg(&a.(*G2Point).inner)
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *G2Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	k := s.(*Scalar).inner.BigInt(new(big.Int))
	p.inner.ScalarMultiplication(&q.(*G2Point).inner, k)
	return p
}

// Set copies the value of a into p and returns p.
func (p *G2Point) Set(a group.Point) group.Point {
	p.inner.Set(&a.(*G2Point).inner)
	return p
}

// Affine returns p in affine coordinates.
func (p *G2Point) Affine() curve.G2Affine {
	var a curve.G2Affine
	a.FromJacobian(&p.inner)
	return a
}

// Bytes returns the 96-byte compressed encoding of p, imaginary part of
// the x-coordinate first.
func (p *G2Point) Bytes() []byte {
	a := p.Affine()
	b := a.Bytes()
	return b[:]
}

// SetBytes sets p from a 96-byte compressed encoding and returns p.
// The decoded point must lie in the prime-order subgroup.
func (p *G2Point) SetBytes(data []byte) (group.Point, error) {
	if err := checkFlags("g2", data, curve.SizeOfG2AffineCompressed); err != nil {
		return nil, err
	}
	var a curve.G2Affine
	dec := curve.NewDecoder(bytes.NewReader(data), curve.NoSubgroupChecks())
	if err := dec.Decode(&a); err != nil {
		return nil, fmt.Errorf("g2: %v: %w", err, group.ErrInvalidPoint)
	}
	if !a.IsInSubGroup() {
		return nil, fmt.Errorf("g2: not in prime-order subgroup: %w", group.ErrInvalidPoint)
	}
	p.inner.FromAffine(&a)
	return p, nil
}

// Equal reports whether p and b represent the same point.
func (p *G2Point) Equal(b group.Point) bool {
	return p.inner.Equal(&b.(*G2Point).inner)
}

// IsIdentity reports whether p is the point at infinity.
func (p *G2Point) IsIdentity() bool {
	return p.inner.Z.IsZero()
}
