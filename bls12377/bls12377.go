package bls12377

import (
	"bytes"
	"io"

	curve "github.com/consensys/gnark-crypto/ecc/bls12-377"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/f3rmion/blsagg/group"
)

var (
	g1Gen curve.G1Jac
	g2Gen curve.G2Jac
	gtGen curve.GT
)

func init() {
	var g1Aff curve.G1Affine
	var g2Aff curve.G2Affine
	g1Gen, g2Gen, g1Aff, g2Aff = curve.Generators()

	var err error
	gtGen, err = curve.Pair([]curve.G1Affine{g1Aff}, []curve.G2Affine{g2Aff})
	if err != nil {
		panic("bls12377: pairing of generators: " + err.Error())
	}
}

// BLS12377 implements [group.Pairing] for the BLS12-377 curve.
//
// BLS12377 is a zero-sized type that provides access to the curve's
// scalar field, both source groups, the target group and the optimal ate
// pairing. Create an instance with [New], &BLS12377{} or new(BLS12377).
type BLS12377 struct{}

// New returns the BLS12-377 pairing.
func New() *BLS12377 {
	return &BLS12377{}
}

// Name returns "bls12-377".
func (c *BLS12377) Name() string {
	return "bls12-377"
}

// NewScalar returns a new scalar initialized to zero.
func (c *BLS12377) NewScalar() group.Scalar {
	return &Scalar{}
}

// ScalarOne returns a new scalar initialized to one.
func (c *BLS12377) ScalarOne() group.Scalar {
	var s Scalar
	s.inner.SetOne()
	return &s
}

// RandomScalar generates a uniformly random scalar in [0, r) by rejection
// sampling over [BLS12377.ScalarFromRandomBytes].
func (c *BLS12377) RandomScalar(r io.Reader) (group.Scalar, error) {
	var buf [fr.Bytes]byte
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, err
		}
		if s, ok := c.ScalarFromRandomBytes(buf[:]); ok {
			return s, nil
		}
	}
}

// ScalarFromRandomBytes clears the bits of b above the bit length of r and
// returns the resulting scalar. It returns false when b is not 32 bytes
// long or the masked value is not below r.
func (c *BLS12377) ScalarFromRandomBytes(b []byte) (group.Scalar, bool) {
	if len(b) != fr.Bytes {
		return nil, false
	}
	var buf [fr.Bytes]byte
	copy(buf[:], b)
	buf[0] &= scalarMask

	var s Scalar
	if err := s.inner.SetBytesCanonical(buf[:]); err != nil {
		return nil, false
	}
	return &s, true
}

// ScalarFromWideBytes interprets b as a big-endian integer of any length
// and returns it reduced modulo r.
func (c *BLS12377) ScalarFromWideBytes(b []byte) group.Scalar {
	var s Scalar
	s.inner.SetBytes(b)
	return &s
}

// ScalarSize returns 32.
func (c *BLS12377) ScalarSize() int {
	return fr.Bytes
}

// G1 returns the G1 subgroup.
func (c *BLS12377) G1() group.Group {
	return &G1{}
}

// G2 returns the G2 subgroup.
func (c *BLS12377) G2() group.Group {
	return &G2{}
}

// NewTarget returns a new target element initialized to one.
func (c *BLS12377) NewTarget() group.Target {
	return newGT()
}

// RandomTarget returns e(g1, g2)^k for a uniformly random scalar k.
func (c *BLS12377) RandomTarget(r io.Reader) (group.Target, error) {
	k, err := c.RandomScalar(r)
	if err != nil {
		return nil, err
	}
	base := &GT{inner: gtGen}
	return newGT().Exp(base, k), nil
}

// TargetSize returns 576.
func (c *BLS12377) TargetSize() int {
	return curve.SizeOfGT
}

// Pair computes the optimal ate pairing e(p, q) for p in G1 and q in G2.
func (c *BLS12377) Pair(p, q group.Point) group.Target {
	a := p.(*G1Point).Affine()
	b := q.(*G2Point).Affine()
	gt, err := curve.Pair([]curve.G1Affine{a}, []curve.G2Affine{b})
	if err != nil {
		// Pair only fails on mismatched slice lengths.
		panic("bls12377: " + err.Error())
	}
	return &GT{inner: gt}
}

// G1 implements [group.Group] for the BLS12-377 G1 subgroup.
type G1 struct{}

// NewPoint returns a new point initialized to the identity.
func (g *G1) NewPoint() group.Point {
	return newG1Point()
}

// Generator returns the standard G1 generator.
func (g *G1) Generator() group.Point {
	return &G1Point{inner: g1Gen}
}

// RandomPoint returns k*g1 for a uniformly random scalar k.
func (g *G1) RandomPoint(r io.Reader) (group.Point, error) {
	k, err := New().RandomScalar(r)
	if err != nil {
		return nil, err
	}
	return newG1Point().ScalarMult(k, g.Generator()), nil
}

// PointFromDigest interprets digest as the compressed encoding of an
// x-coordinate, with the top bit of the digest selecting the sign of y.
// The resulting curve point is mapped into G1 by clearing the cofactor.
// It returns false if the candidate is not a valid x-coordinate or maps
// to the identity.
func (g *G1) PointFromDigest(digest []byte) (group.Point, bool) {
	if len(digest) != curve.SizeOfG1AffineCompressed {
		return nil, false
	}
	var buf [curve.SizeOfG1AffineCompressed]byte
	copy(buf[:], digest)
	flags := flagCompressed
	if buf[0]&0x80 != 0 {
		flags = flagLargest
	}
	buf[0] = buf[0]&coordMask | flags

	var a curve.G1Affine
	dec := curve.NewDecoder(bytes.NewReader(buf[:]), curve.NoSubgroupChecks())
	if err := dec.Decode(&a); err != nil {
		return nil, false
	}
	p := &G1Point{}
	p.inner.FromAffine(&a)
	p.inner.ClearCofactor(&p.inner)
	if p.IsIdentity() {
		return nil, false
	}
	return p, true
}

// PointSize returns 48.
func (g *G1) PointSize() int {
	return curve.SizeOfG1AffineCompressed
}

// G2 implements [group.Group] for the BLS12-377 G2 subgroup.
type G2 struct{}

// NewPoint returns a new point initialized to the identity.
func (g *G2) NewPoint() group.Point {
	return newG2Point()
}

// Generator returns the standard G2 generator.
func (g *G2) Generator() group.Point {
	return &G2Point{inner: g2Gen}
}

// RandomPoint returns k*g2 for a uniformly random scalar k.
func (g *G2) RandomPoint(r io.Reader) (group.Point, error) {
	k, err := New().RandomScalar(r)
	if err != nil {
		return nil, err
	}
	return newG2Point().ScalarMult(k, g.Generator()), nil
}

// PointFromDigest interprets digest as the compressed encoding of an Fp2
// x-coordinate (imaginary part first), with the top bit of the digest
// selecting the sign of y. The resulting twist point is mapped into G2 by
// clearing the cofactor. It returns false if the candidate is not a valid
// x-coordinate or maps to the identity.
func (g *G2) PointFromDigest(digest []byte) (group.Point, bool) {
	if len(digest) != curve.SizeOfG2AffineCompressed {
		return nil, false
	}
	var buf [curve.SizeOfG2AffineCompressed]byte
	copy(buf[:], digest)
	flags := flagCompressed
	if buf[0]&0x80 != 0 {
		flags = flagLargest
	}
	buf[0] = buf[0]&coordMask | flags
	buf[curve.SizeOfG2AffineCompressed/2] &= coordMask

	var a curve.G2Affine
	dec := curve.NewDecoder(bytes.NewReader(buf[:]), curve.NoSubgroupChecks())
	if err := dec.Decode(&a); err != nil {
		return nil, false
	}
	p := &G2Point{}
	p.inner.FromAffine(&a)
	p.inner.ClearCofactor(&p.inner)
	if p.IsIdentity() {
		return nil, false
	}
	return p, true
}

// PointSize returns 96.
func (g *G2) PointSize() int {
	return curve.SizeOfG2AffineCompressed
}
