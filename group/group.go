package group

import (
	"io"

	"github.com/bits-and-blooms/bitset"
)

// Scalar represents an element of the scalar field Fr shared by the three
// groups of a pairing. Scalars are integers modulo the prime group order r
// and are used as multipliers for points and as exponents for [Target].
//
// All arithmetic methods use a mutable receiver pattern: they modify
// the receiver, store the result in it, and return it. This allows for
// efficient method chaining while minimizing memory allocations.
//
// Implementations must ensure all operations produce results in the
// valid range [0, r).
type Scalar interface {
	// Add sets the receiver to a+b and returns it.
	Add(a, b Scalar) Scalar
	// Sub sets the receiver to a-b and returns it.
	Sub(a, b Scalar) Scalar
	// Mul sets the receiver to a*b and returns it.
	Mul(a, b Scalar) Scalar
	// Negate sets the receiver to -a and returns it.
	Negate(a Scalar) Scalar
	// Invert sets the receiver to a^{-1} and returns it.
	// Returns an error if a is zero.
	Invert(a Scalar) (Scalar, error)
	// Set sets the receiver to a and returns it.
	Set(a Scalar) Scalar
	// SetUint64 sets the receiver to v and returns it.
	SetUint64(v uint64) Scalar
	// Bytes returns the fixed-width big-endian encoding of the scalar.
	Bytes() []byte
	// SetBytes sets the receiver from its canonical encoding and returns it.
	// Returns an error wrapping [ErrMalformedEncoding] if the length is
	// wrong, or [ErrInvalidScalar] if the value is not below r.
	SetBytes(data []byte) (Scalar, error)
	// Bits returns the bits of the canonical integer, least significant first.
	Bits() *bitset.BitSet
	// Equal reports whether the receiver equals b.
	Equal(b Scalar) bool
	// IsZero reports whether the receiver is zero.
	IsZero() bool
	// Zeroize overwrites the receiver with zero.
	Zeroize()
}

// Point represents an element of G1 or G2, a prime-order subgroup of a
// pairing-friendly elliptic curve. Points support addition, subtraction,
// negation, and scalar multiplication.
//
// Like [Scalar], all arithmetic methods use a mutable receiver pattern
// for efficiency. Implementations keep points in a projective form suited
// to repeated addition and convert to affine only for encoding.
//
// The identity element (point at infinity) is the additive identity:
// P + Identity = P for all points P. Mixing points of different groups in
// one call is a programming error.
type Point interface {
	// Add sets the receiver to a+b and returns it.
	Add(a, b Point) Point
	// Sub sets the receiver to a-b and returns it.
	Sub(a, b Point) Point
	// Negate sets the receiver to -a and returns it.
	Negate(a Point) Point
	// ScalarMult sets the receiver to s*p and returns it.
	ScalarMult(s Scalar, p Point) Point
	// Set sets the receiver to a and returns it.
	Set(a Point) Point
	// Bytes returns the canonical compressed affine encoding of the point.
	Bytes() []byte
	// SetBytes sets the receiver from a compressed encoding and returns it.
	// Returns an error wrapping [ErrMalformedEncoding] for a wrong length
	// or flag byte, and [ErrInvalidPoint] when the bytes do not describe a
	// point of the prime-order subgroup.
	SetBytes(data []byte) (Point, error)
	// Equal reports whether the receiver equals b.
	Equal(b Point) bool
	// IsIdentity reports whether the receiver is the identity element.
	IsIdentity() bool
}

// Target represents an element of GT, the multiplicative order-r subgroup
// of the extension field that the pairing maps into.
//
// GT is written multiplicatively, so its group operation is named Combine
// rather than Add, and raising to a scalar power is Exp.
type Target interface {
	// Combine sets the receiver to a*b (the GT group operation) and returns it.
	Combine(a, b Target) Target
	// Exp sets the receiver to a^s and returns it. Implementations use
	// square-and-multiply over s.Bits(), least significant bit first.
	Exp(a Target, s Scalar) Target
	// Set sets the receiver to a and returns it.
	Set(a Target) Target
	// Bytes returns the fixed-width encoding of the element.
	Bytes() []byte
	// SetBytes sets the receiver from its encoding and returns it, checking
	// that the element lies in the order-r subgroup.
	SetBytes(data []byte) (Target, error)
	// Equal reports whether the receiver equals b.
	Equal(b Target) bool
	// IsOne reports whether the receiver is the identity of GT.
	IsOne() bool
}

// Group is a factory for the points of one source group (G1 or G2) of a
// pairing.
type Group interface {
	// NewPoint returns a new identity point.
	NewPoint() Point
	// Generator returns the group's fixed base point.
	Generator() Point
	// RandomPoint returns a point drawn uniformly from the subgroup.
	RandomPoint(r io.Reader) (Point, error)
	// PointFromDigest makes one hash-to-group attempt: it interprets digest
	// as a candidate x-coordinate and returns the resulting subgroup point,
	// or false when the candidate does not lie on the curve. digest must be
	// PointSize bytes long.
	PointFromDigest(digest []byte) (Point, bool)
	// PointSize returns the length of the canonical point encoding.
	PointSize() int
}

// Pairing defines a pairing-friendly curve: the scalar field, the two
// source groups, the target group and the bilinear map between them.
//
// A Pairing implementation encapsulates all curve-specific details, allowing
// the signature scheme to be generic over different curves.
//
// Example usage:
//
//	c := bls12381.New()
//	sk, _ := c.RandomScalar(rand.Reader)
//	pk := c.G1().NewPoint().ScalarMult(sk, c.G1().Generator())
//	gt := c.Pair(pk, c.G2().Generator())
type Pairing interface {
	// Name returns the curve name, for example "bls12-381".
	Name() string
	// NewScalar returns a new zero scalar.
	NewScalar() Scalar
	// ScalarOne returns a new scalar set to one.
	ScalarOne() Scalar
	// RandomScalar returns a scalar drawn uniformly from [0, r).
	RandomScalar(r io.Reader) (Scalar, error)
	// ScalarFromRandomBytes masks b to the bit length of r and returns the
	// resulting scalar, or false when the masked value is not below r.
	ScalarFromRandomBytes(b []byte) (Scalar, bool)
	// ScalarFromWideBytes interprets b as a big-endian integer and reduces
	// it modulo r.
	ScalarFromWideBytes(b []byte) Scalar
	// ScalarSize returns the length of the canonical scalar encoding.
	ScalarSize() int
	// G1 returns the first source group.
	G1() Group
	// G2 returns the second source group.
	G2() Group
	// NewTarget returns the identity of GT.
	NewTarget() Target
	// RandomTarget returns a uniformly random element of GT.
	RandomTarget(r io.Reader) (Target, error)
	// TargetSize returns the length of the GT encoding.
	TargetSize() int
	// Pair computes e(p, q) for p in G1 and q in G2.
	Pair(p, q Point) Target
}
