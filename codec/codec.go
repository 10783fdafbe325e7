package codec

import (
	"fmt"

	"github.com/f3rmion/blsagg/group"
)

// Kind identifies one of the four encoded element types.
type Kind int

const (
	KindScalar Kind = iota
	KindG1
	KindG2
	KindGT
)

// String returns the kind's short name.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindG1:
		return "g1"
	case KindG2:
		return "g2"
	case KindGT:
		return "gt"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Size returns the fixed encoded width of kind on curve c, or 0 for an
// unknown kind.
func Size(c group.Pairing, kind Kind) int {
	switch kind {
	case KindScalar:
		return c.ScalarSize()
	case KindG1:
		return c.G1().PointSize()
	case KindG2:
		return c.G2().PointSize()
	case KindGT:
		return c.TargetSize()
	default:
		return 0
	}
}

// EncodeScalar returns the canonical big-endian encoding of s.
func EncodeScalar(s group.Scalar) []byte {
	return s.Bytes()
}

// EncodePoint returns the canonical compressed encoding of p.
func EncodePoint(p group.Point) []byte {
	return p.Bytes()
}

// EncodeTarget returns the canonical encoding of t.
func EncodeTarget(t group.Target) []byte {
	return t.Bytes()
}

func checkLength(kind Kind, b []byte, want int) error {
	if len(b) != want {
		return fmt.Errorf("codec: %s: got %d bytes, want %d: %w", kind, len(b), want, group.ErrMalformedEncoding)
	}
	return nil
}

// DecodeScalar reads a canonical scalar of curve c.
// Values not below the group order are rejected with [group.ErrInvalidScalar].
func DecodeScalar(c group.Pairing, b []byte) (group.Scalar, error) {
	if err := checkLength(KindScalar, b, c.ScalarSize()); err != nil {
		return nil, err
	}
	s, err := c.NewScalar().SetBytes(b)
	if err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	return s, nil
}

// DecodePoint reads a compressed point of the group selected by kind,
// which must be KindG1 or KindG2. The length is checked before any
// reconstruction is attempted, and the result is guaranteed to lie in the
// prime-order subgroup.
func DecodePoint(c group.Pairing, kind Kind, b []byte) (group.Point, error) {
	var g group.Group
	switch kind {
	case KindG1:
		g = c.G1()
	case KindG2:
		g = c.G2()
	default:
		return nil, fmt.Errorf("codec: %s is not a point kind", kind)
	}
	if err := checkLength(kind, b, g.PointSize()); err != nil {
		return nil, err
	}
	p, err := g.NewPoint().SetBytes(b)
	if err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	return p, nil
}

// DecodeTarget reads a GT element of curve c, checking that it lies in the
// order-r subgroup.
func DecodeTarget(c group.Pairing, b []byte) (group.Target, error) {
	if err := checkLength(KindGT, b, c.TargetSize()); err != nil {
		return nil, err
	}
	t, err := c.NewTarget().SetBytes(b)
	if err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	return t, nil
}
