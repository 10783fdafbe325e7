// Package grouptest provides contract tests for implementations of
// [group.Pairing].
//
// A binding package runs the whole suite from a single test:
//
//	func TestContract(t *testing.T) {
//		grouptest.TestPairing(t, bls12381.New())
//	}
package grouptest

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/f3rmion/blsagg/group"
)

// TestPairing runs every contract test against c.
func TestPairing(t *testing.T, c group.Pairing) {
	t.Run("Scalar", func(t *testing.T) { TestScalar(t, c) })
	t.Run("G1", func(t *testing.T) { TestGroup(t, c, c.G1()) })
	t.Run("G2", func(t *testing.T) { TestGroup(t, c, c.G2()) })
	t.Run("Target", func(t *testing.T) { TestTarget(t, c) })
	t.Run("Bilinearity", func(t *testing.T) { TestBilinearity(t, c) })
}

func mustScalar(t *testing.T, c group.Pairing) group.Scalar {
	t.Helper()
	s, err := c.RandomScalar(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func mustPoint(t *testing.T, g group.Group) group.Point {
	t.Helper()
	p, err := g.RandomPoint(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

// TestScalar checks field arithmetic and the scalar encoding.
func TestScalar(t *testing.T, c group.Pairing) {
	t.Run("AddSub", func(t *testing.T) {
		a := mustScalar(t, c)
		b := mustScalar(t, c)

		sum := c.NewScalar().Add(a, b)
		diff := c.NewScalar().Sub(sum, b)

		if !diff.Equal(a) {
			t.Error("(a+b)-b != a")
		}
	})

	t.Run("MulInvert", func(t *testing.T) {
		a := mustScalar(t, c)
		aInv, err := c.NewScalar().Invert(a)
		if err != nil {
			t.Fatal(err)
		}
		if !c.NewScalar().Mul(a, aInv).Equal(c.ScalarOne()) {
			t.Error("a*a^-1 != 1")
		}
	})

	t.Run("InvertZeroFails", func(t *testing.T) {
		if _, err := c.NewScalar().Invert(c.NewScalar()); err == nil {
			t.Error("expected error inverting zero")
		}
	})

	t.Run("Negate", func(t *testing.T) {
		a := mustScalar(t, c)
		negA := c.NewScalar().Negate(a)
		if !c.NewScalar().Add(a, negA).IsZero() {
			t.Error("a + (-a) != 0")
		}
	})

	t.Run("SetUint64", func(t *testing.T) {
		two := c.NewScalar().Add(c.ScalarOne(), c.ScalarOne())
		if !c.NewScalar().SetUint64(2).Equal(two) {
			t.Error("SetUint64(2) != 1+1")
		}
	})

	t.Run("Bits", func(t *testing.T) {
		bits := c.NewScalar().SetUint64(0b1011).Bits()
		for i, want := range []bool{true, true, false, true, false} {
			if bits.Test(uint(i)) != want {
				t.Errorf("bit %d = %v, want %v", i, !want, want)
			}
		}
		if c.NewScalar().Bits().Any() {
			t.Error("zero scalar has set bits")
		}
	})

	t.Run("Zeroize", func(t *testing.T) {
		a := mustScalar(t, c)
		a.Zeroize()
		if !a.IsZero() {
			t.Error("scalar not zero after Zeroize")
		}
	})

	t.Run("BytesRoundtrip", func(t *testing.T) {
		a := mustScalar(t, c)
		b := a.Bytes()
		if len(b) != c.ScalarSize() {
			t.Fatalf("encoding is %d bytes, want %d", len(b), c.ScalarSize())
		}
		restored, err := c.NewScalar().SetBytes(b)
		if err != nil {
			t.Fatal(err)
		}
		if !restored.Equal(a) {
			t.Error("scalar bytes roundtrip failed")
		}
	})

	t.Run("SetBytesRejectsNonCanonical", func(t *testing.T) {
		b := bytes.Repeat([]byte{0xFF}, c.ScalarSize())
		_, err := c.NewScalar().SetBytes(b)
		if !errors.Is(err, group.ErrInvalidScalar) {
			t.Errorf("got %v, want ErrInvalidScalar", err)
		}
	})

	t.Run("SetBytesRejectsWrongLength", func(t *testing.T) {
		_, err := c.NewScalar().SetBytes(make([]byte, c.ScalarSize()+1))
		if !errors.Is(err, group.ErrMalformedEncoding) {
			t.Errorf("got %v, want ErrMalformedEncoding", err)
		}
	})

	t.Run("ScalarFromRandomBytes", func(t *testing.T) {
		if _, ok := c.ScalarFromRandomBytes(bytes.Repeat([]byte{0xFF}, c.ScalarSize())); ok {
			t.Error("all-ones input should exceed the group order")
		}
		small := make([]byte, c.ScalarSize())
		small[len(small)-1] = 7
		s, ok := c.ScalarFromRandomBytes(small)
		if !ok {
			t.Fatal("small value rejected")
		}
		if !s.Equal(c.NewScalar().SetUint64(7)) {
			t.Error("ScalarFromRandomBytes(7) != 7")
		}
	})

	t.Run("ScalarFromWideBytes", func(t *testing.T) {
		a := mustScalar(t, c)
		wide := append(make([]byte, 16), a.Bytes()...)
		if !c.ScalarFromWideBytes(wide).Equal(a) {
			t.Error("leading zeros changed the reduced value")
		}
	})
}

// TestGroup checks point arithmetic, encodings and digest mapping for g.
func TestGroup(t *testing.T, c group.Pairing, g group.Group) {
	t.Run("NewPointIsIdentity", func(t *testing.T) {
		if !g.NewPoint().IsIdentity() {
			t.Error("NewPoint is not the identity")
		}
		if g.Generator().IsIdentity() {
			t.Error("generator is the identity")
		}
	})

	t.Run("AddIdentity", func(t *testing.T) {
		p := mustPoint(t, g)
		if !g.NewPoint().Add(p, g.NewPoint()).Equal(p) {
			t.Error("P + O != P")
		}
	})

	t.Run("AddSub", func(t *testing.T) {
		p := mustPoint(t, g)
		q := mustPoint(t, g)
		sum := g.NewPoint().Add(p, q)
		if !g.NewPoint().Sub(sum, q).Equal(p) {
			t.Error("(P+Q)-Q != P")
		}
	})

	t.Run("AddAliased", func(t *testing.T) {
		p := mustPoint(t, g)
		double := g.NewPoint().Add(p, p)
		acc := g.NewPoint().Set(p)
		acc.Add(acc, acc)
		if !acc.Equal(double) {
			t.Error("aliased addition differs")
		}
	})

	t.Run("Negate", func(t *testing.T) {
		p := mustPoint(t, g)
		negP := g.NewPoint().Negate(p)
		if !g.NewPoint().Add(p, negP).IsIdentity() {
			t.Error("P + (-P) != O")
		}
	})

	t.Run("ScalarMultDistributes", func(t *testing.T) {
		a := mustScalar(t, c)
		b := mustScalar(t, c)
		gen := g.Generator()

		// (a+b)G = aG + bG
		lhs := g.NewPoint().ScalarMult(c.NewScalar().Add(a, b), gen)
		rhs := g.NewPoint().Add(g.NewPoint().ScalarMult(a, gen), g.NewPoint().ScalarMult(b, gen))
		if !lhs.Equal(rhs) {
			t.Error("(a+b)G != aG + bG")
		}
	})

	t.Run("ScalarMultByZero", func(t *testing.T) {
		if !g.NewPoint().ScalarMult(c.NewScalar(), g.Generator()).IsIdentity() {
			t.Error("0*G != O")
		}
	})

	t.Run("BytesRoundtrip", func(t *testing.T) {
		for _, p := range []group.Point{mustPoint(t, g), g.Generator(), g.NewPoint()} {
			b := p.Bytes()
			if len(b) != g.PointSize() {
				t.Fatalf("encoding is %d bytes, want %d", len(b), g.PointSize())
			}
			restored, err := g.NewPoint().SetBytes(b)
			if err != nil {
				t.Fatal(err)
			}
			if !restored.Equal(p) {
				t.Error("point bytes roundtrip failed")
			}
		}
	})

	t.Run("SetBytesRejectsWrongLength", func(t *testing.T) {
		b := g.Generator().Bytes()
		for _, data := range [][]byte{nil, b[:len(b)-1], append(b, 0)} {
			_, err := g.NewPoint().SetBytes(data)
			if !errors.Is(err, group.ErrMalformedEncoding) {
				t.Errorf("len %d: got %v, want ErrMalformedEncoding", len(data), err)
			}
		}
	})

	t.Run("SetBytesRejectsUncompressedFlag", func(t *testing.T) {
		b := g.Generator().Bytes()
		b[0] &^= 0x80
		_, err := g.NewPoint().SetBytes(b)
		if !errors.Is(err, group.ErrMalformedEncoding) {
			t.Errorf("got %v, want ErrMalformedEncoding", err)
		}
	})

	t.Run("SetBytesRejectsOffCurve", func(t *testing.T) {
		// Try x-coordinates until one has no point on the curve.
		for x := byte(0); x < 64; x++ {
			b := make([]byte, g.PointSize())
			b[0] = 0x80
			b[len(b)-1] = x
			if _, ok := g.PointFromDigest(b); ok {
				continue
			}
			_, err := g.NewPoint().SetBytes(b)
			if !errors.Is(err, group.ErrInvalidPoint) {
				t.Errorf("got %v, want ErrInvalidPoint", err)
			}
			return
		}
		t.Skip("no off-curve x-coordinate found")
	})

	t.Run("PointFromDigest", func(t *testing.T) {
		found := 0
		for i := 0; i < 32; i++ {
			d := make([]byte, g.PointSize())
			if _, err := rand.Read(d); err != nil {
				t.Fatal(err)
			}
			p, ok := g.PointFromDigest(d)
			if !ok {
				continue
			}
			found++
			if p.IsIdentity() {
				t.Error("digest mapped to identity")
			}
			again, _ := g.PointFromDigest(d)
			if !again.Equal(p) {
				t.Error("digest mapping is not deterministic")
			}
			// Mapped points are subgroup elements and must survive decoding.
			if _, err := g.NewPoint().SetBytes(p.Bytes()); err != nil {
				t.Errorf("mapped point rejected: %v", err)
			}
		}
		if found == 0 {
			t.Error("no digest out of 32 mapped to a point")
		}
	})

	t.Run("PointFromDigestWrongLength", func(t *testing.T) {
		if _, ok := g.PointFromDigest(make([]byte, g.PointSize()-1)); ok {
			t.Error("short digest accepted")
		}
	})
}

// TestTarget checks the target group operations and encoding.
func TestTarget(t *testing.T, c group.Pairing) {
	mustTarget := func(t *testing.T) group.Target {
		t.Helper()
		x, err := c.RandomTarget(rand.Reader)
		if err != nil {
			t.Fatal(err)
		}
		return x
	}

	t.Run("NewTargetIsOne", func(t *testing.T) {
		if !c.NewTarget().IsOne() {
			t.Error("NewTarget is not one")
		}
	})

	t.Run("CombineOne", func(t *testing.T) {
		x := mustTarget(t)
		if !c.NewTarget().Combine(x, c.NewTarget()).Equal(x) {
			t.Error("x * 1 != x")
		}
	})

	t.Run("ExpZeroAndOne", func(t *testing.T) {
		x := mustTarget(t)
		if !c.NewTarget().Exp(x, c.NewScalar()).IsOne() {
			t.Error("x^0 != 1")
		}
		if !c.NewTarget().Exp(x, c.ScalarOne()).Equal(x) {
			t.Error("x^1 != x")
		}
	})

	t.Run("ExpSmall", func(t *testing.T) {
		x := mustTarget(t)
		want := c.NewTarget()
		for i := 0; i < 5; i++ {
			want.Combine(want, x)
		}
		if !c.NewTarget().Exp(x, c.NewScalar().SetUint64(5)).Equal(want) {
			t.Error("x^5 != x*x*x*x*x")
		}
	})

	t.Run("ExpAddsExponents", func(t *testing.T) {
		x := mustTarget(t)
		a := mustScalar(t, c)
		b := mustScalar(t, c)
		lhs := c.NewTarget().Exp(x, c.NewScalar().Add(a, b))
		rhs := c.NewTarget().Combine(c.NewTarget().Exp(x, a), c.NewTarget().Exp(x, b))
		if !lhs.Equal(rhs) {
			t.Error("x^(a+b) != x^a * x^b")
		}
	})

	t.Run("BytesRoundtrip", func(t *testing.T) {
		x := mustTarget(t)
		b := x.Bytes()
		if len(b) != c.TargetSize() {
			t.Fatalf("encoding is %d bytes, want %d", len(b), c.TargetSize())
		}
		restored, err := c.NewTarget().SetBytes(b)
		if err != nil {
			t.Fatal(err)
		}
		if !restored.Equal(x) {
			t.Error("target bytes roundtrip failed")
		}
	})

	t.Run("SetBytesRejectsZero", func(t *testing.T) {
		_, err := c.NewTarget().SetBytes(make([]byte, c.TargetSize()))
		if !errors.Is(err, group.ErrInvalidPoint) {
			t.Errorf("got %v, want ErrInvalidPoint", err)
		}
	})

	t.Run("SetBytesRejectsWrongLength", func(t *testing.T) {
		_, err := c.NewTarget().SetBytes(make([]byte, c.TargetSize()-1))
		if !errors.Is(err, group.ErrMalformedEncoding) {
			t.Errorf("got %v, want ErrMalformedEncoding", err)
		}
	})
}

// TestBilinearity checks e(aP, bQ) = e(P, Q)^(ab) and non-degeneracy.
func TestBilinearity(t *testing.T, c group.Pairing) {
	g1, g2 := c.G1().Generator(), c.G2().Generator()

	t.Run("NonDegenerate", func(t *testing.T) {
		if c.Pair(g1, g2).IsOne() {
			t.Error("e(g1, g2) == 1")
		}
	})

	t.Run("Identity", func(t *testing.T) {
		if !c.Pair(c.G1().NewPoint(), g2).IsOne() {
			t.Error("e(O, g2) != 1")
		}
		if !c.Pair(g1, c.G2().NewPoint()).IsOne() {
			t.Error("e(g1, O) != 1")
		}
	})

	t.Run("Bilinear", func(t *testing.T) {
		a := mustScalar(t, c)
		b := mustScalar(t, c)
		aP := c.G1().NewPoint().ScalarMult(a, g1)
		bQ := c.G2().NewPoint().ScalarMult(b, g2)

		lhs := c.Pair(aP, bQ)
		rhs := c.NewTarget().Exp(c.Pair(g1, g2), c.NewScalar().Mul(a, b))
		if !lhs.Equal(rhs) {
			t.Error("e(aP, bQ) != e(P, Q)^(ab)")
		}
	})

	t.Run("MovesScalar", func(t *testing.T) {
		a := mustScalar(t, c)
		lhs := c.Pair(c.G1().NewPoint().ScalarMult(a, g1), g2)
		rhs := c.Pair(g1, c.G2().NewPoint().ScalarMult(a, g2))
		if !lhs.Equal(rhs) {
			t.Error("e(aP, Q) != e(P, aQ)")
		}
	})

	t.Run("AdditiveInFirstArgument", func(t *testing.T) {
		p := mustPoint(t, c.G1())
		q := mustPoint(t, c.G1())
		lhs := c.Pair(c.G1().NewPoint().Add(p, q), g2)
		rhs := c.NewTarget().Combine(c.Pair(p, g2), c.Pair(q, g2))
		if !lhs.Equal(rhs) {
			t.Error("e(P+Q, R) != e(P, R) * e(Q, R)")
		}
	})
}
