package bls12377

import (
	"crypto/rand"
	"testing"

	"github.com/f3rmion/blsagg/group/grouptest"
)

func TestContract(t *testing.T) {
	grouptest.TestPairing(t, New())
}

func TestSizes(t *testing.T) {
	c := New()
	if c.Name() != "bls12-377" {
		t.Errorf("Name() = %q", c.Name())
	}
	if got := c.ScalarSize(); got != 32 {
		t.Errorf("scalar size = %d, want 32", got)
	}
	if got := c.G1().PointSize(); got != 48 {
		t.Errorf("g1 size = %d, want 48", got)
	}
	if got := c.G2().PointSize(); got != 96 {
		t.Errorf("g2 size = %d, want 96", got)
	}
	if got := c.TargetSize(); got != 576 {
		t.Errorf("gt size = %d, want 576", got)
	}
}

func TestScalarMaskIsTighter(t *testing.T) {
	// r has 253 bits, so the three top bits of the first byte are cleared.
	c := New()
	b := make([]byte, 32)
	b[0] = 0xE0
	b[31] = 9
	s, ok := c.ScalarFromRandomBytes(b)
	if !ok {
		t.Fatal("masked value rejected")
	}
	if !s.Equal(c.NewScalar().SetUint64(9)) {
		t.Error("top bits were not masked")
	}
}

func BenchmarkPair(b *testing.B) {
	c := New()
	p, _ := c.G1().RandomPoint(rand.Reader)
	q, _ := c.G2().RandomPoint(rand.Reader)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Pair(p, q)
	}
}
