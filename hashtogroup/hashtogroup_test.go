package hashtogroup

import (
	"bytes"
	"crypto/sha256"
	"strings"
	"testing"

	"github.com/f3rmion/blsagg/bls12377"
	"github.com/f3rmion/blsagg/bls12381"
	"github.com/f3rmion/blsagg/group"
)

func hashers() map[string]Hasher {
	return map[string]Hasher{
		"blake2b":  &Blake2bHasher{},
		"sha256":   &SHA256Hasher{},
		"shake256": &ShakeHasher{},
	}
}

func TestExpand(t *testing.T) {
	for name, h := range hashers() {
		t.Run(name, func(t *testing.T) {
			for _, n := range []int{1, 32, 48, 96, 200} {
				out := h.Expand(n, []byte("abc"))
				if len(out) != n {
					t.Errorf("Expand(%d) returned %d bytes", n, len(out))
				}
			}
		})
	}
}

func TestExpandConcatenates(t *testing.T) {
	for name, h := range hashers() {
		t.Run(name, func(t *testing.T) {
			a := h.Expand(64, []byte("ab"), []byte("cd"))
			b := h.Expand(64, []byte("abcd"))
			if !bytes.Equal(a, b) {
				t.Error("split input expanded differently")
			}
		})
	}
}

func TestSHA256HasherFirstBlock(t *testing.T) {
	h := &SHA256Hasher{}
	want := sha256.Sum256(append([]byte{0, 0, 0, 0}, "msg"...))
	got := h.Expand(32, []byte("msg"))
	if !bytes.Equal(got, want[:]) {
		t.Error("first block is not SHA-256(0 || data)")
	}
}

func TestMap(t *testing.T) {
	pairings := []group.Pairing{bls12381.New(), bls12377.New()}

	for _, c := range pairings {
		for name, h := range hashers() {
			t.Run(c.Name()+"/"+name, func(t *testing.T) {
				m := NewWithHasher("test-tag", h)
				for _, g := range []group.Group{c.G1(), c.G2()} {
					p := m.Map(g, []byte("hello"))
					if p.IsIdentity() {
						t.Fatal("mapped to identity")
					}
					if !m.Map(g, []byte("hello")).Equal(p) {
						t.Error("Map is not deterministic")
					}
					if m.Map(g, []byte("hellp")).Equal(p) {
						t.Error("different messages mapped to the same point")
					}
					if _, err := g.NewPoint().SetBytes(p.Bytes()); err != nil {
						t.Errorf("mapped point is not a subgroup element: %v", err)
					}
				}
			})
		}
	}
}

func TestMapDomainSeparation(t *testing.T) {
	g := bls12381.New().G2()
	msg := []byte("same message")

	a := New("tag-a").Map(g, msg)
	b := New("tag-b").Map(g, msg)
	if a.Equal(b) {
		t.Error("different tags produced the same point")
	}
}

func TestDigest(t *testing.T) {
	m := New("tag")
	d0 := m.Digest(0, []byte("m"), 48)
	d1 := m.Digest(1, []byte("m"), 48)
	if bytes.Equal(d0, d1) {
		t.Error("counter does not change the digest")
	}
	want := (&Blake2bHasher{}).Expand(48, []byte("tag"), []byte{1}, []byte("m"))
	if !bytes.Equal(d1, want) {
		t.Error("digest layout is not tag || counter || msg")
	}
}

// rejectingGroup refuses every digest.
type rejectingGroup struct {
	group.Group
	calls int
}

func (g *rejectingGroup) PointSize() int { return 48 }

func (g *rejectingGroup) PointFromDigest([]byte) (group.Point, bool) {
	g.calls++
	return nil, false
}

func TestMapPanicsAfterMaxAttempts(t *testing.T) {
	g := &rejectingGroup{}
	m := New("tag")
	m.MaxAttempts = 5

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if msg, _ := r.(string); !strings.HasPrefix(msg, "bug:") {
			t.Errorf("panic message %q lacks bug prefix", msg)
		}
		if g.calls != 5 {
			t.Errorf("PointFromDigest called %d times, want 5", g.calls)
		}
	}()
	m.Map(g, []byte("x"))
}

func BenchmarkMapG2(b *testing.B) {
	g := bls12381.New().G2()
	m := New("bench")
	msg := make([]byte, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		msg[0] = byte(i)
		m.Map(g, msg)
	}
}
