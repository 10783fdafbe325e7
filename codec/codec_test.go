package codec

import (
	"crypto/rand"
	"errors"
	"testing"

	"github.com/f3rmion/blsagg/bls12377"
	"github.com/f3rmion/blsagg/bls12381"
	"github.com/f3rmion/blsagg/group"
)

func pairings() []group.Pairing {
	return []group.Pairing{bls12381.New(), bls12377.New()}
}

func TestSize(t *testing.T) {
	want := map[Kind]int{KindScalar: 32, KindG1: 48, KindG2: 96, KindGT: 576}
	for _, c := range pairings() {
		for kind, n := range want {
			if got := Size(c, kind); got != n {
				t.Errorf("%s: Size(%s) = %d, want %d", c.Name(), kind, got, n)
			}
		}
		if got := Size(c, Kind(9)); got != 0 {
			t.Errorf("%s: Size(unknown) = %d, want 0", c.Name(), got)
		}
	}
}

func TestRoundtrip(t *testing.T) {
	for _, c := range pairings() {
		t.Run(c.Name(), func(t *testing.T) {
			t.Run("Scalar", func(t *testing.T) {
				s, err := c.RandomScalar(rand.Reader)
				if err != nil {
					t.Fatal(err)
				}
				b := EncodeScalar(s)
				if len(b) != Size(c, KindScalar) {
					t.Fatalf("encoded %d bytes", len(b))
				}
				got, err := DecodeScalar(c, b)
				if err != nil {
					t.Fatal(err)
				}
				if !got.Equal(s) {
					t.Error("scalar roundtrip failed")
				}
			})

			for _, kind := range []Kind{KindG1, KindG2} {
				t.Run(kind.String(), func(t *testing.T) {
					g := c.G1()
					if kind == KindG2 {
						g = c.G2()
					}
					p, err := g.RandomPoint(rand.Reader)
					if err != nil {
						t.Fatal(err)
					}
					b := EncodePoint(p)
					if len(b) != Size(c, kind) {
						t.Fatalf("encoded %d bytes", len(b))
					}
					got, err := DecodePoint(c, kind, b)
					if err != nil {
						t.Fatal(err)
					}
					if !got.Equal(p) {
						t.Error("point roundtrip failed")
					}
				})
			}

			t.Run("GT", func(t *testing.T) {
				x, err := c.RandomTarget(rand.Reader)
				if err != nil {
					t.Fatal(err)
				}
				b := EncodeTarget(x)
				if len(b) != Size(c, KindGT) {
					t.Fatalf("encoded %d bytes", len(b))
				}
				got, err := DecodeTarget(c, b)
				if err != nil {
					t.Fatal(err)
				}
				if !got.Equal(x) {
					t.Error("target roundtrip failed")
				}
			})
		})
	}
}

func TestWrongLength(t *testing.T) {
	c := bls12381.New()
	g1 := EncodePoint(c.G1().Generator())
	g2 := EncodePoint(c.G2().Generator())

	tests := []struct {
		name   string
		decode func() error
	}{
		{"scalar short", func() error { _, err := DecodeScalar(c, make([]byte, 31)); return err }},
		{"scalar long", func() error { _, err := DecodeScalar(c, make([]byte, 33)); return err }},
		{"g1 short", func() error { _, err := DecodePoint(c, KindG1, g1[:47]); return err }},
		{"g1 as g2", func() error { _, err := DecodePoint(c, KindG2, g1); return err }},
		{"g2 as g1", func() error { _, err := DecodePoint(c, KindG1, g2); return err }},
		{"g2 long", func() error { _, err := DecodePoint(c, KindG2, append(g2, 0)); return err }},
		{"gt empty", func() error { _, err := DecodeTarget(c, nil); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.decode(); !errors.Is(err, group.ErrMalformedEncoding) {
				t.Errorf("got %v, want ErrMalformedEncoding", err)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	c := bls12381.New()

	t.Run("ScalarOutOfRange", func(t *testing.T) {
		b := make([]byte, 32)
		for i := range b {
			b[i] = 0xFF
		}
		if _, err := DecodeScalar(c, b); !errors.Is(err, group.ErrInvalidScalar) {
			t.Errorf("got %v, want ErrInvalidScalar", err)
		}
	})

	t.Run("PointBitFlip", func(t *testing.T) {
		// Flipping a low bit of x almost never gives another subgroup point.
		b := EncodePoint(c.G2().Generator())
		b[len(b)-1] ^= 1
		if _, err := DecodePoint(c, KindG2, b); !errors.Is(err, group.ErrInvalidPoint) {
			t.Errorf("got %v, want ErrInvalidPoint", err)
		}
	})

	t.Run("NotAPointKind", func(t *testing.T) {
		if _, err := DecodePoint(c, KindGT, make([]byte, 576)); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("TargetOutsideSubgroup", func(t *testing.T) {
		b := make([]byte, 576)
		b[len(b)-1] = 2
		if _, err := DecodeTarget(c, b); !errors.Is(err, group.ErrInvalidPoint) {
			t.Errorf("got %v, want ErrInvalidPoint", err)
		}
	})
}

// FuzzDecodePoint_NoPanic feeds arbitrary bytes to the point decoders.
func FuzzDecodePoint_NoPanic(f *testing.F) {
	c := bls12381.New()
	f.Add(EncodePoint(c.G1().Generator()))
	f.Add(EncodePoint(c.G2().Generator()))
	f.Add([]byte{0xC0})
	f.Fuzz(func(t *testing.T, b []byte) {
		for _, kind := range []Kind{KindG1, KindG2} {
			p, err := DecodePoint(c, kind, b)
			if err == nil && len(EncodePoint(p)) != Size(c, kind) {
				t.Fatal("decoded point re-encodes to the wrong width")
			}
		}
	})
}

// FuzzDecodeScalar_NoPanic feeds arbitrary bytes to the scalar decoder.
func FuzzDecodeScalar_NoPanic(f *testing.F) {
	c := bls12381.New()
	f.Add(make([]byte, 32))
	f.Fuzz(func(t *testing.T, b []byte) {
		s, err := DecodeScalar(c, b)
		if err == nil && string(EncodeScalar(s)) != string(b) {
			t.Fatal("accepted scalar is not canonical")
		}
	})
}

// FuzzDecodeTarget_NoPanic feeds arbitrary bytes to the GT decoder.
func FuzzDecodeTarget_NoPanic(f *testing.F) {
	c := bls12377.New()
	f.Add(make([]byte, 576))
	f.Fuzz(func(t *testing.T, b []byte) {
		_, _ = DecodeTarget(c, b)
	})
}
