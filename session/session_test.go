package session

import (
	"errors"
	"fmt"
	mrand "math/rand/v2"
	"sync"
	"testing"

	"github.com/f3rmion/blsagg/bls"
	"github.com/f3rmion/blsagg/bls12377"
	"github.com/f3rmion/blsagg/bls12381"
	"github.com/f3rmion/blsagg/group"
)

func seeded(seed byte) *mrand.ChaCha8 {
	return mrand.NewChaCha8([32]byte{seed})
}

func newScheme(t testing.TB, c group.Pairing, v bls.Variant) *bls.Scheme {
	t.Helper()
	s, err := bls.New(c, v)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func signers(t testing.TB, s *bls.Scheme, r *mrand.ChaCha8, n int) []*Signer {
	t.Helper()
	out := make([]*Signer, n)
	for i := range out {
		p, err := GenerateSigner(s, r)
		if err != nil {
			t.Fatalf("failed to create signer %d: %v", i, err)
		}
		out[i] = p
	}
	return out
}

func TestDistinctMessages(t *testing.T) {
	for _, c := range []group.Pairing{bls12381.New(), bls12377.New()} {
		for _, v := range []bls.Variant{bls.MinPubKeySize, bls.MinSigSize} {
			t.Run(c.Name()+"/"+v.String(), func(t *testing.T) {
				s := newScheme(t, c, v)
				ps := signers(t, s, seeded(1), 5)
				col := NewCollector(s)

				for i, p := range ps {
					if err := col.AddContribution(p.Sign([]byte(fmt.Sprintf("message %d", i)))); err != nil {
						t.Fatalf("signer %d: %v", i, err)
					}
				}
				if col.Len() != len(ps) {
					t.Errorf("Len = %d, want %d", col.Len(), len(ps))
				}

				res, err := col.Finalize()
				if err != nil {
					t.Fatal(err)
				}
				if res.Proven {
					t.Error("result marked proven without registrations")
				}
				if err := Verify(s, res); err != nil {
					t.Errorf("Verify: %v", err)
				}
			})
		}
	}
}

func TestSameMessageRegistered(t *testing.T) {
	s := newScheme(t, bls12381.New(), bls.MinPubKeySize)
	ps := signers(t, s, seeded(2), 4)
	msg := []byte("block 1024")
	col := NewProvenCollector(s)

	for i, p := range ps {
		if err := col.Register(p.PublicKey(), p.Proof()); err != nil {
			t.Fatalf("register %d: %v", i, err)
		}
	}
	for i, p := range ps {
		if err := col.AddContribution(p.Sign(msg)); err != nil {
			t.Fatalf("signer %d: %v", i, err)
		}
	}

	res, err := col.Finalize()
	if err != nil {
		t.Fatal(err)
	}
	if !res.Proven {
		t.Error("result not marked proven")
	}
	if err := Verify(s, res); err != nil {
		t.Errorf("Verify: %v", err)
	}
}

func TestRepeatedMessageRejected(t *testing.T) {
	s := newScheme(t, bls12381.New(), bls.MinSigSize)
	ps := signers(t, s, seeded(3), 3)
	msg := []byte("shared")

	t.Run("NewSignerUnregistered", func(t *testing.T) {
		col := NewCollector(s)
		if err := col.AddContribution(ps[0].Sign(msg)); err != nil {
			t.Fatal(err)
		}
		err := col.AddContribution(ps[1].Sign(msg))
		if !errors.Is(err, ErrMessageNotDistinct) {
			t.Errorf("got %v, want ErrMessageNotDistinct", err)
		}
	})

	t.Run("EarlierSignerUnregistered", func(t *testing.T) {
		col := NewCollector(s)
		if err := col.Register(ps[1].PublicKey(), ps[1].Proof()); err != nil {
			t.Fatal(err)
		}
		if err := col.AddContribution(ps[0].Sign(msg)); err != nil {
			t.Fatal(err)
		}
		err := col.AddContribution(ps[1].Sign(msg))
		if !errors.Is(err, ErrMessageNotDistinct) {
			t.Errorf("got %v, want ErrMessageNotDistinct", err)
		}
	})

	t.Run("BothRegistered", func(t *testing.T) {
		col := NewCollector(s)
		for _, p := range ps[:2] {
			if err := col.Register(p.PublicKey(), p.Proof()); err != nil {
				t.Fatal(err)
			}
		}
		for _, p := range ps[:2] {
			if err := col.AddContribution(p.Sign(msg)); err != nil {
				t.Fatal(err)
			}
		}
		// An unregistered signer on a fresh message keeps the result valid.
		if err := col.AddContribution(ps[2].Sign([]byte("other"))); err != nil {
			t.Fatal(err)
		}
		res, err := col.Finalize()
		if err != nil {
			t.Fatal(err)
		}
		if res.Proven {
			t.Error("result marked proven with an unregistered signer")
		}
		// Without full proofs the repeated message cannot be verified.
		if err := Verify(s, res); !errors.Is(err, ErrMessageNotDistinct) {
			t.Errorf("got %v, want ErrMessageNotDistinct", err)
		}
	})
}

func TestProvenCollectorRequiresRegistration(t *testing.T) {
	s := newScheme(t, bls12381.New(), bls.MinPubKeySize)
	ps := signers(t, s, seeded(4), 1)
	col := NewProvenCollector(s)

	err := col.AddContribution(ps[0].Sign([]byte("m")))
	if !errors.Is(err, ErrUnknownSigner) {
		t.Errorf("got %v, want ErrUnknownSigner", err)
	}
}

func TestRogueKeyRejected(t *testing.T) {
	s := newScheme(t, bls12381.New(), bls.MinPubKeySize)
	ps := signers(t, s, seeded(5), 1)
	victim := ps[0].PublicKey()
	msg := []byte("transfer everything")

	// pk_a = x*g - pk_v, with a forged signature x*H(m) for both keys.
	x, err := s.Pairing().RandomScalar(seeded(6))
	if err != nil {
		t.Fatal(err)
	}
	g := s.KeyGroup()
	rp := g.NewPoint().Sub(g.NewPoint().ScalarMult(x, g.Generator()), victim.Point())
	rogue, err := s.PublicKeyFromBytes(rp.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	sg := s.SignatureGroup()
	forged, err := s.SignatureFromBytes(sg.NewPoint().ScalarMult(x, s.Hash(msg)).Bytes())
	if err != nil {
		t.Fatal(err)
	}

	col := NewCollector(s)
	if err := col.Register(rogue, forged); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("Register: got %v, want ErrInvalidSignature", err)
	}

	// The forgery verifies against the sum, but neither share is a valid
	// individual signature.
	if err := col.Add(rogue, msg, forged); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("Add: got %v, want ErrInvalidSignature", err)
	}

	res := &Result{
		Signature:  forged,
		Messages:   [][]byte{msg, msg},
		PublicKeys: []*bls.PublicKey{victim, rogue},
	}
	if err := Verify(s, res); !errors.Is(err, ErrMessageNotDistinct) {
		t.Errorf("Verify: got %v, want ErrMessageNotDistinct", err)
	}
}

func TestInvalidSignature(t *testing.T) {
	s := newScheme(t, bls12381.New(), bls.MinPubKeySize)
	ps := signers(t, s, seeded(7), 2)
	col := NewCollector(s)

	c := ps[0].Sign([]byte("m"))
	if err := col.Add(ps[1].PublicKey(), c.Message, c.Signature); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("got %v, want ErrInvalidSignature", err)
	}
	if err := col.Register(ps[0].PublicKey(), ps[1].Proof()); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("Register: got %v, want ErrInvalidSignature", err)
	}
	if err := col.Add(nil, c.Message, c.Signature); err == nil {
		t.Error("nil public key accepted")
	}
	if col.Len() != 0 {
		t.Errorf("Len = %d after rejections", col.Len())
	}
}

func TestDuplicates(t *testing.T) {
	s := newScheme(t, bls12381.New(), bls.MinPubKeySize)
	ps := signers(t, s, seeded(8), 1)
	col := NewCollector(s)

	if err := col.Register(ps[0].PublicKey(), ps[0].Proof()); err != nil {
		t.Fatal(err)
	}
	if err := col.Register(ps[0].PublicKey(), ps[0].Proof()); !errors.Is(err, ErrDuplicateSigner) {
		t.Errorf("Register: got %v, want ErrDuplicateSigner", err)
	}

	c := ps[0].Sign([]byte("m"))
	if err := col.AddContribution(c); err != nil {
		t.Fatal(err)
	}
	if err := col.AddContribution(c); !errors.Is(err, ErrDuplicateSigner) {
		t.Errorf("Add: got %v, want ErrDuplicateSigner", err)
	}
}

func TestFinalizeOnce(t *testing.T) {
	s := newScheme(t, bls12381.New(), bls.MinPubKeySize)
	ps := signers(t, s, seeded(9), 1)
	col := NewCollector(s)

	if _, err := col.Finalize(); !errors.Is(err, bls.ErrEmptyInput) {
		t.Errorf("empty Finalize: got %v, want ErrEmptyInput", err)
	}
	if col.IsFinalized() {
		t.Error("failed Finalize consumed the collector")
	}

	if err := col.AddContribution(ps[0].Sign([]byte("m"))); err != nil {
		t.Fatal(err)
	}
	if _, err := col.Finalize(); err != nil {
		t.Fatal(err)
	}
	if !col.IsFinalized() {
		t.Error("IsFinalized = false after Finalize")
	}
	if _, err := col.Finalize(); !errors.Is(err, ErrFinalized) {
		t.Errorf("second Finalize: got %v, want ErrFinalized", err)
	}
	if err := col.AddContribution(ps[0].Sign([]byte("n"))); !errors.Is(err, ErrFinalized) {
		t.Errorf("Add after Finalize: got %v, want ErrFinalized", err)
	}
}

func TestMessageCopied(t *testing.T) {
	s := newScheme(t, bls12381.New(), bls.MinPubKeySize)
	ps := signers(t, s, seeded(10), 1)
	col := NewCollector(s)

	msg := []byte("original")
	c := ps[0].Sign(msg)
	if err := col.Add(c.PublicKey, msg, c.Signature); err != nil {
		t.Fatal(err)
	}
	msg[0] = 'X'

	res, err := col.Finalize()
	if err != nil {
		t.Fatal(err)
	}
	if err := Verify(s, res); err != nil {
		t.Errorf("Verify after caller mutation: %v", err)
	}
}

func TestConcurrentAdd(t *testing.T) {
	s := newScheme(t, bls12381.New(), bls.MinPubKeySize)
	ps := signers(t, s, seeded(11), 8)
	col := NewCollector(s)

	var wg sync.WaitGroup
	errs := make([]error, len(ps))
	for i, p := range ps {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = col.AddContribution(p.Sign([]byte(fmt.Sprintf("m%d", i))))
		}()
	}
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			t.Errorf("signer %d: %v", i, err)
		}
	}

	res, err := col.Finalize()
	if err != nil {
		t.Fatal(err)
	}
	if err := Verify(s, res); err != nil {
		t.Errorf("Verify: %v", err)
	}
}

func TestVerifyMalformedResult(t *testing.T) {
	s := newScheme(t, bls12381.New(), bls.MinPubKeySize)
	ps := signers(t, s, seeded(12), 2)
	c := ps[0].Sign([]byte("m"))

	if err := Verify(s, nil); !errors.Is(err, bls.ErrEmptyInput) {
		t.Errorf("nil: got %v, want ErrEmptyInput", err)
	}
	res := &Result{Signature: c.Signature, Messages: [][]byte{c.Message}, PublicKeys: []*bls.PublicKey{c.PublicKey, ps[1].PublicKey()}}
	if err := Verify(s, res); !errors.Is(err, bls.ErrLengthMismatch) {
		t.Errorf("mismatch: got %v, want ErrLengthMismatch", err)
	}
	res.PublicKeys = []*bls.PublicKey{ps[1].PublicKey()}
	if err := Verify(s, res); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("wrong key: got %v, want ErrInvalidSignature", err)
	}
}
