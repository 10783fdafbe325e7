package bls

import (
	"context"
	"errors"
	"testing"

	"github.com/f3rmion/blsagg/bls12381"
	"github.com/f3rmion/blsagg/group"
)

func TestSignBatch(t *testing.T) {
	s := newScheme(t, bls12381.New(), MinPubKeySize)
	r := seeded(20)
	sks, pks := keys(t, s, r, 8)
	msgs := messages(r, 8, 64)
	ctx := context.Background()

	sigs, err := s.SignBatch(ctx, sks, msgs)
	if err != nil {
		t.Fatal(err)
	}
	for i := range sigs {
		if !sigs[i].Equal(s.Sign(sks[i], msgs[i])) {
			t.Errorf("signature %d differs from Sign", i)
		}
	}

	hashes, err := s.HashBatch(ctx, msgs)
	if err != nil {
		t.Fatal(err)
	}
	derived, err := s.PublicKeyBatch(ctx, sks)
	if err != nil {
		t.Fatal(err)
	}
	for i := range derived {
		if !derived[i].Equal(pks[i]) {
			t.Errorf("public key %d differs", i)
		}
	}

	agg, err := s.AggregateTree(ctx, sigs)
	if err != nil {
		t.Fatal(err)
	}
	ok, err := s.VerifyConcurrent(ctx, agg, hashes, derived)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("VerifyConcurrent rejected a valid aggregate")
	}

	derived[0], derived[1] = derived[1], derived[0]
	ok, err = s.VerifyConcurrent(ctx, agg, hashes, derived)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("VerifyConcurrent accepted swapped keys")
	}
}

func TestSignBatchLengthMismatch(t *testing.T) {
	s := newScheme(t, bls12381.New(), MinPubKeySize)
	sks, _ := keys(t, s, seeded(21), 2)
	_, err := s.SignBatch(context.Background(), sks, [][]byte{[]byte("only one")})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("got %v, want ErrLengthMismatch", err)
	}
}

func TestAggregateTreeMatchesAggregate(t *testing.T) {
	s := newScheme(t, bls12381.New(), MinSigSize)
	r := seeded(22)
	sks, _ := keys(t, s, r, 9)
	msgs := messages(r, 9, 16)
	sigs := make([]*Signature, len(sks))
	for i := range sks {
		sigs[i] = s.Sign(sks[i], msgs[i])
	}

	for n := 1; n <= len(sigs); n++ {
		want, err := s.Aggregate(sigs[:n])
		if err != nil {
			t.Fatal(err)
		}
		got, err := s.AggregateTree(context.Background(), sigs[:n])
		if err != nil {
			t.Fatal(err)
		}
		if !got.Equal(want) {
			t.Errorf("n=%d: tree reduction differs from sequential fold", n)
		}
	}

	if _, err := s.AggregateTree(context.Background(), nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("got %v, want ErrEmptyInput", err)
	}
}

func TestAggregateTreeDoesNotAlias(t *testing.T) {
	s := newScheme(t, bls12381.New(), MinPubKeySize)
	sks, _ := keys(t, s, seeded(23), 1)
	sig := s.Sign(sks[0], []byte("m"))
	before := sig.Bytes()

	agg, err := s.AggregateTree(context.Background(), []*Signature{sig})
	if err != nil {
		t.Fatal(err)
	}
	agg.point.Add(agg.point, agg.point)
	if string(sig.Bytes()) != string(before) {
		t.Error("aggregate shares its point with the input")
	}
}

func TestBatchCanceled(t *testing.T) {
	s := newScheme(t, bls12381.New(), MinPubKeySize)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	msgs := messages(seeded(24), 4, 8)
	if _, err := s.HashBatch(ctx, msgs); !errors.Is(err, context.Canceled) {
		t.Errorf("HashBatch: got %v, want context.Canceled", err)
	}

	sks, pks := keys(t, s, seeded(25), 4)
	hashes := make([]group.Point, len(msgs))
	for i := range msgs {
		hashes[i] = s.Hash(msgs[i])
	}
	sigs := make([]*Signature, len(sks))
	for i := range sks {
		sigs[i] = s.Sign(sks[i], msgs[i])
	}
	agg, _ := s.Aggregate(sigs)
	if _, err := s.VerifyConcurrent(ctx, agg, hashes, pks); !errors.Is(err, context.Canceled) {
		t.Errorf("VerifyConcurrent: got %v, want context.Canceled", err)
	}
}

func TestVerifyConcurrentMalformed(t *testing.T) {
	s := newScheme(t, bls12381.New(), MinPubKeySize)
	_, pks := keys(t, s, seeded(26), 2)
	ok, err := s.VerifyConcurrent(context.Background(), &Signature{point: s.SignatureGroup().NewPoint()}, nil, pks)
	if ok || err != nil {
		t.Errorf("got %v, %v; want false, nil", ok, err)
	}
}

func BenchmarkSignBatch(b *testing.B) {
	s := newScheme(b, bls12381.New(), MinPubKeySize)
	r := seeded(1)
	sks, _ := keys(b, s, r, 64)
	msgs := messages(r, 64, 64)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.SignBatch(ctx, sks, msgs); err != nil {
			b.Fatal(err)
		}
	}
}
