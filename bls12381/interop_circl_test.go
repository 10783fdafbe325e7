package bls12381_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	circl "github.com/cloudflare/circl/ecc/bls12381"

	"github.com/f3rmion/blsagg/bls"
	"github.com/f3rmion/blsagg/bls12381"
)

// These tests cross-check encodings and signatures against circl, an
// independent BLS12-381 implementation.

func TestCirclGenerators(t *testing.T) {
	c := bls12381.New()
	if !bytes.Equal(c.G1().Generator().Bytes(), circl.G1Generator().BytesCompressed()) {
		t.Error("g1 generator encodings differ")
	}
	if !bytes.Equal(c.G2().Generator().Bytes(), circl.G2Generator().BytesCompressed()) {
		t.Error("g2 generator encodings differ")
	}
}

func TestCirclScalarMult(t *testing.T) {
	c := bls12381.New()
	k, err := c.RandomScalar(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	var ck circl.Scalar
	if err := ck.UnmarshalBinary(k.Bytes()); err != nil {
		t.Fatal(err)
	}

	var p1 circl.G1
	p1.ScalarMult(&ck, circl.G1Generator())
	ours1 := c.G1().NewPoint().ScalarMult(k, c.G1().Generator())
	if !bytes.Equal(ours1.Bytes(), p1.BytesCompressed()) {
		t.Error("k*g1 differs")
	}

	var p2 circl.G2
	p2.ScalarMult(&ck, circl.G2Generator())
	ours2 := c.G2().NewPoint().ScalarMult(k, c.G2().Generator())
	if !bytes.Equal(ours2.Bytes(), p2.BytesCompressed()) {
		t.Error("k*g2 differs")
	}
}

func TestCirclPointsDecode(t *testing.T) {
	c := bls12381.New()

	var p1 circl.G1
	p1.Hash([]byte("interop"), []byte("BLSAGG-TEST"))
	if _, err := c.G1().NewPoint().SetBytes(p1.BytesCompressed()); err != nil {
		t.Errorf("circl g1 point rejected: %v", err)
	}

	var p2 circl.G2
	p2.Hash([]byte("interop"), []byte("BLSAGG-TEST"))
	if _, err := c.G2().NewPoint().SetBytes(p2.BytesCompressed()); err != nil {
		t.Errorf("circl g2 point rejected: %v", err)
	}
}

func TestCirclVerifiesSignature(t *testing.T) {
	s, err := bls.New(bls12381.New(), bls.MinPubKeySize)
	if err != nil {
		t.Fatal(err)
	}
	sk, err := s.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	msg := []byte("checked by circl")
	sig := s.Sign(sk, msg)

	var pk circl.G1
	if err := pk.SetBytes(s.PublicKey(sk).Bytes()); err != nil {
		t.Fatal(err)
	}
	var h, sg circl.G2
	if err := h.SetBytes(s.Hash(msg).Bytes()); err != nil {
		t.Fatal(err)
	}
	if err := sg.SetBytes(sig.Bytes()); err != nil {
		t.Fatal(err)
	}

	lhs := circl.Pair(circl.G1Generator(), &sg)
	rhs := circl.Pair(&pk, &h)
	if !lhs.IsEqual(rhs) {
		t.Error("circl rejects the min-pk signature")
	}
}

func TestCirclVerifiesMinSigSignature(t *testing.T) {
	s, err := bls.New(bls12381.New(), bls.MinSigSize)
	if err != nil {
		t.Fatal(err)
	}
	sk, err := s.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	msg := []byte("checked by circl")
	sig := s.Sign(sk, msg)

	var pk circl.G2
	if err := pk.SetBytes(s.PublicKey(sk).Bytes()); err != nil {
		t.Fatal(err)
	}
	var h, sg circl.G1
	if err := h.SetBytes(s.Hash(msg).Bytes()); err != nil {
		t.Fatal(err)
	}
	if err := sg.SetBytes(sig.Bytes()); err != nil {
		t.Fatal(err)
	}

	lhs := circl.Pair(&sg, circl.G2Generator())
	rhs := circl.Pair(&h, &pk)
	if !lhs.IsEqual(rhs) {
		t.Error("circl rejects the min-sig signature")
	}
}
