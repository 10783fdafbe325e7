package session

import (
	"fmt"
	"io"

	"github.com/f3rmion/blsagg/bls"
)

// Signer holds one participant's key pair and its proof of possession.
// Create instances using [NewSigner] or [GenerateSigner].
type Signer struct {
	scheme *bls.Scheme
	sk     *bls.PrivateKey
	pk     *bls.PublicKey
	proof  *bls.Signature
}

// Contribution is one signer's signature on one message, ready to be
// added to a [Collector].
type Contribution struct {
	PublicKey *bls.PublicKey
	Message   []byte
	Signature *bls.Signature
}

// NewSigner wraps an existing private key. The proof of possession is
// computed once here.
func NewSigner(s *bls.Scheme, sk *bls.PrivateKey) *Signer {
	return &Signer{
		scheme: s,
		sk:     sk,
		pk:     s.PublicKey(sk),
		proof:  s.ProvePossession(sk),
	}
}

// GenerateSigner creates a signer with a fresh random key.
func GenerateSigner(s *bls.Scheme, rng io.Reader) (*Signer, error) {
	sk, err := s.GenerateKey(rng)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	return NewSigner(s, sk), nil
}

// PublicKey returns the signer's public key.
func (p *Signer) PublicKey() *bls.PublicKey {
	return p.pk
}

// Proof returns the signer's proof of possession, to be passed to
// [Collector.Register].
func (p *Signer) Proof() *bls.Signature {
	return p.proof
}

// Sign signs message and returns the contribution. The message is copied.
func (p *Signer) Sign(message []byte) *Contribution {
	msgCopy := make([]byte, len(message))
	copy(msgCopy, message)

	return &Contribution{
		PublicKey: p.pk,
		Message:   msgCopy,
		Signature: p.scheme.Sign(p.sk, msgCopy),
	}
}

// Close zeroes the private key. The signer must not sign afterwards.
func (p *Signer) Close() {
	p.sk.Zeroize()
}
