package bls

import (
	"github.com/f3rmion/blsagg/group"
)

// ProvePossession returns a proof that the holder of sk knows it: a
// signature over the encoded public key under DomainProofOfPossession.
// The separate domain keeps proofs from being valid message signatures.
func (s *Scheme) ProvePossession(sk *PrivateKey) *Signature {
	pk := s.PublicKey(sk)
	return s.signPoint(sk, s.popMapper.Map(s.sigGroup, pk.Bytes()))
}

// VerifyPossession reports whether proof was produced by ProvePossession
// with the private key of pk.
func (s *Scheme) VerifyPossession(pk *PublicKey, proof *Signature) bool {
	if pk == nil || proof == nil || pk.point.IsIdentity() {
		return false
	}
	h := s.popMapper.Map(s.sigGroup, pk.Bytes())
	return s.Verify(proof, []group.Point{h}, []*PublicKey{pk})
}
