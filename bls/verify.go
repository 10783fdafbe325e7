package bls

import (
	"github.com/f3rmion/blsagg/group"
)

// Verify checks an aggregate signature against message points and the
// public keys that signed them:
//
//	e(g, sig) == e(pk_1, H_1) * ... * e(pk_n, H_n)
//
// where g generates the key group. The right-hand side is folded in GT.
//
// Verify returns false, never an error, when the equation does not hold,
// when hashes and pks are empty or differ in length, or when any entry is
// nil or an identity public key.
func (s *Scheme) Verify(sig *Signature, hashes []group.Point, pks []*PublicKey) bool {
	if sig == nil || len(hashes) == 0 || len(hashes) != len(pks) {
		log.Debugf("verify: rejected shape: %d hashes, %d keys", len(hashes), len(pks))
		return false
	}
	rhs := s.curve.NewTarget()
	for i := range hashes {
		if hashes[i] == nil || pks[i] == nil || pks[i].point.IsIdentity() {
			log.Debugf("verify: rejected entry %d", i)
			return false
		}
		rhs.Combine(rhs, s.pair(pks[i].point, hashes[i]))
	}
	lhs := s.pair(s.keyGroup.Generator(), sig.point)
	return lhs.Equal(rhs)
}

// VerifyMessages hashes msgs and calls Verify.
//
// An aggregate over repeated messages is only safe against rogue-key
// attacks when every signer has proven possession of its key. Callers must
// either guarantee that msgs are pairwise distinct or check proofs of
// possession first; VerifyDistinctMessages enforces the former.
func (s *Scheme) VerifyMessages(sig *Signature, msgs [][]byte, pks []*PublicKey) bool {
	if len(msgs) == 0 || len(msgs) != len(pks) {
		return false
	}
	hashes := make([]group.Point, len(msgs))
	for i, m := range msgs {
		hashes[i] = s.Hash(m)
	}
	return s.Verify(sig, hashes, pks)
}

// VerifyDistinctMessages is VerifyMessages that also returns false when
// any two messages are equal.
func (s *Scheme) VerifyDistinctMessages(sig *Signature, msgs [][]byte, pks []*PublicKey) bool {
	if !Distinct(msgs) {
		log.Debugf("verify: %d messages are not distinct", len(msgs))
		return false
	}
	return s.VerifyMessages(sig, msgs, pks)
}

// VerifySameMessage checks an aggregate of signatures by pks over the
// single message msg:
//
//	e(g, sig) == e(pk_1 + ... + pk_n, H(msg))
//
// It costs two pairings regardless of n. Every key must have been checked
// with VerifyPossession, otherwise a rogue key can forge the aggregate.
func (s *Scheme) VerifySameMessage(sig *Signature, msg []byte, pks []*PublicKey) bool {
	apk, err := s.AggregatePublicKeys(pks)
	if err != nil {
		return false
	}
	for _, pk := range pks {
		if pk.point.IsIdentity() {
			return false
		}
	}
	return s.Verify(sig, []group.Point{s.Hash(msg)}, []*PublicKey{apk})
}

// Distinct reports whether no two entries of msgs are equal.
func Distinct(msgs [][]byte) bool {
	seen := make(map[string]struct{}, len(msgs))
	for _, m := range msgs {
		if _, ok := seen[string(m)]; ok {
			return false
		}
		seen[string(m)] = struct{}{}
	}
	return true
}
