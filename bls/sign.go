package bls

import (
	"fmt"

	"github.com/f3rmion/blsagg/group"
)

// Hash maps msg to its message point in the signature group.
func (s *Scheme) Hash(msg []byte) group.Point {
	return s.sigMapper.Map(s.sigGroup, msg)
}

// Sign returns sk * Hash(msg).
func (s *Scheme) Sign(sk *PrivateKey, msg []byte) *Signature {
	return s.signPoint(sk, s.Hash(msg))
}

func (s *Scheme) signPoint(sk *PrivateKey, h group.Point) *Signature {
	return &Signature{point: s.sigGroup.NewPoint().ScalarMult(sk.scalar, h)}
}

// Aggregate sums sigs into one signature. The inputs are not modified and
// their order does not matter.
//
// Returns ErrEmptyInput if sigs is empty.
func (s *Scheme) Aggregate(sigs []*Signature) (*Signature, error) {
	if len(sigs) == 0 {
		return nil, fmt.Errorf("aggregate signatures: %w", ErrEmptyInput)
	}
	acc := s.sigGroup.NewPoint()
	for i, sig := range sigs {
		if sig == nil {
			return nil, fmt.Errorf("aggregate signatures: signature %d is nil", i)
		}
		acc.Add(acc, sig.point)
	}
	return &Signature{point: acc}, nil
}

// AggregatePublicKeys sums pks into one key. Together with
// VerifySameMessage this checks n signatures on one message with a single
// pairing product.
//
// Returns ErrEmptyInput if pks is empty.
func (s *Scheme) AggregatePublicKeys(pks []*PublicKey) (*PublicKey, error) {
	if len(pks) == 0 {
		return nil, fmt.Errorf("aggregate public keys: %w", ErrEmptyInput)
	}
	acc := s.keyGroup.NewPoint()
	for i, pk := range pks {
		if pk == nil {
			return nil, fmt.Errorf("aggregate public keys: key %d is nil", i)
		}
		acc.Add(acc, pk.point)
	}
	return &PublicKey{point: acc}, nil
}
