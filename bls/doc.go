// Package bls implements BLS signatures with aggregation over any
// [group.Pairing].
//
// A private key is a non-zero scalar sk and its public key is sk*g, where g
// generates the key group. A signature on message m is sk*H(m), where H
// hashes into the other source group. Signatures from many signers, on
// the same or on different messages, add up to a single group element that
// is checked with one product of pairings:
//
//	e(g, sig_1 + ... + sig_n) == e(pk_1, H(m_1)) * ... * e(pk_n, H(m_n))
//
// # Variants
//
// [MinPubKeySize] puts public keys in G1 (48 bytes on BLS12-381) and
// signatures in G2 (96 bytes). [MinSigSize] swaps the groups. Both are
// served by the same code; the variant only decides which group each role
// uses and in which order the pairing receives its arguments.
//
// # Rogue-key attacks
//
// An attacker who picks its public key as a function of other signers'
// keys can forge an aggregate over a message that everyone "signed". This
// is impossible when the aggregated messages are pairwise distinct, or when
// every public key comes with a proof of possession. [Scheme.VerifyMessages]
// assumes one of the two holds; [Scheme.VerifyDistinctMessages] checks the
// first, [Scheme.ProvePossession] and [Scheme.VerifyPossession] provide the
// second, and the session package enforces them while collecting
// signatures.
//
// # Usage
//
//	s, _ := bls.New(bls12381.New(), bls.MinPubKeySize)
//	sk, _ := s.GenerateKey(rand.Reader)
//	pk := s.PublicKey(sk)
//	sig := s.Sign(sk, msg)
//	ok := s.VerifyMessages(sig, [][]byte{msg}, []*bls.PublicKey{pk})
//
// Batch helpers (SignBatch, HashBatch, PublicKeyBatch, AggregateTree and
// VerifyConcurrent) spread independent work over GOMAXPROCS goroutines and
// honor context cancellation.
package bls
