// Package session collects BLS signatures from many signers into a single
// aggregate, enforcing the rogue-key precondition that the low-level
// [bls] package leaves to the caller.
//
// # Signers
//
// A [Signer] owns one key pair and computes its proof of possession once:
//
//	p, err := session.GenerateSigner(scheme, rand.Reader)
//	if err != nil {
//		return err
//	}
//
//	// Publish p.PublicKey() and p.Proof()
//	c := p.Sign(message)
//
// # Collecting
//
// A [Collector] verifies each contribution when it arrives, so a bad
// signature is attributed to its sender instead of spoiling the aggregate:
//
//	col := session.NewCollector(scheme)
//	for _, c := range contributions {
//		if err := col.AddContribution(c); err != nil {
//			// reject this signer, keep going
//		}
//	}
//	result, err := col.Finalize()
//
// Messages may repeat only among signers registered with a valid proof of
// possession. Otherwise Add returns ErrMessageNotDistinct. A collector made
// with [NewProvenCollector] accepts registered signers only, which lets
// every signer sign the same message and lets [Verify] use the two-pairing
// same-message check.
//
// The Collector is designed to be finalized exactly once. Calling Finalize
// a second time returns ErrFinalized.
//
// # Transport Agnostic
//
// This package does not handle network communication. Public keys,
// proofs and contributions are plain values that can be encoded with the
// codec package and carried over any transport.
package session
