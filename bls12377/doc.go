// Package bls12377 implements the [group.Pairing] interface for the
// BLS12-377 pairing-friendly curve.
//
// BLS12-377 has a 253-bit prime subgroup order and a 377-bit base field
// whose two-adicity makes it the inner curve of recursive proof systems
// such as Zexe and Aleo. It uses the same fixed-width encodings as
// bls12381 (32, 48, 96 and 576 bytes), so the signature scheme can switch
// between the two curves without any change to framing or storage.
//
// Point encodings carry the compressed, infinity and largest-y flags in
// the three most significant bits of the first byte.
package bls12377
