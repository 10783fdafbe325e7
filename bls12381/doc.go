// Package bls12381 implements the [group.Pairing] interface for the
// BLS12-381 pairing-friendly curve.
//
// BLS12-381 has a 255-bit prime subgroup order r and a 381-bit base field.
// It is the curve used by Ethereum consensus, Zcash and Filecoin, and the
// primary curve of this module.
//
// # Encodings
//
// All encodings have a fixed width:
//
//	Scalar  32 bytes   big-endian, canonical (value < r)
//	G1      48 bytes   compressed affine x-coordinate with flag bits
//	G2      96 bytes   compressed affine Fp2 x-coordinate with flag bits
//	GT     576 bytes   twelve big-endian base field elements
//
// Point encodings follow the ZCash serialization format: the three most
// significant bits of the first byte mark compression, the point at
// infinity and the sign of y. Decoding accepts only the compressed form
// and checks subgroup membership, so a point obtained from bytes is always
// an element of G1 or G2.
//
// # Usage
//
//	c := bls12381.New()
//	sk, _ := c.RandomScalar(rand.Reader)
//	pk := c.G1().NewPoint().ScalarMult(sk, c.G1().Generator())
//	e := c.Pair(pk, c.G2().Generator())
//
// Arithmetic is delegated to gnark-crypto.
package bls12381
