// Package group defines abstract interfaces for the bilinear group triple
// (G1, G2, GT) and scalar field Fr used by the BLS aggregate signature
// scheme.
//
// This package provides the capability contracts that the signature
// protocol is written against:
//
//   - [Scalar]: Elements of the scalar field (integers modulo the group order)
//   - [Point]: Elements of G1 or G2 (points on an elliptic curve)
//   - [Target]: Elements of GT (written multiplicatively)
//   - [Group]: Factory for the points of one source group
//   - [Pairing]: Scalars, both source groups, GT and the pairing map
//
// # Design Philosophy
//
// The interfaces use a mutable receiver pattern for efficiency. Operations
// like Add, Mul, and ScalarMult set the receiver to the result and return it,
// allowing method chaining while minimizing allocations:
//
//	// Compute a*P + Q
//	result := g.NewPoint().ScalarMult(a, P)
//	result = g.NewPoint().Add(result, Q)
//
// GT is a multiplicative group, so [Target] names its operation Combine and
// its scalar action Exp instead of reusing the additive names.
//
// Decoding is the only place where malformed data enters, so every SetBytes
// method checks the length, the curve equation and subgroup membership and
// reports failures with [ErrMalformedEncoding], [ErrInvalidPoint] or
// [ErrInvalidScalar].
//
// # Implementing a Pairing
//
// To implement these interfaces for a new pairing-friendly curve:
//
//  1. Create a Scalar type that wraps your field element and implements [Scalar]
//  2. Create G1 and G2 point types that implement [Point] and factories for [Group]
//  3. Create a GT type that implements [Target]
//  4. Create a type that implements [Pairing] and returns the factories
//
// See the bls12381 and bls12377 packages for complete implementations, and
// the grouptest package for the contract tests every implementation should
// pass.
//
// # Security Considerations
//
// Implementations must ensure:
//
//   - Scalar arithmetic is performed modulo the group order
//   - Random scalars and points are uniform over their range
//   - Points decoded from bytes lie in the prime-order subgroup
//   - Target elements decoded from bytes lie in the order-r subgroup of GT
package group
