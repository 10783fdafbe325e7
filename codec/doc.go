// Package codec converts scalars, points and target group elements to and
// from their canonical fixed-width byte strings.
//
// Every decoder checks the exact length before it attempts any
// reconstruction, then validates the value: scalars must be below the
// group order, points must lie in the prime-order subgroup and target
// elements in the order-r subgroup of GT. Failures wrap
// [group.ErrMalformedEncoding], [group.ErrInvalidPoint] or
// [group.ErrInvalidScalar] so callers can tell them apart with errors.Is.
//
// Widths depend only on the curve and the kind:
//
//	Kind         bls12-381   bls12-377
//	KindScalar          32          32
//	KindG1              48          48
//	KindG2              96          96
//	KindGT             576         576
package codec
