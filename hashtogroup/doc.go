// Package hashtogroup maps arbitrary messages to points of a source group
// using domain-separated try-and-increment.
//
// For counter = 0, 1, 2, ... the mapper computes
//
//	D = Expand(PointSize, DomainTag || counter || message)
//
// and passes D to [group.Group.PointFromDigest], which reads it as a
// compressed x-coordinate. The first candidate that yields a subgroup point
// wins. The same (tag, message) pair always produces the same point, so
// independent verifiers can recompute it.
//
// The expansion function is pluggable through [Hasher]: BLAKE2b XOF (the
// default), SHA-256 in counter mode and SHAKE256 are provided.
package hashtogroup
