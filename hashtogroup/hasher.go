package hashtogroup

import (
	"crypto/sha256"
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Hasher expands its input into an arbitrary number of pseudo-random bytes.
// Different implementations can provide different hash functions; all of
// them must be deterministic and treat data as the concatenation of its
// parts.
type Hasher interface {
	// Expand returns n bytes derived from the concatenation of data.
	Expand(n int, data ...[]byte) []byte
}

// Blake2bHasher implements Hasher with the BLAKE2b extendable output
// function. This is the default hasher.
type Blake2bHasher struct{}

// Expand implements Hasher.Expand.
func (h *Blake2bHasher) Expand(n int, data ...[]byte) []byte {
	xof, err := blake2b.NewXOF(uint32(n), nil)
	if err != nil {
		// Only reachable with n >= 2^32-1.
		panic("hashtogroup: " + err.Error())
	}
	for _, d := range data {
		xof.Write(d)
	}
	out := make([]byte, n)
	if _, err := xof.Read(out); err != nil {
		panic("hashtogroup: " + err.Error())
	}
	return out
}

// SHA256Hasher implements Hasher using SHA-256 in counter mode:
// block i is SHA-256(uint32be(i) || data).
type SHA256Hasher struct{}

// Expand implements Hasher.Expand.
func (h *SHA256Hasher) Expand(n int, data ...[]byte) []byte {
	out := make([]byte, 0, n+sha256.Size)
	var ctr [4]byte
	for i := uint32(0); len(out) < n; i++ {
		binary.BigEndian.PutUint32(ctr[:], i)
		hasher := sha256.New()
		hasher.Write(ctr[:])
		for _, d := range data {
			hasher.Write(d)
		}
		out = hasher.Sum(out)
	}
	return out[:n]
}

// ShakeHasher implements Hasher with SHAKE256.
type ShakeHasher struct{}

// Expand implements Hasher.Expand.
func (h *ShakeHasher) Expand(n int, data ...[]byte) []byte {
	xof := sha3.NewShake256()
	for _, d := range data {
		xof.Write(d)
	}
	out := make([]byte, n)
	xof.Read(out)
	return out
}
