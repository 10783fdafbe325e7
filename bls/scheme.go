package bls

import (
	"errors"
	"fmt"

	logging "github.com/ipfs/go-log/v2"

	"github.com/f3rmion/blsagg/group"
	"github.com/f3rmion/blsagg/hashtogroup"
)

var log = logging.Logger("bls")

// Domain tags for the two hash-to-group mappings of a scheme.
const (
	DomainSignature         = "ULforxof"
	DomainProofOfPossession = "ULforpop"
)

var (
	// ErrEmptyInput is returned when an aggregation has nothing to combine.
	ErrEmptyInput = errors.New("empty input")

	// ErrLengthMismatch is returned by batch helpers whose parallel input
	// slices differ in length.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrShortSeed is returned by KeyFromSeed for input keying material
	// shorter than MinSeedSize bytes.
	ErrShortSeed = errors.New("seed too short")
)

// Variant selects which source group holds public keys and which holds
// signatures and message hashes.
type Variant int

const (
	// MinPubKeySize places public keys in G1 and signatures in G2.
	MinPubKeySize Variant = iota
	// MinSigSize places public keys in G2 and signatures in G1.
	MinSigSize
)

// String returns "min-pk" or "min-sig".
func (v Variant) String() string {
	switch v {
	case MinPubKeySize:
		return "min-pk"
	case MinSigSize:
		return "min-sig"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// ParseVariant returns the variant named by s ("min-pk" or "min-sig").
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "min-pk":
		return MinPubKeySize, nil
	case "min-sig":
		return MinSigSize, nil
	default:
		return 0, fmt.Errorf("unknown variant %q", s)
	}
}

// Scheme is a BLS signature scheme over one pairing and one variant.
// A Scheme holds no mutable state and is safe for concurrent use.
type Scheme struct {
	curve     group.Pairing
	variant   Variant
	keyGroup  group.Group
	sigGroup  group.Group
	sigMapper *hashtogroup.Mapper
	popMapper *hashtogroup.Mapper
}

// New creates a scheme over curve c with variant v, hashing messages with
// the default BLAKE2b hasher.
//
// Returns an error if c is nil or v is not a known variant.
func New(c group.Pairing, v Variant) (*Scheme, error) {
	return NewWithHasher(c, v, &hashtogroup.Blake2bHasher{})
}

// NewWithHasher creates a scheme that expands hash-to-group digests with h.
//
// Signatures produced with one hasher do not verify under another.
func NewWithHasher(c group.Pairing, v Variant, h hashtogroup.Hasher) (*Scheme, error) {
	if c == nil {
		return nil, errors.New("pairing must not be nil")
	}
	if h == nil {
		return nil, errors.New("hasher must not be nil")
	}
	s := &Scheme{
		curve:     c,
		variant:   v,
		sigMapper: hashtogroup.NewWithHasher(DomainSignature, h),
		popMapper: hashtogroup.NewWithHasher(DomainProofOfPossession, h),
	}
	switch v {
	case MinPubKeySize:
		s.keyGroup, s.sigGroup = c.G1(), c.G2()
	case MinSigSize:
		s.keyGroup, s.sigGroup = c.G2(), c.G1()
	default:
		return nil, fmt.Errorf("unknown variant %d", int(v))
	}
	return s, nil
}

// Pairing returns the scheme's curve.
func (s *Scheme) Pairing() group.Pairing {
	return s.curve
}

// Variant returns the scheme's variant.
func (s *Scheme) Variant() Variant {
	return s.variant
}

// KeyGroup returns the group that holds public keys.
func (s *Scheme) KeyGroup() group.Group {
	return s.keyGroup
}

// SignatureGroup returns the group that holds signatures and message
// hashes.
func (s *Scheme) SignatureGroup() group.Group {
	return s.sigGroup
}

// pair evaluates the pairing on a key-group element and a signature-group
// element, whichever source group each of them lives in.
func (s *Scheme) pair(key, sig group.Point) group.Target {
	if s.variant == MinPubKeySize {
		return s.curve.Pair(key, sig)
	}
	return s.curve.Pair(sig, key)
}
