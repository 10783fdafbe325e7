package bls

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/f3rmion/blsagg/codec"
	"github.com/f3rmion/blsagg/group"
)

// MinSeedSize is the shortest input keying material KeyFromSeed accepts.
const MinSeedSize = 32

// keygenSalt is the initial HKDF salt of the IETF BLS KeyGen procedure.
const keygenSalt = "BLS-SIG-KEYGEN-SALT-"

// keygenOKMSize is ceil((3 * ceil(log2(r))) / 16) for a 255-bit r.
const keygenOKMSize = 48

// PrivateKey is a secret scalar. It must be non-zero.
type PrivateKey struct {
	scalar group.Scalar
}

// Bytes returns the canonical encoding of the key.
func (sk *PrivateKey) Bytes() []byte {
	return codec.EncodeScalar(sk.scalar)
}

// Scalar returns the underlying scalar.
func (sk *PrivateKey) Scalar() group.Scalar {
	return sk.scalar
}

// Zeroize overwrites the key material with zero. The key must not be used
// afterwards.
func (sk *PrivateKey) Zeroize() {
	sk.scalar.Zeroize()
}

// PublicKey is sk times the generator of the scheme's key group.
type PublicKey struct {
	point group.Point
}

// Bytes returns the canonical compressed encoding of the key.
func (pk *PublicKey) Bytes() []byte {
	return codec.EncodePoint(pk.point)
}

// Point returns the underlying group element.
func (pk *PublicKey) Point() group.Point {
	return pk.point
}

// Equal reports whether pk and other are the same key.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.point.Equal(other.point)
}

// MarshalText implements encoding.TextMarshaler with lower-case hex.
func (pk *PublicKey) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(pk.Bytes())), nil
}

// String returns the hex encoding of pk.
func (pk *PublicKey) String() string {
	return hex.EncodeToString(pk.Bytes())
}

// Signature is a point of the scheme's signature group: a single signature
// or the sum of several.
type Signature struct {
	point group.Point
}

// Bytes returns the canonical compressed encoding of the signature.
func (sig *Signature) Bytes() []byte {
	return codec.EncodePoint(sig.point)
}

// Point returns the underlying group element.
func (sig *Signature) Point() group.Point {
	return sig.point
}

// Equal reports whether sig and other are the same signature.
func (sig *Signature) Equal(other *Signature) bool {
	return sig.point.Equal(other.point)
}

// MarshalText implements encoding.TextMarshaler with lower-case hex.
func (sig *Signature) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(sig.Bytes())), nil
}

// String returns the hex encoding of sig.
func (sig *Signature) String() string {
	return hex.EncodeToString(sig.Bytes())
}

// keyKind and sigKind return the codec kinds of the key and signature groups.
func (s *Scheme) keyKind() codec.Kind {
	if s.variant == MinPubKeySize {
		return codec.KindG1
	}
	return codec.KindG2
}

func (s *Scheme) sigKind() codec.Kind {
	if s.variant == MinPubKeySize {
		return codec.KindG2
	}
	return codec.KindG1
}

// GenerateKey draws a uniformly random non-zero private key from rng.
func (s *Scheme) GenerateKey(rng io.Reader) (*PrivateKey, error) {
	for {
		k, err := s.curve.RandomScalar(rng)
		if err != nil {
			return nil, fmt.Errorf("generate key: %w", err)
		}
		if !k.IsZero() {
			return &PrivateKey{scalar: k}, nil
		}
	}
}

// KeyFromSeed deterministically derives a private key from at least
// MinSeedSize bytes of secret keying material, following the IETF BLS
// KeyGen procedure with HKDF-SHA256. info is optional and may be nil.
func (s *Scheme) KeyFromSeed(ikm, info []byte) (*PrivateKey, error) {
	if len(ikm) < MinSeedSize {
		return nil, fmt.Errorf("key from seed: got %d bytes, want at least %d: %w", len(ikm), MinSeedSize, ErrShortSeed)
	}

	secret := make([]byte, len(ikm)+1)
	copy(secret, ikm)
	expandInfo := make([]byte, len(info)+2)
	copy(expandInfo, info)
	expandInfo[len(info)] = byte(keygenOKMSize >> 8)
	expandInfo[len(info)+1] = byte(keygenOKMSize)

	salt := []byte(keygenSalt)
	okm := make([]byte, keygenOKMSize)
	for {
		sum := sha256.Sum256(salt)
		salt = sum[:]

		prk := hkdf.Extract(sha256.New, secret, salt)
		if _, err := io.ReadFull(hkdf.Expand(sha256.New, prk, expandInfo), okm); err != nil {
			return nil, fmt.Errorf("key from seed: %w", err)
		}
		k := s.curve.ScalarFromWideBytes(okm)
		if !k.IsZero() {
			clear(okm)
			clear(secret)
			return &PrivateKey{scalar: k}, nil
		}
	}
}

// PublicKey returns the public key of sk.
func (s *Scheme) PublicKey(sk *PrivateKey) *PublicKey {
	return &PublicKey{point: s.keyGroup.NewPoint().ScalarMult(sk.scalar, s.keyGroup.Generator())}
}

// PrivateKeyFromBytes decodes a private key. The zero scalar is rejected.
func (s *Scheme) PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	k, err := codec.DecodeScalar(s.curve, b)
	if err != nil {
		return nil, fmt.Errorf("private key: %w", err)
	}
	if k.IsZero() {
		return nil, fmt.Errorf("private key: zero: %w", group.ErrInvalidScalar)
	}
	return &PrivateKey{scalar: k}, nil
}

// PublicKeyFromBytes decodes a public key and checks that it lies in the
// prime-order subgroup. The identity is rejected.
func (s *Scheme) PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	p, err := codec.DecodePoint(s.curve, s.keyKind(), b)
	if err != nil {
		return nil, fmt.Errorf("public key: %w", err)
	}
	if p.IsIdentity() {
		return nil, fmt.Errorf("public key: identity: %w", group.ErrInvalidPoint)
	}
	return &PublicKey{point: p}, nil
}

// SignatureFromBytes decodes a signature and checks that it lies in the
// prime-order subgroup.
func (s *Scheme) SignatureFromBytes(b []byte) (*Signature, error) {
	p, err := codec.DecodePoint(s.curve, s.sigKind(), b)
	if err != nil {
		return nil, fmt.Errorf("signature: %w", err)
	}
	return &Signature{point: p}, nil
}

// ParsePublicKey decodes the hex form produced by PublicKey.MarshalText.
func (s *Scheme) ParsePublicKey(text string) (*PublicKey, error) {
	b, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("public key: %v: %w", err, group.ErrMalformedEncoding)
	}
	return s.PublicKeyFromBytes(b)
}

// ParseSignature decodes the hex form produced by Signature.MarshalText.
func (s *Scheme) ParseSignature(text string) (*Signature, error) {
	b, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("signature: %v: %w", err, group.ErrMalformedEncoding)
	}
	return s.SignatureFromBytes(b)
}
