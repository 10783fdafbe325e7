package session

import (
	"errors"
	"fmt"
	"sync"

	logging "github.com/ipfs/go-log/v2"

	"github.com/f3rmion/blsagg/bls"
)

var log = logging.Logger("session")

var (
	// ErrMessageNotDistinct is returned when a message repeats and one of
	// its signers has not proven possession of its key.
	ErrMessageNotDistinct = errors.New("message not distinct")

	// ErrUnknownSigner is returned by a collector that requires proofs of
	// possession when a contribution comes from an unregistered key.
	ErrUnknownSigner = errors.New("unknown signer")

	// ErrFinalized is returned when a collector is used after Finalize.
	ErrFinalized = errors.New("collector already finalized")

	// ErrInvalidSignature is returned for a signature or proof that does
	// not verify.
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrDuplicateSigner is returned when a key is registered twice or
	// signs the same message twice.
	ErrDuplicateSigner = errors.New("duplicate signer")
)

// Collector accumulates signatures into one aggregate while enforcing the
// rogue-key precondition: a message may be signed by several keys only if
// every one of them has been registered with a valid proof of possession.
//
// Each contribution is verified on arrival, so a bad signature is
// attributed to its signer instead of invalidating the whole aggregate.
// A Collector is safe for concurrent use and produces exactly one
// [Result].
type Collector struct {
	mu            sync.Mutex
	scheme        *bls.Scheme
	requireProofs bool
	registered    map[string]struct{}
	bySigner      map[string]struct{}
	byMessage     map[string][]string
	messages      [][]byte
	keys          []*bls.PublicKey
	sigs          []*bls.Signature
	finalized     bool
}

// Result is the output of [Collector.Finalize].
type Result struct {
	// Signature is the aggregate of all contributions.
	Signature *bls.Signature

	// Messages and PublicKeys are index-aligned: PublicKeys[i] signed
	// Messages[i].
	Messages   [][]byte
	PublicKeys []*bls.PublicKey

	// Proven is true when every signer was registered with a proof of
	// possession.
	Proven bool
}

// NewCollector creates a collector that accepts any signer, but lets a
// message repeat only among registered signers.
func NewCollector(s *bls.Scheme) *Collector {
	return &Collector{
		scheme:     s,
		registered: make(map[string]struct{}),
		bySigner:   make(map[string]struct{}),
		byMessage:  make(map[string][]string),
	}
}

// NewProvenCollector creates a collector that only accepts contributions
// from registered signers. Messages may then repeat freely.
func NewProvenCollector(s *bls.Scheme) *Collector {
	c := NewCollector(s)
	c.requireProofs = true
	return c
}

// Register records pk after checking its proof of possession.
func (c *Collector) Register(pk *bls.PublicKey, proof *bls.Signature) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.finalized {
		return ErrFinalized
	}
	if !c.scheme.VerifyPossession(pk, proof) {
		log.Warnf("rejected proof of possession for %s", pk)
		return fmt.Errorf("proof of possession: %w", ErrInvalidSignature)
	}
	key := string(pk.Bytes())
	if _, ok := c.registered[key]; ok {
		return fmt.Errorf("register: %w", ErrDuplicateSigner)
	}
	c.registered[key] = struct{}{}
	return nil
}

// Add verifies sig as pk's signature on message and adds it to the
// aggregate. The message is copied.
func (c *Collector) Add(pk *bls.PublicKey, message []byte, sig *bls.Signature) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.finalized {
		return ErrFinalized
	}
	if pk == nil || sig == nil {
		return errors.New("public key and signature must not be nil")
	}

	key := string(pk.Bytes())
	_, proven := c.registered[key]
	if c.requireProofs && !proven {
		return fmt.Errorf("add: %w", ErrUnknownSigner)
	}
	entry := key + string(message)
	if _, ok := c.bySigner[entry]; ok {
		return fmt.Errorf("add: %w", ErrDuplicateSigner)
	}

	// A repeated message is only safe among proven keys.
	if prior := c.byMessage[string(message)]; len(prior) > 0 {
		if !proven {
			return fmt.Errorf("add: unregistered signer: %w", ErrMessageNotDistinct)
		}
		for _, k := range prior {
			if _, ok := c.registered[k]; !ok {
				return fmt.Errorf("add: earlier signer unregistered: %w", ErrMessageNotDistinct)
			}
		}
	}

	if !c.scheme.VerifyMessages(sig, [][]byte{message}, []*bls.PublicKey{pk}) {
		log.Warnf("rejected signature from %s", pk)
		return fmt.Errorf("add: %w", ErrInvalidSignature)
	}

	msgCopy := make([]byte, len(message))
	copy(msgCopy, message)

	c.bySigner[entry] = struct{}{}
	c.byMessage[string(message)] = append(c.byMessage[string(message)], key)
	c.messages = append(c.messages, msgCopy)
	c.keys = append(c.keys, pk)
	c.sigs = append(c.sigs, sig)
	return nil
}

// AddContribution is Add for a [Contribution].
func (c *Collector) AddContribution(ct *Contribution) error {
	return c.Add(ct.PublicKey, ct.Message, ct.Signature)
}

// Len returns the number of accepted contributions.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sigs)
}

// IsFinalized returns true if Finalize has been called.
func (c *Collector) IsFinalized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.finalized
}

// Finalize aggregates the accepted contributions.
//
// This method consumes the collector. Subsequent calls to any mutating
// method return ErrFinalized.
func (c *Collector) Finalize() (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.finalized {
		return nil, ErrFinalized
	}
	agg, err := c.scheme.Aggregate(c.sigs)
	if err != nil {
		return nil, err
	}
	c.finalized = true

	proven := true
	for _, pk := range c.keys {
		if _, ok := c.registered[string(pk.Bytes())]; !ok {
			proven = false
			break
		}
	}
	return &Result{
		Signature:  agg,
		Messages:   c.messages,
		PublicKeys: c.keys,
		Proven:     proven,
	}, nil
}

// Verify checks a finalized aggregate. When all signers are proven and
// all messages are equal, it uses the two-pairing same-message check.
// Without proofs of possession the messages must be pairwise distinct.
func Verify(s *bls.Scheme, r *Result) error {
	if r == nil || r.Signature == nil || len(r.Messages) == 0 {
		return fmt.Errorf("verify: %w", bls.ErrEmptyInput)
	}
	if len(r.Messages) != len(r.PublicKeys) {
		return fmt.Errorf("verify: %d messages, %d keys: %w", len(r.Messages), len(r.PublicKeys), bls.ErrLengthMismatch)
	}
	if !r.Proven && !bls.Distinct(r.Messages) {
		return fmt.Errorf("verify: %w", ErrMessageNotDistinct)
	}

	var ok bool
	if r.Proven && sameMessage(r.Messages) {
		ok = s.VerifySameMessage(r.Signature, r.Messages[0], r.PublicKeys)
	} else {
		ok = s.VerifyMessages(r.Signature, r.Messages, r.PublicKeys)
	}
	if !ok {
		return fmt.Errorf("verify: %w", ErrInvalidSignature)
	}
	return nil
}

func sameMessage(msgs [][]byte) bool {
	for _, m := range msgs[1:] {
		if string(m) != string(msgs[0]) {
			return false
		}
	}
	return true
}
