package bls

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/f3rmion/blsagg/group"
)

// parallelMap applies f to every element of in using up to GOMAXPROCS
// goroutines. The output is index-aligned with in. It stops early and
// returns the context error once ctx is done.
func parallelMap[T, R any](ctx context.Context, in []T, f func(int, T) R) ([]R, error) {
	out := make([]R, len(in))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range in {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = f(i, in[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// SignBatch signs msgs[i] with sks[i] for every i in parallel.
func (s *Scheme) SignBatch(ctx context.Context, sks []*PrivateKey, msgs [][]byte) ([]*Signature, error) {
	if len(sks) != len(msgs) {
		return nil, fmt.Errorf("sign batch: %d keys, %d messages: %w", len(sks), len(msgs), ErrLengthMismatch)
	}
	log.Debugf("sign batch: %d messages", len(msgs))
	return parallelMap(ctx, sks, func(i int, sk *PrivateKey) *Signature {
		return s.Sign(sk, msgs[i])
	})
}

// HashBatch maps every message to its message point in parallel.
func (s *Scheme) HashBatch(ctx context.Context, msgs [][]byte) ([]group.Point, error) {
	log.Debugf("hash batch: %d messages", len(msgs))
	return parallelMap(ctx, msgs, func(_ int, m []byte) group.Point {
		return s.Hash(m)
	})
}

// PublicKeyBatch derives the public key of every private key in parallel.
func (s *Scheme) PublicKeyBatch(ctx context.Context, sks []*PrivateKey) ([]*PublicKey, error) {
	return parallelMap(ctx, sks, func(_ int, sk *PrivateKey) *PublicKey {
		return s.PublicKey(sk)
	})
}

// AggregateTree sums sigs by pairwise tree reduction, adding the pairs of
// each level in parallel. The result equals Aggregate(sigs).
func (s *Scheme) AggregateTree(ctx context.Context, sigs []*Signature) (*Signature, error) {
	if len(sigs) == 0 {
		return nil, fmt.Errorf("aggregate tree: %w", ErrEmptyInput)
	}
	level := make([]group.Point, len(sigs))
	for i, sig := range sigs {
		if sig == nil {
			return nil, fmt.Errorf("aggregate tree: signature %d is nil", i)
		}
		level[i] = sig.point
	}
	for len(level) > 1 {
		pairs := make([]int, (len(level)+1)/2)
		next, err := parallelMap(ctx, pairs, func(i int, _ int) group.Point {
			p := s.sigGroup.NewPoint().Set(level[2*i])
			if 2*i+1 < len(level) {
				p.Add(p, level[2*i+1])
			}
			return p
		})
		if err != nil {
			return nil, err
		}
		level = next
	}
	return &Signature{point: s.sigGroup.NewPoint().Set(level[0])}, nil
}

// VerifyConcurrent is Verify with the right-hand side pairings evaluated in
// parallel. The error is non-nil only if ctx ends first.
func (s *Scheme) VerifyConcurrent(ctx context.Context, sig *Signature, hashes []group.Point, pks []*PublicKey) (bool, error) {
	if sig == nil || len(hashes) == 0 || len(hashes) != len(pks) {
		return false, nil
	}
	for i := range hashes {
		if hashes[i] == nil || pks[i] == nil || pks[i].point.IsIdentity() {
			return false, nil
		}
	}
	terms, err := parallelMap(ctx, hashes, func(i int, h group.Point) group.Target {
		return s.pair(pks[i].point, h)
	})
	if err != nil {
		return false, err
	}
	rhs := s.curve.NewTarget()
	for _, t := range terms {
		rhs.Combine(rhs, t)
	}
	lhs := s.pair(s.keyGroup.Generator(), sig.point)
	return lhs.Equal(rhs), nil
}
