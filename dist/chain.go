package dist

import (
	"fmt"
	"iter"
	"sync"
)

// Chain is the monadic bind of the algebra: draw s from source, then draw
// from next(s). Nothing is expanded at construction.
//
//	Score(t)   = Σ_s source(s) · next(s).Score(t)        (total probability)
//	Sample     = next(source.Sample()).Sample()          (ancestral)
//	Support    = ⋃_s next(s).Support(), deduplicated
//
// Source values with zero weight are skipped. Exact Score/Support visit the
// whole source support and call next once per source value, recursively:
// the cost is the product of the stage support sizes.
//
// A filtered Chain keeps a predicate and the evidence P(keep), computed once
// on first use; it scores P(t)·[keep(t)] / P(keep).
type Chain[S, T comparable] struct {
	source Distribution[S]
	next   func(S) Distribution[T]
	keep   func(T) bool // nil: unconditioned
	ev     *evidence
}

// evidence memoizes P(keep). Shared by pointer so that Chain values stay
// immutable while the lazy total is computed at most once.
type evidence struct {
	once sync.Once
	mass float64
}

func newChain[S, T comparable](source Distribution[S], next func(S) Distribution[T]) *Chain[S, T] {
	return &Chain[S, T]{source: source, next: next}
}

// tallied is implemented by sources that can weigh their whole support in
// one pass.
type tallied[S comparable] interface {
	weights() iter.Seq2[S, float64]
}

// branches yields each distinct source value with non-zero weight and its
// weight.
func (c *Chain[S, T]) branches() iter.Seq2[S, float64] {
	if t, ok := c.source.(tallied[S]); ok {
		return t.weights()
	}
	return func(yield func(S, float64) bool) {
		for s := range distinct(c.source.Support()) {
			w := c.source.Score(s)
			if w == 0 {
				continue
			}
			if !yield(s, w) {
				return
			}
		}
	}
}

// rawScoreFunc is the unconditioned mass of pred.
func (c *Chain[S, T]) rawScoreFunc(pred func(T) bool) float64 {
	var total float64
	for s, w := range c.branches() {
		total += w * c.next(s).ScoreFunc(pred)
	}
	return total
}

func (c *Chain[S, T]) normalizer() float64 {
	c.ev.once.Do(func() {
		c.ev.mass = c.rawScoreFunc(c.keep)
	})
	return c.ev.mass
}

// Score returns the probability of t by the law of total probability.
func (c *Chain[S, T]) Score(t T) float64 {
	if c.keep == nil {
		var total float64
		for s, w := range c.branches() {
			total += w * c.next(s).Score(t)
		}
		return total
	}
	if !c.keep(t) {
		return 0
	}
	z := c.normalizer()
	if z == 0 {
		return 0
	}
	var total float64
	for s, w := range c.branches() {
		total += w * c.next(s).Score(t)
	}
	return total / z
}

// ScoreFunc returns the total probability of the values satisfying pred.
func (c *Chain[S, T]) ScoreFunc(pred func(T) bool) float64 {
	if c.keep == nil {
		return c.rawScoreFunc(pred)
	}
	z := c.normalizer()
	if z == 0 {
		return 0
	}
	keep := c.keep
	return c.rawScoreFunc(func(t T) bool { return keep(t) && pred(t) }) / z
}

// Filter conditions the whole chain on pred without enumerating anything.
// Emptiness is only decidable by enumeration, so it surfaces later as
// ErrEmptyDistribution from Sample (and as zero scores). Mixture.Filter
// forces that enumeration for its Chain components.
func (c *Chain[S, T]) Filter(pred func(T) bool) (Distribution[T], error) {
	keep := pred
	if prev := c.keep; prev != nil {
		keep = func(t T) bool { return prev(t) && pred(t) }
	}
	return &Chain[S, T]{source: c.source, next: c.next, keep: keep, ev: new(evidence)}, nil
}

// massless reports whether a filtered chain kept no probability at all.
// The evidence is memoized, so later Score and Sample calls reuse it.
func (c *Chain[S, T]) massless() bool {
	return c.keep != nil && c.normalizer() == 0
}

func (c *Chain[S, T]) ancestral(r Rand) (T, error) {
	s, err := c.source.Sample(r)
	if err != nil {
		var zero T
		return zero, err
	}
	return c.next(s).Sample(r)
}

// Sample is ancestral sampling. A filtered chain rejects draws failing the
// predicate; after maxRejections attempts it falls back to an exact walk over
// the conditioned support. Both paths draw from the same conditional
// distribution.
func (c *Chain[S, T]) Sample(r Rand) (T, error) {
	if c.keep == nil {
		return c.ancestral(r)
	}
	for attempt := 0; attempt < maxRejections; attempt++ {
		t, err := c.ancestral(r)
		if err != nil {
			return t, err
		}
		if c.keep(t) {
			return t, nil
		}
	}
	return c.sampleExact(r)
}

func (c *Chain[S, T]) sampleExact(r Rand) (T, error) {
	var zero T
	if c.normalizer() == 0 {
		return zero, fmt.Errorf("Chain.Sample: conditioned chain has no mass: %w", ErrEmptyDistribution)
	}
	var (
		u       = r.Float64()
		current float64
	)
	for t := range c.Support() {
		current += c.Score(t)
		if current > u {
			return t, nil
		}
	}
	return zero, fmt.Errorf("Chain.Sample: u=%g above cumulative mass %g: %w", u, current, ErrSamplingExhausted)
}

// Support flat-maps the continuation supports, yielding each value once.
func (c *Chain[S, T]) Support() iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[T]struct{})
		for s := range c.branches() {
			for t := range c.next(s).Support() {
				if c.keep != nil && !c.keep(t) {
					continue
				}
				if _, ok := seen[t]; ok {
					continue
				}
				seen[t] = struct{}{}
				if !yield(t) {
					return
				}
			}
		}
	}
}

// Kind reports KindChain.
func (c *Chain[S, T]) Kind() Kind { return KindChain }

func (c *Chain[S, T]) sealed() {}

// distinct drops repeated values from seq, keeping first occurrences.
func distinct[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[T]struct{})
		for v := range seq {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}
