package dist

import (
	"fmt"
	"iter"
	"slices"
)

// Uniform gives every element of a finite multiset probability 1/n.
// A value occurring k times has aggregate probability k/n; Support yields it
// once, in first-occurrence order.
type Uniform[T comparable] struct {
	values []T
	counts map[T]int
	order  []T // distinct values, first occurrence
}

// NewUniform builds a Uniform over a copy of values.
// ErrEmptyDistribution if values is empty.
//
// Complexity: O(n).
func NewUniform[T comparable](values []T) (*Uniform[T], error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("NewUniform: no values: %w", ErrEmptyDistribution)
	}
	return newUniformOwned(slices.Clone(values)), nil
}

// IntRange is the uniform distribution over the integers lo..hi inclusive,
// e.g. IntRange(1, 6) for a die. ErrInvalidRange if hi < lo.
func IntRange(lo, hi int) (*Uniform[int], error) {
	if hi < lo {
		return nil, fmt.Errorf("IntRange: [%d, %d]: %w", lo, hi, ErrInvalidRange)
	}
	values := make([]int, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		values = append(values, v)
	}
	return newUniformOwned(values), nil
}

// newUniformOwned takes ownership of a non-empty slice.
func newUniformOwned[T comparable](values []T) *Uniform[T] {
	u := &Uniform[T]{
		values: values,
		counts: make(map[T]int, len(values)),
	}
	for _, v := range values {
		if u.counts[v] == 0 {
			u.order = append(u.order, v)
		}
		u.counts[v]++
	}
	return u
}

// Len returns the multiset size n (duplicates included).
func (u *Uniform[T]) Len() int { return len(u.values) }

// Values returns a copy of the backing multiset.
func (u *Uniform[T]) Values() []T { return slices.Clone(u.values) }

// Score returns occurrences(t)/n.
func (u *Uniform[T]) Score(t T) float64 {
	return float64(u.counts[t]) / float64(len(u.values))
}

// ScoreFunc returns the number of matching elements divided by n.
func (u *Uniform[T]) ScoreFunc(pred func(T) bool) float64 {
	var matched int
	for _, v := range u.values {
		if pred(v) {
			matched++
		}
	}
	return float64(matched) / float64(len(u.values))
}

// Filter re-materializes a Uniform over the matching elements, duplicates
// included. ErrEmptyDistribution if nothing matches.
func (u *Uniform[T]) Filter(pred func(T) bool) (Distribution[T], error) {
	kept := make([]T, 0, len(u.values))
	for _, v := range u.values {
		if pred(v) {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("Uniform.Filter: none of %d values kept: %w", len(u.values), ErrEmptyDistribution)
	}
	return newUniformOwned(kept), nil
}

// Sample returns the element at a uniformly drawn index.
func (u *Uniform[T]) Sample(r Rand) (T, error) {
	return u.values[r.Intn(len(u.values))], nil
}

// Support yields the distinct values.
func (u *Uniform[T]) Support() iter.Seq[T] {
	return slices.Values(u.order)
}

// Kind reports KindUniform.
func (u *Uniform[T]) Kind() Kind { return KindUniform }

func (u *Uniform[T]) sealed() {}
