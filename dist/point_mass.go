package dist

import (
	"fmt"
	"iter"
)

// PointMass is the deterministic distribution: one value with probability 1.
type PointMass[T comparable] struct {
	value T
}

// NewPointMass returns the distribution that always yields v.
func NewPointMass[T comparable](v T) *PointMass[T] {
	return &PointMass[T]{value: v}
}

// Always is shorthand for NewPointMass, convenient inside continuations.
func Always[T comparable](v T) Distribution[T] {
	return &PointMass[T]{value: v}
}

// Value returns the held value.
func (p *PointMass[T]) Value() T { return p.value }

// Score returns 1 for the held value, 0 otherwise.
func (p *PointMass[T]) Score(t T) float64 {
	if t == p.value {
		return 1
	}
	return 0
}

// ScoreFunc returns 1 if pred accepts the held value, 0 otherwise.
func (p *PointMass[T]) ScoreFunc(pred func(T) bool) float64 {
	if pred(p.value) {
		return 1
	}
	return 0
}

// Filter returns p itself when pred accepts the value. A deterministic
// distribution cannot be filtered to nothing, so rejection is
// ErrEmptyDistribution.
func (p *PointMass[T]) Filter(pred func(T) bool) (Distribution[T], error) {
	if !pred(p.value) {
		return nil, fmt.Errorf("PointMass.Filter: value %v rejected: %w", p.value, ErrEmptyDistribution)
	}
	return p, nil
}

// Sample returns the held value; r is ignored and may be nil.
func (p *PointMass[T]) Sample(Rand) (T, error) {
	return p.value, nil
}

// Support yields exactly one element.
func (p *PointMass[T]) Support() iter.Seq[T] {
	return func(yield func(T) bool) {
		yield(p.value)
	}
}

// Kind reports KindPointMass.
func (p *PointMass[T]) Kind() Kind { return KindPointMass }

func (p *PointMass[T]) sealed() {}
