package dist

import (
	"fmt"
	"iter"
	"slices"
)

// Mixture is the equal-weight union of same-typed components: each of the k
// components carries weight 1/k regardless of its support size.
//
// Sample picks a component with r.Intn(k) and then samples it. Support is
// the concatenation of the component supports and is NOT deduplicated, so a
// value shared by two components is yielded twice.
type Mixture[T comparable] struct {
	components []Distribution[T]
}

// NewMixture combines components. ErrEmptyDistribution if there are none.
func NewMixture[T comparable](components ...Distribution[T]) (*Mixture[T], error) {
	if len(components) == 0 {
		return nil, fmt.Errorf("NewMixture: no components: %w", ErrEmptyDistribution)
	}
	return &Mixture[T]{components: slices.Clone(components)}, nil
}

// Components returns a copy of the component list.
func (m *Mixture[T]) Components() []Distribution[T] {
	return slices.Clone(m.components)
}

// Score averages the component scores.
func (m *Mixture[T]) Score(t T) float64 {
	var sum float64
	for _, c := range m.components {
		sum += c.Score(t)
	}
	return sum / float64(len(m.components))
}

// ScoreFunc averages the component masses of pred.
func (m *Mixture[T]) ScoreFunc(pred func(T) bool) float64 {
	var sum float64
	for _, c := range m.components {
		sum += c.ScoreFunc(pred)
	}
	return sum / float64(len(m.components))
}

// Filter filters every component and keeps equal weights. If any component
// filters to nothing the whole call fails with ErrEmptyDistribution, even
// when other components still hold mass. Chain components are lazy, so their
// evidence is computed here to decide emptiness.
func (m *Mixture[T]) Filter(pred func(T) bool) (Distribution[T], error) {
	filtered := make([]Distribution[T], len(m.components))
	for i, c := range m.components {
		f, err := c.Filter(pred)
		if err != nil {
			return nil, fmt.Errorf("Mixture.Filter: component %d: %w", i, err)
		}
		if c, ok := f.(interface{ massless() bool }); ok && c.massless() {
			return nil, fmt.Errorf("Mixture.Filter: component %d kept no mass: %w", i, ErrEmptyDistribution)
		}
		filtered[i] = f
	}
	return &Mixture[T]{components: filtered}, nil
}

// Sample uses two draws: one to pick a component, one from that component.
func (m *Mixture[T]) Sample(r Rand) (T, error) {
	return m.components[r.Intn(len(m.components))].Sample(r)
}

// Support concatenates the component supports.
func (m *Mixture[T]) Support() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, c := range m.components {
			for t := range c.Support() {
				if !yield(t) {
					return
				}
			}
		}
	}
}

// Kind reports KindMixture.
func (m *Mixture[T]) Kind() Kind { return KindMixture }

func (m *Mixture[T]) sealed() {}
