package dist

import (
	"cmp"
	"fmt"
	"iter"
	"math"
	"slices"
)

// Discrete is an explicit probability table.
//
// Invariants (enforced at construction):
//   - every probability is finite and ≥ 0;
//   - |Σp − 1| ≤ tolerance (absolute deviation, see WithTolerance);
//   - keys are unique; the entry order is fixed and drives Sample.
type Discrete[T comparable] struct {
	entries   []Entry[T]
	index     map[T]int
	tolerance float64
}

// NewDiscrete builds a table from entries, preserving their order.
// A later entry for an already seen value overwrites its probability but
// keeps the position of the first occurrence (mapping semantics).
//
// Errors:
//   - ErrInvalidProbability — negative, NaN or infinite entry, or a total
//     whose absolute deviation from 1 exceeds the tolerance.
//   - ErrEmptyDistribution  — no entries.
//
// Complexity: O(n) time and space.
func NewDiscrete[T comparable](entries []Entry[T], opts ...Option) (*Discrete[T], error) {
	cfg := newConfig(opts...)
	if len(entries) == 0 {
		return nil, fmt.Errorf("NewDiscrete: no entries: %w", ErrEmptyDistribution)
	}

	var (
		kept  = make([]Entry[T], 0, len(entries))
		index = make(map[T]int, len(entries))
		total float64
	)
	for _, e := range entries {
		if math.IsNaN(e.Prob) || math.IsInf(e.Prob, 0) || e.Prob < 0 {
			return nil, fmt.Errorf("NewDiscrete: value %v has probability %g: %w", e.Value, e.Prob, ErrInvalidProbability)
		}
		if i, ok := index[e.Value]; ok {
			kept[i].Prob = e.Prob
			continue
		}
		index[e.Value] = len(kept)
		kept = append(kept, e)
	}
	for _, e := range kept {
		total += e.Prob
	}
	if math.Abs(total-1) > cfg.tolerance {
		return nil, fmt.Errorf("NewDiscrete: total mass %g deviates from 1 by more than %g: %w",
			total, cfg.tolerance, ErrInvalidProbability)
	}

	return &Discrete[T]{entries: kept, index: index, tolerance: cfg.tolerance}, nil
}

// FromMap builds a table from a map. Map iteration order is random, so the
// keys are sorted ascending to keep sampling reproducible for a fixed seed.
func FromMap[T cmp.Ordered](m map[T]float64, opts ...Option) (*Discrete[T], error) {
	keys := make([]T, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	entries := make([]Entry[T], len(keys))
	for i, k := range keys {
		entries[i] = Entry[T]{Value: k, Prob: m[k]}
	}
	return NewDiscrete(entries, opts...)
}

// newDiscreteTrusted wraps entries whose keys are already unique and whose
// mass is already normalized (renormalized or aggregated from a valid table).
func newDiscreteTrusted[T comparable](entries []Entry[T], tolerance float64) *Discrete[T] {
	index := make(map[T]int, len(entries))
	for i, e := range entries {
		index[e.Value] = i
	}
	return &Discrete[T]{entries: entries, index: index, tolerance: tolerance}
}

// Entries returns a copy of the table in sampling order.
func (d *Discrete[T]) Entries() []Entry[T] {
	return slices.Clone(d.entries)
}

// Len returns the number of table entries.
func (d *Discrete[T]) Len() int { return len(d.entries) }

// Score is a table lookup; missing values score 0.
func (d *Discrete[T]) Score(t T) float64 {
	if i, ok := d.index[t]; ok {
		return d.entries[i].Prob
	}
	return 0
}

// ScoreFunc sums the entries whose value satisfies pred.
func (d *Discrete[T]) ScoreFunc(pred func(T) bool) float64 {
	var sum float64
	for _, e := range d.entries {
		if pred(e.Value) {
			sum += e.Prob
		}
	}
	return sum
}

// Filter keeps the matching entries and divides each by the kept total.
// ErrEmptyDistribution if the kept total is 0.
//
// Complexity: O(n).
func (d *Discrete[T]) Filter(pred func(T) bool) (Distribution[T], error) {
	var (
		kept  []Entry[T]
		total float64
	)
	for _, e := range d.entries {
		if pred(e.Value) {
			kept = append(kept, e)
			total += e.Prob
		}
	}
	if total == 0 {
		return nil, fmt.Errorf("Discrete.Filter: kept %d of %d entries with zero mass: %w",
			len(kept), len(d.entries), ErrEmptyDistribution)
	}
	for i := range kept {
		kept[i].Prob /= total
	}
	return newDiscreteTrusted(kept, d.tolerance), nil
}

// Sample draws u ∈ [0,1) and walks the table in order, returning the first
// value whose cumulative upper bound exceeds u.
//
// Policy: if rounding leaves u above the accumulated total the walk fails
// with ErrSamplingExhausted instead of returning the last key.
//
// Complexity: O(n).
func (d *Discrete[T]) Sample(r Rand) (T, error) {
	var (
		u       = r.Float64()
		current float64
	)
	for _, e := range d.entries {
		if current+e.Prob > u {
			return e.Value, nil
		}
		current += e.Prob
	}
	var zero T
	return zero, fmt.Errorf("Discrete.Sample: u=%g above cumulative mass %g: %w", u, current, ErrSamplingExhausted)
}

// Support yields the distinct keys with non-zero probability, in table order.
func (d *Discrete[T]) Support() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range d.entries {
			if e.Prob == 0 {
				continue
			}
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Kind reports KindDiscrete.
func (d *Discrete[T]) Kind() Kind { return KindDiscrete }

func (d *Discrete[T]) sealed() {}
