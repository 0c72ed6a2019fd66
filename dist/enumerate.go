package dist

import (
	"fmt"
	"math"
)

// Enumerate flattens any distribution into an explicit table by visiting
// its distinct support once and scoring every value. Zero-score values are
// dropped. Use it to pre-aggregate an intermediate stage so that chains
// built on top of it stay shallow.
//
// Options: WithSupportLimit bounds the number of distinct values visited
// (ErrSupportLimit beyond it); WithTolerance bounds the accepted deviation of
// the total from 1 (ErrInvalidProbability); WithLogger emits one debug
// record per call.
//
// Complexity: O(k · cost(Score)) for k distinct support values.
func Enumerate[T comparable](d Distribution[T], opts ...Option) (*Discrete[T], error) {
	cfg := newConfig(opts...)

	var (
		entries []Entry[T]
		visited int
		total   float64
	)
	for t := range distinct(d.Support()) {
		visited++
		if cfg.supportLimit > 0 && visited > cfg.supportLimit {
			return nil, fmt.Errorf("Enumerate: %v support beyond %d values: %w", d.Kind(), cfg.supportLimit, ErrSupportLimit)
		}
		p := d.Score(t)
		if p == 0 {
			continue
		}
		entries = append(entries, Entry[T]{Value: t, Prob: p})
		total += p
	}

	if cfg.logger != nil {
		cfg.logger.Debug("dist: enumerated",
			"kind", d.Kind().String(),
			"support", visited,
			"entries", len(entries),
			"mass", total,
		)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("Enumerate: %v has no mass: %w", d.Kind(), ErrEmptyDistribution)
	}
	if math.Abs(total-1) > cfg.tolerance {
		return nil, fmt.Errorf("Enumerate: %v total mass %g: %w", d.Kind(), total, ErrInvalidProbability)
	}
	for i := range entries {
		entries[i].Prob /= total
	}
	return newDiscreteTrusted(entries, cfg.tolerance), nil
}
