package dist

import (
	"fmt"
	"iter"
)

// LazyUniform is Uniform over a sequence that is produced on demand.
// The sequence must be restartable and must yield exactly count elements.
//
// Cost model (caller's responsibility to keep count reasonable):
//   - Score, ScoreFunc, Filter: one full pass, O(count).
//   - Sample: O(index) to skip to a uniformly drawn index.
//   - Support: O(count) with a set of the distinct values seen so far.
//   - As the source of a Chain: one O(count) pass tallies every distinct
//     value, so exact Score and Support of Bind/Map stay linear in count.
//
// A sequence that yields more or fewer than count elements breaks the
// contract. Filter and Sample report it as ErrCountMismatch; Score,
// ScoreFunc and Support cannot return an error and panic with an error
// wrapping ErrCountMismatch once a full drain detects it.
type LazyUniform[T comparable] struct {
	seq   iter.Seq[T]
	count int
}

// NewLazyUniform declares a uniform distribution over seq, which must yield
// exactly count elements. The sequence is not consumed here.
// ErrEmptyDistribution if seq is nil or count ≤ 0.
func NewLazyUniform[T comparable](seq iter.Seq[T], count int) (*LazyUniform[T], error) {
	if seq == nil || count <= 0 {
		return nil, fmt.Errorf("NewLazyUniform: count %d: %w", count, ErrEmptyDistribution)
	}
	return &LazyUniform[T]{seq: seq, count: count}, nil
}

// Count returns the declared number of elements.
func (l *LazyUniform[T]) Count() int { return l.count }

// drain visits every element and verifies the declared count.
func (l *LazyUniform[T]) drain(method string, visit func(T)) error {
	var n int
	for v := range l.seq {
		n++
		if n > l.count {
			return fmt.Errorf("LazyUniform.%s: more than %d elements: %w", method, l.count, ErrCountMismatch)
		}
		visit(v)
	}
	if n != l.count {
		return fmt.Errorf("LazyUniform.%s: %d elements, declared %d: %w", method, n, l.count, ErrCountMismatch)
	}
	return nil
}

// Score scans the whole sequence and returns occurrences(t)/count.
func (l *LazyUniform[T]) Score(t T) float64 {
	return l.ScoreFunc(func(v T) bool { return v == t })
}

// ScoreFunc scans the whole sequence and returns matches/count.
func (l *LazyUniform[T]) ScoreFunc(pred func(T) bool) float64 {
	var matched int
	if err := l.drain("ScoreFunc", func(v T) {
		if pred(v) {
			matched++
		}
	}); err != nil {
		panic(err)
	}
	return float64(matched) / float64(l.count)
}

// Filter forces one enumeration and returns a finite Uniform over the
// matching elements.
func (l *LazyUniform[T]) Filter(pred func(T) bool) (Distribution[T], error) {
	kept := make([]T, 0)
	if err := l.drain("Filter", func(v T) {
		if pred(v) {
			kept = append(kept, v)
		}
	}); err != nil {
		return nil, err
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("LazyUniform.Filter: none of %d values kept: %w", l.count, ErrEmptyDistribution)
	}
	return newUniformOwned(kept), nil
}

// Sample draws an index in [0, count) and skips to it. Only a short sequence
// is detected here; an overlong one is not, because the tail is never read.
func (l *LazyUniform[T]) Sample(r Rand) (T, error) {
	var (
		target = r.Intn(l.count)
		i      int
	)
	for v := range l.seq {
		if i == target {
			return v, nil
		}
		i++
	}
	var zero T
	return zero, fmt.Errorf("LazyUniform.Sample: index %d beyond %d yielded elements: %w", target, i, ErrCountMismatch)
}

// Support yields each distinct element once, in first-occurrence order.
// The count check runs only if the consumer drains the whole sequence.
func (l *LazyUniform[T]) Support() iter.Seq[T] {
	return func(yield func(T) bool) {
		var (
			seen = make(map[T]struct{})
			n    int
		)
		for v := range l.seq {
			n++
			if n > l.count {
				panic(fmt.Errorf("LazyUniform.Support: more than %d elements: %w", l.count, ErrCountMismatch))
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			if !yield(v) {
				return
			}
		}
		if n != l.count {
			panic(fmt.Errorf("LazyUniform.Support: %d elements, declared %d: %w", n, l.count, ErrCountMismatch))
		}
	}
}

// weights tallies the sequence in a single drain and yields every distinct
// value with its probability, in first-occurrence order. Chain uses it
// instead of one Score scan per value.
func (l *LazyUniform[T]) weights() iter.Seq2[T, float64] {
	return func(yield func(T, float64) bool) {
		var (
			order  []T
			counts = make(map[T]int)
		)
		if err := l.drain("Support", func(v T) {
			if counts[v] == 0 {
				order = append(order, v)
			}
			counts[v]++
		}); err != nil {
			panic(err)
		}
		for _, v := range order {
			if !yield(v, float64(counts[v])/float64(l.count)) {
				return
			}
		}
	}
}

// Kind reports KindLazyUniform.
func (l *LazyUniform[T]) Kind() Kind { return KindLazyUniform }

func (l *LazyUniform[T]) sealed() {}
