package dist_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvprob/dist"
)

// countingSeq yields values and counts how many times it was started.
func countingSeq(values []int, starts *int) iter.Seq[int] {
	return func(yield func(int) bool) {
		*starts++
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

func TestLazyUniform_NotConsumedAtConstruction(t *testing.T) {
	var starts int
	_, err := dist.NewLazyUniform(countingSeq([]int{1, 2, 3}, &starts), 3)
	require.NoError(t, err)
	assert.Zero(t, starts)
}

func TestLazyUniform_Invalid(t *testing.T) {
	_, err := dist.NewLazyUniform[int](nil, 3)
	assert.ErrorIs(t, err, dist.ErrEmptyDistribution)

	_, err = dist.NewLazyUniform(slices.Values([]int{1}), 0)
	assert.ErrorIs(t, err, dist.ErrEmptyDistribution)
}

func TestLazyUniform_Semantics(t *testing.T) {
	var starts int
	l := dist.Must(dist.NewLazyUniform(countingSeq([]int{1, 2, 2, 3}, &starts), 4))

	assert.Equal(t, 0.5, l.Score(2))
	assert.Equal(t, 0.0, l.Score(7))
	assert.Equal(t, 0.75, l.ScoreFunc(func(x int) bool { return x < 3 }))

	// Support is deduplicated and restartable.
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(l.Support()))
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(l.Support()))

	v, err := l.Sample(&fixedRand{intn: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	assert.Equal(t, 4, l.Count())
	assert.Equal(t, 6, starts)
}

func TestLazyUniform_FilterMaterializes(t *testing.T) {
	l := dist.Must(dist.NewLazyUniform(slices.Values([]int{1, 2, 2, 3}), 4))

	f, err := l.Filter(func(x int) bool { return x >= 2 })
	require.NoError(t, err)
	assert.Equal(t, dist.KindUniform, f.Kind())
	assert.InDelta(t, 2.0/3, f.Score(2), eps)

	_, err = l.Filter(func(int) bool { return false })
	assert.ErrorIs(t, err, dist.ErrEmptyDistribution)
}

func TestLazyUniform_CountMismatch(t *testing.T) {
	short := dist.Must(dist.NewLazyUniform(slices.Values([]int{1, 2, 3}), 4))
	long := dist.Must(dist.NewLazyUniform(slices.Values([]int{1, 2, 3, 4, 5}), 4))

	_, err := short.Filter(func(int) bool { return true })
	assert.ErrorIs(t, err, dist.ErrCountMismatch)
	_, err = long.Filter(func(int) bool { return true })
	assert.ErrorIs(t, err, dist.ErrCountMismatch)

	_, err = short.Sample(&fixedRand{intn: 3})
	assert.ErrorIs(t, err, dist.ErrCountMismatch)

	assert.Panics(t, func() { short.Score(1) })
	assert.Panics(t, func() { long.ScoreFunc(func(int) bool { return true }) })
	assert.Panics(t, func() { slices.Collect(short.Support()) })
	assert.Panics(t, func() { slices.Collect(long.Support()) })

	// Stopping early never drains the sequence, so nothing is detected.
	assert.NotPanics(t, func() {
		for range long.Support() {
			break
		}
	})
}

func TestLazyUniform_ChainSourceSinglePass(t *testing.T) {
	values := make([]int, 100)
	for i := range values {
		values[i] = i
	}
	var starts int
	l := dist.Must(dist.NewLazyUniform(countingSeq(values, &starts), len(values)))
	digits := dist.Map[int, int](l, func(x int) int { return x % 10 })

	assert.InDelta(t, 0.1, digits.Score(3), eps)
	assert.Equal(t, 1, starts)

	assert.Len(t, slices.Collect(digits.Support()), 10)
	assert.Equal(t, 2, starts)

	assert.InDelta(t, 0.5, digits.ScoreFunc(func(d int) bool { return d < 5 }), eps)
	assert.Equal(t, 3, starts)

	// A Chain over a broken sequence still detects the mismatch.
	short := dist.Must(dist.NewLazyUniform(slices.Values([]int{1, 2}), 3))
	assert.Panics(t, func() { dist.Map[int, int](short, func(x int) int { return x }).Score(1) })
}
