// Package disttest provides testify-style assertions and a chi-square
// goodness-of-fit check for code that builds dist distributions.
//
// All helpers take assert.TestingT, so they work with *testing.T, with
// require-wrapped tests and with mocks alike.
package disttest

import (
	"fmt"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvprob/dist"
)

// Delta is the absolute tolerance used by the assertions of this package.
const Delta = 1e-9

// Values returns the distinct support of d in support order.
func Values[T comparable](d dist.Distribution[T]) []T {
	var (
		out  []T
		seen = make(map[T]struct{})
	)
	for v := range d.Support() {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// AssertProbability asserts |want − got| ≤ Delta.
func AssertProbability(t assert.TestingT, want, got float64, msgAndArgs ...interface{}) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return assert.InDelta(t, want, got, Delta, msgAndArgs...)
}

// AssertNormalized asserts that the scores of the distinct support of d sum
// to 1 and that every score lies in [0, 1].
func AssertNormalized[T comparable](t assert.TestingT, d dist.Distribution[T], msgAndArgs ...interface{}) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	var (
		total float64
		ok    = true
	)
	for _, v := range Values(d) {
		p := d.Score(v)
		if p < 0 || p > 1+Delta {
			ok = assert.Fail(t, fmt.Sprintf("score of %v is %g, outside [0, 1]", v, p), msgAndArgs...) && ok
		}
		total += p
	}
	return assert.InDelta(t, 1.0, total, 1e-6, msgAndArgs...) && ok
}

// AssertSupport asserts that the distinct support of d equals want, ignoring
// order.
func AssertSupport[T comparable](t assert.TestingT, want []T, d dist.Distribution[T], msgAndArgs ...interface{}) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return assert.ElementsMatch(t, want, Values(d), msgAndArgs...)
}

// AssertConsistent asserts that d.ScoreFunc(pred) equals the sum of Score
// over the distinct support values satisfying pred.
func AssertConsistent[T comparable](t assert.TestingT, d dist.Distribution[T], pred func(T) bool, msgAndArgs ...interface{}) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	var sum float64
	for _, v := range Values(d) {
		if pred(v) {
			sum += d.Score(v)
		}
	}
	return assert.InDelta(t, sum, d.ScoreFunc(pred), 1e-9, msgAndArgs...)
}

// GoodnessOfFit draws n samples from d and returns the p-value of Pearson's
// chi-square test of the empirical counts against the exact scores. Small
// p-values (say < 0.001 with a fixed seed) mean Sample disagrees with Score.
//
// Support values with zero score are ignored; a draw outside the scored
// support is reported as an error.
func GoodnessOfFit[T comparable](d dist.Distribution[T], r dist.Rand, n int) (float64, error) {
	counts, err := dist.SampleN(d, n, r)
	if err != nil {
		return 0, err
	}

	var (
		observed []float64
		expected []float64
		covered  int
	)
	for _, v := range Values(d) {
		p := d.Score(v)
		if p == 0 {
			continue
		}
		observed = append(observed, float64(counts[v]))
		expected = append(expected, p*float64(n))
		covered += counts[v]
	}
	if covered != n {
		return 0, fmt.Errorf("disttest: %d of %d draws fell outside the scored support", n-covered, n)
	}
	if len(expected) < 2 {
		return 1, nil
	}

	chi2 := stat.ChiSquare(observed, expected)
	return distuv.ChiSquared{K: float64(len(expected) - 1)}.Survival(chi2), nil
}
