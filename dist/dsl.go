package dist

import (
	"fmt"
	"math"
	"strings"
)

// SupportWithDensities maps every distinct support value to its score.
//
// Complexity: one Score call per distinct value; see Chain for the cost of
// exact scores on deep chains.
func SupportWithDensities[T comparable](d Distribution[T]) map[T]float64 {
	out := make(map[T]float64)
	for t := range distinct(d.Support()) {
		out[t] = d.Score(t)
	}
	return out
}

// SampleN draws n values and returns how often each occurred.
// The first sampling error aborts the run.
func SampleN[T comparable](d Distribution[T], n int, r Rand) (map[T]int, error) {
	counts := make(map[T]int)
	for i := 0; i < n; i++ {
		t, err := d.Sample(r)
		if err != nil {
			return nil, fmt.Errorf("SampleN: draw %d of %d: %w", i+1, n, err)
		}
		counts[t]++
	}
	return counts, nil
}

// ExpectedValue returns Σ f(x)·P(x) over the distinct support.
func ExpectedValue[T comparable](d Distribution[T], f func(T) float64) float64 {
	var sum float64
	for t := range distinct(d.Support()) {
		sum += f(t) * d.Score(t)
	}
	return sum
}

// Mean is the expected value of a numeric distribution.
func Mean[N Number](d Distribution[N]) float64 {
	return ExpectedValue(d, func(x N) float64 { return float64(x) })
}

// Variance returns Σ (x − mean)²·P(x).
func Variance[N Number](d Distribution[N]) float64 {
	mu := Mean(d)
	return ExpectedValue(d, func(x N) float64 {
		dx := float64(x) - mu
		return dx * dx
	})
}

// DensityString renders one "value : probability" line per support value,
// in support order.
func DensityString[T comparable](d Distribution[T]) string {
	var sb strings.Builder
	for t := range distinct(d.Support()) {
		fmt.Fprintf(&sb, "%v : %v\n", t, d.Score(t))
	}
	return sb.String()
}

// Product is the joint distribution of independent draws from a and b.
func Product[A, B comparable](a Distribution[A], b Distribution[B]) Distribution[Pair[A, B]] {
	return Bind(a, func(x A) Distribution[Pair[A, B]] {
		return Map(b, func(y B) Pair[A, B] { return Pair[A, B]{First: x, Second: y} })
	})
}

// Fold threads independent draws from ds, left to right, through f starting
// at init. Fold(dice, 0, add) is the distribution of the sum of the dice.
func Fold[T, Acc comparable](ds []Distribution[T], init Acc, f func(Acc, T) Acc) Distribution[Acc] {
	var acc Distribution[Acc] = Always(init)
	for _, d := range ds {
		acc = Bind(acc, func(a Acc) Distribution[Acc] {
			return Map(d, func(x T) Acc { return f(a, x) })
		})
	}
	return acc
}

// Softmax builds the Boltzmann table P(values[i]) ∝ exp(logits[i]).
// The maximum logit is subtracted first so large logits do not overflow.
// Repeated values accumulate their mass. ErrInvalidProbability if the
// slices differ in length or a logit is NaN or +Inf; ErrEmptyDistribution
// if values is empty.
func Softmax[T comparable](values []T, logits []float64) (*Discrete[T], error) {
	if len(values) != len(logits) {
		return nil, fmt.Errorf("Softmax: %d values, %d logits: %w", len(values), len(logits), ErrInvalidProbability)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("Softmax: no values: %w", ErrEmptyDistribution)
	}
	peak := math.Inf(-1)
	for i, l := range logits {
		if math.IsNaN(l) || math.IsInf(l, 1) {
			return nil, fmt.Errorf("Softmax: logit %d is %g: %w", i, l, ErrInvalidProbability)
		}
		peak = math.Max(peak, l)
	}
	if math.IsInf(peak, -1) {
		return nil, fmt.Errorf("Softmax: every logit is -Inf: %w", ErrEmptyDistribution)
	}

	var (
		entries = make([]Entry[T], 0, len(values))
		pos     = make(map[T]int, len(values))
		total   float64
	)
	for i, v := range values {
		w := math.Exp(logits[i] - peak)
		total += w
		if j, ok := pos[v]; ok {
			entries[j].Prob += w
			continue
		}
		pos[v] = len(entries)
		entries = append(entries, Entry[T]{Value: v, Prob: w})
	}
	for i := range entries {
		entries[i].Prob /= total
	}
	return newDiscreteTrusted(entries, DefaultTolerance), nil
}

// Add is the distribution of x + y for independent x ~ a, y ~ b.
func Add[N Number](a, b Distribution[N]) Distribution[N] {
	return combine(a, b, func(x, y N) N { return x + y })
}

// Sub is the distribution of x − y for independent x ~ a, y ~ b.
func Sub[N Number](a, b Distribution[N]) Distribution[N] {
	return combine(a, b, func(x, y N) N { return x - y })
}

// Mul is the distribution of x · y for independent x ~ a, y ~ b.
func Mul[N Number](a, b Distribution[N]) Distribution[N] {
	return combine(a, b, func(x, y N) N { return x * y })
}

// Div is the distribution of x / y for independent x ~ a, y ~ b.
// For integer types b must not hold 0 in its support: the division panics
// when that branch is scored or sampled.
func Div[N Number](a, b Distribution[N]) Distribution[N] {
	return combine(a, b, func(x, y N) N { return x / y })
}

// Shift adds c to every value.
func Shift[N Number](d Distribution[N], c N) Distribution[N] {
	return Map(d, func(x N) N { return x + c })
}

// Scale multiplies every value by c.
func Scale[N Number](d Distribution[N], c N) Distribution[N] {
	return Map(d, func(x N) N { return x * c })
}

func combine[N Number](a, b Distribution[N], op func(x, y N) N) Distribution[N] {
	return Bind(a, func(x N) Distribution[N] {
		return Map(b, func(y N) N { return op(x, y) })
	})
}
