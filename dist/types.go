package dist

import (
	"iter"
	"strconv"
)

// Rand is the random source every Sample call receives explicitly.
// *math/rand.Rand satisfies it; distributions never store one.
//
// Float64 must return a value in [0,1); Intn a value in [0,n).
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Kind tags the closed set of distribution variants. Bind and Map switch
// over it exhaustively; adding a variant means adding a case to both.
type Kind int

const (
	// KindPointMass tags *PointMass.
	KindPointMass Kind = iota
	// KindDiscrete tags *Discrete.
	KindDiscrete
	// KindUniform tags *Uniform.
	KindUniform
	// KindLazyUniform tags *LazyUniform.
	KindLazyUniform
	// KindDiscretizedRange tags *DiscretizedRange.
	KindDiscretizedRange
	// KindChain tags *Chain.
	KindChain
	// KindMixture tags *Mixture.
	KindMixture
)

var kindNames = [...]string{
	KindPointMass:        "PointMass",
	KindDiscrete:         "Discrete",
	KindUniform:          "Uniform",
	KindLazyUniform:      "LazyUniform",
	KindDiscretizedRange: "DiscretizedRange",
	KindChain:            "Chain",
	KindMixture:          "Mixture",
}

// String returns the variant name, e.g. "Chain".
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Distribution is the capability set shared by every variant.
//
// Cross-invariants (checked by the package tests for every variant):
//   - ScoreFunc(p) equals the sum of Score(x) over the distinct values of
//     Support() that satisfy p.
//   - The scores of the distinct support values sum to 1 within tolerance.
//   - Sample converges, over many draws, to the frequencies implied by Score.
//
// The interface is sealed: only the variants of this package implement it.
type Distribution[T comparable] interface {
	// Score returns the probability mass of t.
	Score(t T) float64

	// ScoreFunc returns the total mass of all values satisfying pred.
	ScoreFunc(pred func(T) bool) float64

	// Filter conditions the distribution on pred and renormalizes.
	// It returns ErrEmptyDistribution when no mass survives (where that is
	// decidable without enumeration).
	Filter(pred func(T) bool) (Distribution[T], error)

	// Sample draws one value using r.
	Sample(r Rand) (T, error)

	// Support returns a lazy, finite and restartable sequence of values
	// with non-zero probability.
	Support() iter.Seq[T]

	// Kind reports the variant.
	Kind() Kind

	sealed()
}

// Entry is one row of a probability table.
type Entry[T comparable] struct {
	Value T
	Prob  float64
}

// Pair is the element type of a joint distribution built by Product.
type Pair[A, B comparable] struct {
	First  A
	Second B
}

// Number is the constraint of the arithmetic helpers (Add, Mean, ...).
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
