// Package dist is a small algebra of discrete probability distributions
// for modelling stochastic state transitions: dice rolls, coin flips,
// sensor noise, enemy moves.
//
// 🚀 What is it?
//
//	Transition distributions are composed out of smaller ones without ever
//	materializing the joint space unless an exact answer is requested:
//	  • PointMass        — one value with probability 1
//	  • Discrete         — explicit, ordered probability table
//	  • Uniform          — finite multiset, equal weight per element
//	  • LazyUniform      — uniform over a lazily produced sequence of known length
//	  • DiscretizedRange — uniform grid min, min+step, … ≤ max
//	  • Chain            — monadic bind: draw from a source, continue with f(value)
//	  • Mixture          — equal-weight union of same-typed components
//
// ✨ Consumption surface:
//
//	Every variant implements Distribution[T]: Score, ScoreFunc, Filter,
//	Sample and Support. Bind and Map are free functions because they change
//	the element type; both dispatch over the closed set of variants (Kind).
//
// ⚙️ Usage:
//
//	coin := dist.Must(dist.FromMap(map[string]float64{"heads": 0.5, "tails": 0.5}))
//	weather := dist.Bind[string, string](coin, func(side string) dist.Distribution[string] {
//	    if side == "heads" {
//	        return dist.Must(dist.NewDiscrete([]dist.Entry[string]{{"Cloudy", 0.3}, {"Sun", 0.7}}))
//	    }
//	    return dist.Must(dist.NewDiscrete([]dist.Entry[string]{{"Rain", 0.3}, {"Cloudy", 0.7}}))
//	})
//	weather.Score("Cloudy")               // 0.5, by the law of total probability
//	w, err := weather.Sample(dist.NewRand(42)) // ancestral sampling
//
// Performance:
//
//	Sampling a Chain is O(depth): each stage draws once from the previous
//	stage's result. Exact Score/Support on a Chain enumerate the source support
//	and recurse, so their cost grows with the product of every stage's support
//	size. Keep chains that need exact answers shallow, or pre-aggregate
//	intermediate stages with Enumerate.
//
// Concurrency:
//
//	Distributions are immutable after construction and hold no RNG. The same
//	tree may be sampled from many goroutines as long as each one supplies its
//	own Rand (see DeriveRand). math/rand.Rand itself is not goroutine-safe.
//
// Errors:
//
//	ErrInvalidProbability — construction-time: negative/NaN entry or mass ≠ 1.
//	ErrEmptyDistribution  — Filter removed all mass, or an empty collection.
//	ErrSamplingExhausted  — the cumulative walk of a table selected nothing.
//	ErrCountMismatch      — a LazyUniform sequence broke its declared length.
//	ErrInvalidRange       — DiscretizedRange bounds or step are unusable.
//	ErrSupportLimit       — Enumerate exceeded WithSupportLimit.
package dist
