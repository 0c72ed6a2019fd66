// Package lvprob is a small, lazy algebra of discrete probability
// distributions for describing stochastic transitions: dice, coin flips,
// weather, sensor noise, opponents' moves.
//
// 🚀 What is lvprob?
//
//	A library that composes distributions without materializing the joint
//	space until an exact answer is asked for:
//		• dist/      — PointMass, Discrete, Uniform, LazyUniform, DiscretizedRange,
//		               Chain (monadic bind), Mixture; Bind, Map, Filter, Score, Sample
//		• noise/     — Gaussian, Laplace, Exponential, Poisson, Binomial noise
//		               discretized into Discrete tables
//		• tables/    — named probability tables loaded from YAML
//		• model/     — transition models and reachable-state exploration
//		• disttest/  — assertions and a chi-square goodness-of-fit helper
//		• cmd/distdemo — exact vs sampled comparison, coloured table and HTML chart
//
// ✨ Why lvprob?
//
//   - Exact scores and conditional probabilities for composed models
//   - Sampling that stays lazy, deterministic per seed and goroutine-friendly
//   - Sentinel errors instead of silent fallbacks
//
// Quick example:
//
//	coin := dist.Must(dist.Bernoulli(0.5))
//	sky := dist.If(coin, "Sun", "Rain")
//	fmt.Println(sky.Score("Sun")) // 0.5
//
//	go get github.com/katalvlaran/lvprob
package lvprob
