// SPDX-License-Identifier: MIT
// Package: lvprob/dist
//
// errors.go — sentinel errors for the distribution algebra.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w: "Discrete.Filter: ...: %w".
//   • Nothing is recovered or replaced by a default distribution: a silent
//     substitute would corrupt every exact score computed downstream.
//   • Panics are reserved for programmer errors (nonsensical WithX values,
//     a LazyUniform sequence that breaks its declared length while being
//     drained by a method that cannot return an error).

package dist

import "errors"

// ErrInvalidProbability indicates a table with a negative or NaN entry, or
// whose total deviates from 1 by more than the configured tolerance.
// Classification: construction-time validation.
var ErrInvalidProbability = errors.New("dist: invalid probability")

// ErrEmptyDistribution indicates that no probability mass is left: a Filter
// rejected every value, or a variant was built from an empty collection.
var ErrEmptyDistribution = errors.New("dist: empty distribution")

// ErrSamplingExhausted indicates that the cumulative walk over a table ended
// without selecting an element. It means the table mass is below the drawn
// number: either an upstream invariant was broken or rounding accumulated.
var ErrSamplingExhausted = errors.New("dist: sampling exhausted the support")

// ErrCountMismatch indicates that a LazyUniform sequence yielded more or
// fewer elements than its declared count.
var ErrCountMismatch = errors.New("dist: sequence length differs from declared count")

// ErrInvalidRange indicates DiscretizedRange bounds or step that cannot
// describe a finite, non-empty grid.
var ErrInvalidRange = errors.New("dist: invalid range")

// ErrSupportLimit indicates that Enumerate met more distinct values than
// allowed by WithSupportLimit.
var ErrSupportLimit = errors.New("dist: support limit exceeded")
