// SPDX-License-Identifier: MIT
// Package: lvprob/dist
//
// options.go — functional options and deterministic defaults.
//
// Contract:
//   • Options are functional (type Option func(*config)), applied in order,
//     last one wins.
//   • Option constructors VALIDATE and PANIC on meaningless inputs; the
//     algebra itself returns sentinel errors and never panics on data.
//   • No hidden globals: every knob flows through config.

package dist

import (
	"log/slog"
	"math"
)

// Defaults (single source of truth).
const (
	// DefaultTolerance is the maximum absolute deviation |Σp − 1| accepted
	// when a Discrete table is built.
	DefaultTolerance = 1e-4

	// DefaultSupportLimit disables the Enumerate support limit.
	DefaultSupportLimit = 0

	// maxRejections bounds rejection sampling of a conditioned Chain before
	// it falls back to exact enumeration.
	maxRejections = 1000
)

const (
	panicToleranceInvalid    = "dist: WithTolerance: eps must be finite and non-negative"
	panicSupportLimitInvalid = "dist: WithSupportLimit: n must be non-negative"
	panicLoggerNil           = "dist: WithLogger(nil)"
)

// Option customizes construction (NewDiscrete, FromMap, ...) or Enumerate.
type Option func(*config)

// config aggregates the knobs. It is resolved once per call and passed by
// value.
type config struct {
	tolerance    float64      // ≥ 0; DefaultTolerance
	supportLimit int          // 0 = unlimited; DefaultSupportLimit
	logger       *slog.Logger // nil = silent
}

// newConfig resolves opts on top of the defaults.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		tolerance:    DefaultTolerance,
		supportLimit: DefaultSupportLimit,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithTolerance sets the accepted absolute deviation of a table's total
// mass from 1. Panics if eps is negative, NaN or infinite.
func WithTolerance(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicToleranceInvalid)
	}
	return func(c *config) {
		c.tolerance = eps
	}
}

// WithSupportLimit caps the number of distinct values Enumerate may visit
// before failing with ErrSupportLimit. Zero means no limit.
// Panics if n < 0.
func WithSupportLimit(n int) Option {
	if n < 0 {
		panic(panicSupportLimitInvalid)
	}
	return func(c *config) {
		c.supportLimit = n
	}
}

// WithLogger attaches a logger for debug tracing of expensive exact
// inference (Enumerate). Panics on nil; omit the option to stay silent.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}
	return func(c *config) {
		c.logger = l
	}
}
