package dist

import (
	"fmt"
	"math"
)

// Bernoulli returns the table {true: p, false: 1-p}.
// ErrInvalidProbability if p is NaN or outside [0, 1].
func Bernoulli(p float64) (*Discrete[bool], error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, fmt.Errorf("Bernoulli: p=%g: %w", p, ErrInvalidProbability)
	}
	return newDiscreteTrusted([]Entry[bool]{
		{Value: true, Prob: p},
		{Value: false, Prob: 1 - p},
	}, DefaultTolerance), nil
}

// Flip is Bernoulli returned as a Distribution, ready for If/When.
func Flip(p float64) (Distribution[bool], error) {
	b, err := Bernoulli(p)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Must panics if err is non-nil and returns d otherwise. It is meant for
// package-level fixtures and examples built from constant tables.
func Must[D any](d D, err error) D {
	if err != nil {
		panic(err)
	}
	return d
}

// If yields a when cond is true and b otherwise.
func If[A comparable](cond Distribution[bool], a, b A) Distribution[A] {
	return IfDist(cond, Always(a), Always(b))
}

// IfDist continues with then when cond is true and with otherwise when it
// is false.
func IfDist[A comparable](cond Distribution[bool], then, otherwise Distribution[A]) Distribution[A] {
	return Bind(cond, func(c bool) Distribution[A] {
		if c {
			return then
		}
		return otherwise
	})
}

// Branch is a half-built conditional returned by When and WhenDist; finish
// it with Else or ElseDist. Branch thunks run only when the condition is
// sampled or scored, and only for the outcome being visited.
type Branch[A comparable] struct {
	cond Distribution[bool]
	then func() Distribution[A]
}

// When starts a conditional whose true branch is a lazily computed value.
func When[A comparable](cond Distribution[bool], then func() A) *Branch[A] {
	return &Branch[A]{cond: cond, then: func() Distribution[A] { return Always(then()) }}
}

// WhenDist starts a conditional whose true branch is a lazily built
// distribution.
func WhenDist[A comparable](cond Distribution[bool], then func() Distribution[A]) *Branch[A] {
	return &Branch[A]{cond: cond, then: then}
}

// Else completes the conditional with a lazily computed value.
func (b *Branch[A]) Else(otherwise func() A) Distribution[A] {
	return b.ElseDist(func() Distribution[A] { return Always(otherwise()) })
}

// ElseDist completes the conditional with a lazily built distribution.
func (b *Branch[A]) ElseDist(otherwise func() Distribution[A]) Distribution[A] {
	then := b.then
	return Bind(b.cond, func(c bool) Distribution[A] {
		if c {
			return then()
		}
		return otherwise()
	})
}
