// SPDX-License-Identifier: MIT
// Package: lvprob/dist
//
// bind.go — Bind (monadic chain) and Map (pushforward).
//
// Both change the element type, so they are free functions rather than
// methods. Each dispatches with an exhaustive switch over Kind; the default
// branch panics because an unknown Kind means a variant was added without
// teaching these two functions about it.

package dist

import "fmt"

// Bind composes d with a continuation: the result draws x from d and then
// draws from f(x).
//
// Dispatch:
//   - PointMass: f(v) directly (left identity).
//   - Mixture:   Bind distributes over the components, weights unchanged.
//   - otherwise: a lazy Chain; a Chain source nests, so the whole node
//     becomes the new source.
//
// f is called lazily, once per source value visited by Score/Support and once
// per draw by Sample. It must be pure and must not return nil.
func Bind[T, R comparable](d Distribution[T], f func(T) Distribution[R]) Distribution[R] {
	switch d.Kind() {
	case KindPointMass:
		return f(d.(*PointMass[T]).value)

	case KindMixture:
		m := d.(*Mixture[T])
		parts := make([]Distribution[R], len(m.components))
		for i, c := range m.components {
			parts[i] = Bind(c, f)
		}
		return &Mixture[R]{components: parts}

	case KindDiscrete, KindUniform, KindLazyUniform, KindDiscretizedRange, KindChain:
		return newChain(d, f)

	default:
		panic(fmt.Sprintf("dist: Bind: unhandled kind %v", d.Kind()))
	}
}

// Map returns the pushforward of d under f: Map(d, f).Score(y) equals the
// total mass of the x with f(x) == y.
//
// Dispatch:
//   - PointMass: PointMass(f(v)).
//   - Discrete:  eager table; colliding images are summed into the entry of
//     their first appearance.
//   - Uniform:   eager Uniform over the mapped multiset.
//   - Mixture:   Map distributes over the components.
//   - DiscretizedRange: lazy; a float64 → float64 f has its results rounded
//     to the nearest multiple of step, other result types are not rounded.
//   - LazyUniform, Chain: lazy Chain into PointMass(f(x)).
func Map[T, R comparable](d Distribution[T], f func(T) R) Distribution[R] {
	switch d.Kind() {
	case KindPointMass:
		return NewPointMass(f(d.(*PointMass[T]).value))

	case KindDiscrete:
		src := d.(*Discrete[T])
		var (
			out = make([]Entry[R], 0, len(src.entries))
			pos = make(map[R]int, len(src.entries))
		)
		for _, e := range src.entries {
			y := f(e.Value)
			if i, ok := pos[y]; ok {
				out[i].Prob += e.Prob
				continue
			}
			pos[y] = len(out)
			out = append(out, Entry[R]{Value: y, Prob: e.Prob})
		}
		return newDiscreteTrusted(out, src.tolerance)

	case KindUniform:
		src := d.(*Uniform[T])
		mapped := make([]R, len(src.values))
		for i, v := range src.values {
			mapped[i] = f(v)
		}
		return newUniformOwned(mapped)

	case KindMixture:
		m := d.(*Mixture[T])
		parts := make([]Distribution[R], len(m.components))
		for i, c := range m.components {
			parts[i] = Map(c, f)
		}
		return &Mixture[R]{components: parts}

	case KindDiscretizedRange:
		grid := any(d).(*DiscretizedRange)
		if g, ok := any(f).(func(float64) float64); ok {
			step := grid.step
			f = func(x T) R {
				return any(snapToGrid(g(any(x).(float64)), step)).(R)
			}
		}
		return mapLazy(d, f)

	case KindLazyUniform, KindChain:
		return mapLazy(d, f)

	default:
		panic(fmt.Sprintf("dist: Map: unhandled kind %v", d.Kind()))
	}
}

func mapLazy[T, R comparable](d Distribution[T], f func(T) R) Distribution[R] {
	return newChain(d, func(x T) Distribution[R] {
		return NewPointMass(f(x))
	})
}
