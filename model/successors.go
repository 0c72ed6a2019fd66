package model

import (
	"fmt"

	"github.com/katalvlaran/lvprob/dist"
)

// Step is one stochastic move: the action taken and the state it led to.
type Step[S, A comparable] struct {
	Action A
	Next   S
}

// Successors returns the joint distribution of an action chosen uniformly
// among m.Actions(s) and the state it leads to.
func Successors[S, A comparable](m Model[S, A], s S) (dist.Distribution[Step[S, A]], error) {
	if m == nil {
		return nil, ErrModelNil
	}
	if m.Terminal(s) {
		return nil, fmt.Errorf("Successors %v: %w", s, ErrTerminal)
	}
	actions, err := dist.NewUniform(m.Actions(s))
	if err != nil {
		return nil, fmt.Errorf("Successors %v: %w", s, ErrNoActions)
	}
	return dist.Bind[A, Step[S, A]](actions, func(a A) dist.Distribution[Step[S, A]] {
		return dist.Map[S, Step[S, A]](m.Transition(s, a), func(next S) Step[S, A] {
			return Step[S, A]{Action: a, Next: next}
		})
	}), nil
}
