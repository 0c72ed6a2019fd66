package model_test

import (
	"github.com/katalvlaran/lvprob/dist"
)

// corridor is a walk on 0..size that starts in the middle. Each move
// succeeds with probability 0.8 and otherwise stays put; both ends absorb.
type corridor struct {
	size int
}

func (c corridor) Initial() dist.Distribution[int] { return dist.Always(c.size / 2) }

func (c corridor) Actions(int) []int { return []int{-1, +1} }

func (c corridor) Transition(s, a int) dist.Distribution[int] {
	return dist.Must(dist.NewDiscrete([]dist.Entry[int]{
		{Value: s + a, Prob: 0.8},
		{Value: s, Prob: 0.2},
	}))
}

func (c corridor) Terminal(s int) bool { return s <= 0 || s >= c.size }

// stuck has no actions outside its terminal state.
type stuck struct{}

func (stuck) Initial() dist.Distribution[string] { return dist.Always("start") }
func (stuck) Actions(string) []string { return nil }
func (stuck) Transition(s, _ string) dist.Distribution[string] { return dist.Always(s) }
func (stuck) Terminal(s string) bool { return s == "end" }
