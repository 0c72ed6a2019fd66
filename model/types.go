package model

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvprob/dist"
)

// Sentinel errors for model exploration.
var (
	// ErrModelNil is returned when a nil Model is passed.
	ErrModelNil = errors.New("model: model is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("model: invalid option supplied")

	// ErrStateLimit is returned when exploration discovers more states than
	// WithMaxStates allows.
	ErrStateLimit = errors.New("model: state limit exceeded")

	// ErrUnreachable is returned by PathTo for a state Explore never reached.
	ErrUnreachable = errors.New("model: state not reached")

	// ErrTerminal is returned by Successors for a terminal state.
	ErrTerminal = errors.New("model: terminal states cannot transition")

	// ErrNoActions is returned by Successors for a non-terminal state
	// without actions.
	ErrNoActions = errors.New("model: no actions available")
)

// Model is a stochastic transition system over states S and actions A.
type Model[S, A comparable] interface {
	// Initial is the distribution of start states.
	Initial() dist.Distribution[S]

	// Actions lists the actions valid in s. It is not called for terminal
	// states.
	Actions(s S) []A

	// Transition is the distribution of the state reached by taking a in s.
	Transition(s S, a A) dist.Distribution[S]

	// Terminal reports whether interaction stops in s.
	Terminal(s S) bool
}

// Option configures Explore via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// Explore runs.
type Option func(*Options)

// Options holds the parameters of an exploration.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops expanding states at this depth.
	// 0 disables the limit.
	MaxDepth int

	// MaxStates, if > 0, fails the exploration with ErrStateLimit once more
	// states than this are discovered. 0 disables the limit.
	MaxStates int

	// Logger receives a debug record per expanded depth level; nil is silent.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Options with a background context, no limits and
// no logging.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxDepth:  0,
		MaxStates: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops expanding states at depth d.
//
//	d > 0: states at depth d are recorded but not expanded
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxStates bounds the number of distinct states Explore may discover.
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// WithLogger enables debug tracing of the exploration.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// Result holds the outcome of Explore:
//   - Order: states in discovery order, initial states first.
//   - Depth: number of transitions from an initial state.
//   - Parent: predecessor of each non-initial state in the exploration tree.
type Result[S comparable] struct {
	Order  []S
	Depth  map[S]int
	Parent map[S]S
}

// Len returns the number of reached states.
func (r *Result[S]) Len() int { return len(r.Order) }

// Reached reports whether s was discovered.
func (r *Result[S]) Reached(s S) bool {
	_, ok := r.Depth[s]
	return ok
}

// PathTo reconstructs a shortest transition path from an initial state to
// dest.
func (r *Result[S]) PathTo(dest S) ([]S, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("PathTo %v: %w", dest, ErrUnreachable)
	}
	path := []S{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get initial → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
