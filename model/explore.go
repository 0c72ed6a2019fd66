package model

import (
	"context"
	"fmt"
	"log/slog"
)

// queueItem pairs a state with its depth and parent.
type queueItem[S comparable] struct {
	state  S
	depth  int
	parent S
	root   bool
}

// walker encapsulates mutable exploration state.
type walker[S, A comparable] struct {
	model Model[S, A]
	opts  Options
	ctx   context.Context
	queue []queueItem[S]
	level int
	res   *Result[S]
}

// Explore discovers every state reachable from the support of m.Initial()
// through transitions of positive probability. Terminal states are recorded
// but not expanded.
// Returns ErrModelNil, ErrOptionViolation, ErrStateLimit, or the context
// error if exploration is cancelled.
func Explore[S, A comparable](m Model[S, A], opts ...Option) (*Result[S], error) {
	if m == nil {
		return nil, ErrModelNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S, A]{
		model: m,
		opts:  o,
		ctx:   o.Ctx,
		res: &Result[S]{
			Depth:  make(map[S]int),
			Parent: make(map[S]S),
		},
	}
	if err := w.seed(); err != nil {
		return nil, err
	}
	if err := w.loop(); err != nil {
		return nil, err
	}
	w.log("model: explored", slog.Int("states", len(w.res.Order)), slog.Int("depth", w.level))

	return w.res, nil
}

// seed enqueues the initial states at depth 0.
func (w *walker[S, A]) seed() error {
	initial := w.model.Initial()
	for s := range initial.Support() {
		if w.seen(s) || initial.Score(s) <= 0 {
			continue
		}
		if err := w.enqueue(queueItem[S]{state: s, root: true}); err != nil {
			return err
		}
	}
	return nil
}

// loop processes the queue until empty or cancelled.
func (w *walker[S, A]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}
		item := w.dequeue()
		if item.depth > w.level {
			w.level = item.depth
			w.log("model: level", slog.Int("depth", w.level), slog.Int("frontier", len(w.queue)+1))
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the front of the queue.
func (w *walker[S, A]) dequeue() queueItem[S] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// expand enqueues every unseen state reachable in one transition.
func (w *walker[S, A]) expand(item queueItem[S]) error {
	if w.model.Terminal(item.state) {
		return nil
	}
	if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
		return nil
	}
	for _, a := range w.model.Actions(item.state) {
		next := w.model.Transition(item.state, a)
		for s := range next.Support() {
			if w.seen(s) || next.Score(s) <= 0 {
				continue
			}
			if err := w.enqueue(queueItem[S]{state: s, depth: item.depth + 1, parent: item.state}); err != nil {
				return err
			}
		}
	}
	return nil
}

// enqueue records item as discovered and schedules it for expansion.
func (w *walker[S, A]) enqueue(item queueItem[S]) error {
	if w.opts.MaxStates > 0 && len(w.res.Order) >= w.opts.MaxStates {
		return fmt.Errorf("Explore: more than %d states: %w", w.opts.MaxStates, ErrStateLimit)
	}
	w.res.Order = append(w.res.Order, item.state)
	w.res.Depth[item.state] = item.depth
	if !item.root {
		w.res.Parent[item.state] = item.parent
	}
	w.queue = append(w.queue, item)
	return nil
}

func (w *walker[S, A]) seen(s S) bool {
	_, ok := w.res.Depth[s]
	return ok
}

func (w *walker[S, A]) log(msg string, attrs ...slog.Attr) {
	if w.opts.Logger == nil {
		return
	}
	w.opts.Logger.LogAttrs(w.ctx, slog.LevelDebug, msg, attrs...)
}

// States returns the reachable states of m in discovery order.
func States[S, A comparable](m Model[S, A], opts ...Option) ([]S, error) {
	res, err := Explore(m, opts...)
	if err != nil {
		return nil, err
	}
	return res.Order, nil
}
