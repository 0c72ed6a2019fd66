// Package model describes a stochastic transition system (a Markov decision
// process without rewards) on top of package dist, and explores the states it
// can reach.
//
// A Model supplies an initial-state distribution, the actions available in a
// state, and the distribution of next states for a state/action pair. Explore
// walks the model breadth-first, following only transitions with positive
// probability, and records visit order, depth and parent links the same way a
// graph traversal does.
//
// Successors turns one state into the joint distribution of a uniformly chosen
// action and the resulting state, which is convenient for rollouts:
//
//	steps, err := model.Successors(m, s)
//	step, err := steps.Sample(r)
//	next := step.Next
package model
