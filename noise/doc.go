// Package noise turns continuous and count distributions from
// gonum.org/v1/gonum/stat/distuv into finite dist.Discrete tables, so that
// sensor noise and random effects can be composed with the rest of the
// algebra (Bind, Map, Add, …) and scored exactly.
//
// Continuous densities are discretized on a fixed grid: the grid point x
// receives the mass CDF(x+step/2) − CDF(x−step/2) and the masses are then
// renormalized, so the tails cut off by the grid are redistributed
// proportionally. Count distributions (Poisson, Binomial) use their exact
// probability mass function, truncated and renormalized where the support is
// unbounded.
//
// Typical use, a noisy distance sensor:
//
//	reading := noise.Perturb(trueDistance, dist.Must(noise.Gaussian(0, 0.5, 0.25, 1.5)))
//
// All constructors validate their parameters and return ErrInvalidParameter
// instead of panicking.
package noise
