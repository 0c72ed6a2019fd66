package noise

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvprob/dist"
)

// ErrInvalidParameter indicates a non-finite, non-positive or otherwise
// unusable distribution parameter.
var ErrInvalidParameter = errors.New("noise: invalid parameter")

// gridEpsilon absorbs representation error when counting grid points.
const gridEpsilon = 1e-9

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Gaussian discretizes N(mu, sigma²) on the grid mu ± k·step, |k·step| ≤ width.
func Gaussian(mu, sigma, step, width float64) (*dist.Discrete[float64], error) {
	if !finite(mu, sigma, step, width) || sigma <= 0 || step <= 0 || width < 0 {
		return nil, fmt.Errorf("Gaussian: mu=%g sigma=%g step=%g width=%g: %w", mu, sigma, step, width, ErrInvalidParameter)
	}
	n := distuv.Normal{Mu: mu, Sigma: sigma}
	return discretize("Gaussian", n.CDF, symmetricGrid(mu, step, width), step)
}

// Laplace discretizes the double-exponential distribution with location mu
// and scale b on the grid mu ± k·step, |k·step| ≤ width.
func Laplace(mu, b, step, width float64) (*dist.Discrete[float64], error) {
	if !finite(mu, b, step, width) || b <= 0 || step <= 0 || width < 0 {
		return nil, fmt.Errorf("Laplace: mu=%g b=%g step=%g width=%g: %w", mu, b, step, width, ErrInvalidParameter)
	}
	l := distuv.Laplace{Mu: mu, Scale: b}
	return discretize("Laplace", l.CDF, symmetricGrid(mu, step, width), step)
}

// Exponential discretizes Exp(rate) on the grid 0, step, …, ≤ max.
func Exponential(rate, step, max float64) (*dist.Discrete[float64], error) {
	if !finite(rate, step, max) || rate <= 0 || step <= 0 || max < 0 {
		return nil, fmt.Errorf("Exponential: rate=%g step=%g max=%g: %w", rate, step, max, ErrInvalidParameter)
	}
	e := distuv.Exponential{Rate: rate}
	count := int(math.Floor(max/step+gridEpsilon)) + 1
	points := make([]float64, count)
	for i := range points {
		points[i] = float64(i) * step
	}
	return discretize("Exponential", e.CDF, points, step)
}

// symmetricGrid returns mu + k·step for k = −K..K, K = floor(width/step).
func symmetricGrid(mu, step, width float64) []float64 {
	k := int(math.Floor(width/step + gridEpsilon))
	points := make([]float64, 0, 2*k+1)
	for i := -k; i <= k; i++ {
		points = append(points, mu+float64(i)*step)
	}
	return points
}

// discretize assigns every grid point the CDF mass of its cell and
// renormalizes the masses with floats.Scale.
func discretize(method string, cdf func(float64) float64, points []float64, step float64) (*dist.Discrete[float64], error) {
	half := step / 2
	masses := make([]float64, len(points))
	for i, x := range points {
		masses[i] = cdf(x+half) - cdf(x-half)
	}
	total := floats.Sum(masses)
	if !(total > 0) {
		return nil, fmt.Errorf("%s: grid of %d points holds no mass: %w", method, len(points), ErrInvalidParameter)
	}
	floats.Scale(1/total, masses)

	entries := make([]dist.Entry[float64], len(points))
	for i, x := range points {
		entries[i] = dist.Entry[float64]{Value: x, Prob: masses[i]}
	}
	return dist.NewDiscrete(entries)
}

// Poisson is the Poisson(lambda) count distribution truncated to 0..max and
// renormalized.
func Poisson(lambda float64, max int) (*dist.Discrete[int], error) {
	if !finite(lambda) || lambda <= 0 || max < 0 {
		return nil, fmt.Errorf("Poisson: lambda=%g max=%d: %w", lambda, max, ErrInvalidParameter)
	}
	p := distuv.Poisson{Lambda: lambda}
	return counts("Poisson", p.Prob, max)
}

// Binomial is the number of successes in n trials with success probability p.
func Binomial(n int, p float64) (*dist.Discrete[int], error) {
	if n < 0 || math.IsNaN(p) || p < 0 || p > 1 {
		return nil, fmt.Errorf("Binomial: n=%d p=%g: %w", n, p, ErrInvalidParameter)
	}
	// The log-space pmf is undefined at the degenerate ends.
	switch p {
	case 0:
		return dist.NewDiscrete([]dist.Entry[int]{{Value: 0, Prob: 1}})
	case 1:
		return dist.NewDiscrete([]dist.Entry[int]{{Value: n, Prob: 1}})
	}
	b := distuv.Binomial{N: float64(n), P: p}
	return counts("Binomial", b.Prob, n)
}

func counts(method string, pmf func(float64) float64, max int) (*dist.Discrete[int], error) {
	masses := make([]float64, max+1)
	for k := range masses {
		masses[k] = pmf(float64(k))
	}
	total := floats.Sum(masses)
	if !(total > 0) {
		return nil, fmt.Errorf("%s: 0..%d holds no mass: %w", method, max, ErrInvalidParameter)
	}
	floats.Scale(1/total, masses)

	entries := make([]dist.Entry[int], len(masses))
	for k, m := range masses {
		entries[k] = dist.Entry[int]{Value: k, Prob: m}
	}
	return dist.NewDiscrete(entries)
}

// Perturb adds independent jitter to every value of d.
func Perturb[N dist.Number](d, jitter dist.Distribution[N]) dist.Distribution[N] {
	return dist.Add(d, jitter)
}
