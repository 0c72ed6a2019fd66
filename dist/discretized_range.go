package dist

import (
	"fmt"
	"iter"
	"math"
)

// gridEpsilon absorbs representation error in (max-min)/step, so that
// e.g. [0, 0.3] with step 0.1 still has 4 points.
const gridEpsilon = 1e-9

// DiscretizedRange is the uniform distribution over the grid
// min, min+step, min+2·step, … ≤ max, standing in for a continuous interval.
//
// Score deliberately does not check grid alignment: any value in [min, max]
// scores 1/count. ScoreFunc, Filter, Sample and Support work on grid points.
type DiscretizedRange struct {
	min, max, step float64
	count          int
}

// NewDiscretizedRange builds the grid with count = floor((max-min)/step) + 1.
// ErrInvalidRange on non-finite arguments, step ≤ 0 or max < min.
func NewDiscretizedRange(min, max, step float64) (*DiscretizedRange, error) {
	for _, x := range [...]float64{min, max, step} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("NewDiscretizedRange: non-finite argument %g: %w", x, ErrInvalidRange)
		}
	}
	if step <= 0 {
		return nil, fmt.Errorf("NewDiscretizedRange: step %g ≤ 0: %w", step, ErrInvalidRange)
	}
	if max < min {
		return nil, fmt.Errorf("NewDiscretizedRange: max %g < min %g: %w", max, min, ErrInvalidRange)
	}
	count := int(math.Floor((max-min)/step+gridEpsilon)) + 1
	return &DiscretizedRange{min: min, max: max, step: step, count: count}, nil
}

// Count returns the number of grid points.
func (d *DiscretizedRange) Count() int { return d.count }

// Min returns the lower bound (the first grid point).
func (d *DiscretizedRange) Min() float64 { return d.min }

// Max returns the upper bound as given; the last grid point may be below it.
func (d *DiscretizedRange) Max() float64 { return d.max }

// Step returns the grid spacing.
func (d *DiscretizedRange) Step() float64 { return d.step }

func (d *DiscretizedRange) at(i int) float64 {
	return d.min + float64(i)*d.step
}

// Score returns 1/count for any t in [min, max], 0 outside.
func (d *DiscretizedRange) Score(t float64) float64 {
	if t >= d.min && t <= d.max {
		return 1 / float64(d.count)
	}
	return 0
}

// ScoreFunc counts matching grid points.
func (d *DiscretizedRange) ScoreFunc(pred func(float64) bool) float64 {
	var matched int
	for i := 0; i < d.count; i++ {
		if pred(d.at(i)) {
			matched++
		}
	}
	return float64(matched) / float64(d.count)
}

// Filter materializes a Uniform over the matching grid points.
func (d *DiscretizedRange) Filter(pred func(float64) bool) (Distribution[float64], error) {
	var kept []float64
	for i := 0; i < d.count; i++ {
		if x := d.at(i); pred(x) {
			kept = append(kept, x)
		}
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("DiscretizedRange.Filter: none of %d grid points kept: %w", d.count, ErrEmptyDistribution)
	}
	return newUniformOwned(kept), nil
}

// Sample returns min + i·step for a uniformly drawn i in [0, count).
func (d *DiscretizedRange) Sample(r Rand) (float64, error) {
	return d.at(r.Intn(d.count)), nil
}

// Support is the lazy arithmetic progression of grid points.
func (d *DiscretizedRange) Support() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for i := 0; i < d.count; i++ {
			if !yield(d.at(i)) {
				return
			}
		}
	}
}

// Kind reports KindDiscretizedRange.
func (d *DiscretizedRange) Kind() Kind { return KindDiscretizedRange }

func (d *DiscretizedRange) sealed() {}

// snapToGrid rounds y to the nearest multiple of step.
func snapToGrid(y, step float64) float64 {
	return math.Round(y/step) * step
}
