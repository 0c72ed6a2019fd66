package dist_test

import (
	"github.com/katalvlaran/lvprob/dist"
)

const eps = 1e-9

// fairCoin is the 50/50 coin of the weather scenario.
func fairCoin() *dist.Discrete[string] {
	return dist.Must(dist.NewDiscrete([]dist.Entry[string]{
		{Value: "HEADS", Prob: 0.5},
		{Value: "TAILS", Prob: 0.5},
	}))
}

// weather flips a coin: heads gives mostly sun, tails mostly clouds.
// Exact marginals: Cloudy 0.5, Sun 0.35, Rain 0.15.
func weather() dist.Distribution[string] {
	heads := dist.Must(dist.NewDiscrete([]dist.Entry[string]{
		{Value: "Cloudy", Prob: 0.3},
		{Value: "Sun", Prob: 0.7},
	}))
	tails := dist.Must(dist.NewDiscrete([]dist.Entry[string]{
		{Value: "Rain", Prob: 0.3},
		{Value: "Cloudy", Prob: 0.7},
	}))
	return dist.Bind[string, string](fairCoin(), func(side string) dist.Distribution[string] {
		if side == "HEADS" {
			return heads
		}
		return tails
	})
}

// temperature continues weather with a two-point temperature per sky.
func temperature() dist.Distribution[float64] {
	table := map[string][]float64{
		"Sun":    {17, 18},
		"Cloudy": {15, 16},
		"Rain":   {10, 11},
	}
	return dist.Bind(weather(), func(w string) dist.Distribution[float64] {
		pair := table[w]
		return dist.Must(dist.NewDiscrete([]dist.Entry[float64]{
			{Value: pair[0], Prob: 0.5},
			{Value: pair[1], Prob: 0.5},
		}))
	})
}

// fixedRand replays Float64 values and always answers Intn with intn
// (clamped into [0, n)).
type fixedRand struct {
	floats []float64
	intn   int
	i      int
}

func (r *fixedRand) Float64() float64 {
	f := r.floats[r.i%len(r.floats)]
	r.i++
	return f
}

func (r *fixedRand) Intn(n int) int {
	if r.intn >= n {
		return n - 1
	}
	return r.intn
}

// variants returns one instance of every Kind over int, used by the
// property tests that must hold for all variants.
func variants() map[string]dist.Distribution[int] {
	die := dist.Must(dist.IntRange(1, 6))
	lazy := dist.Must(dist.NewLazyUniform(func(yield func(int) bool) {
		for _, v := range []int{1, 2, 2, 3} {
			if !yield(v) {
				return
			}
		}
	}, 4))
	table := dist.Must(dist.NewDiscrete([]dist.Entry[int]{
		{Value: 1, Prob: 0.2}, {Value: 2, Prob: 0.5}, {Value: 3, Prob: 0.3},
	}))
	// The grid 0, 0.5, …, 2 relabelled as 0..4 so it shares the int domain.
	grid := dist.Map(dist.Must(dist.NewDiscretizedRange(0, 2, 0.5)), func(x float64) int { return int(x * 2) })
	chain := dist.Bind[int, int](table, func(x int) dist.Distribution[int] {
		return dist.Must(dist.IntRange(x, x+1))
	})
	mix := dist.Must(dist.NewMixture[int](die, table))

	return map[string]dist.Distribution[int]{
		"PointMass":        dist.NewPointMass(4),
		"Discrete":         table,
		"Uniform":          die,
		"LazyUniform":      lazy,
		"DiscretizedRange": grid,
		"Chain":            chain,
		"Mixture":          mix,
	}
}
