package dist_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvprob/dist"
	"github.com/katalvlaran/lvprob/disttest"
)

func TestNewDiscrete_Validation(t *testing.T) {
	cases := []struct {
		name    string
		entries []dist.Entry[string]
		opts    []dist.Option
		wantErr error
	}{
		{"empty", nil, nil, dist.ErrEmptyDistribution},
		{"mass far below one", []dist.Entry[string]{{Value: "a", Prob: 0.25}, {Value: "b", Prob: 0.25}}, nil, dist.ErrInvalidProbability},
		{"mass above one", []dist.Entry[string]{{Value: "a", Prob: 0.75}, {Value: "b", Prob: 0.75}}, nil, dist.ErrInvalidProbability},
		{"negative entry", []dist.Entry[string]{{Value: "a", Prob: 1.5}, {Value: "b", Prob: -0.5}}, nil, dist.ErrInvalidProbability},
		{"NaN entry", []dist.Entry[string]{{Value: "a", Prob: math.NaN()}}, nil, dist.ErrInvalidProbability},
		{"inf entry", []dist.Entry[string]{{Value: "a", Prob: math.Inf(1)}}, nil, dist.ErrInvalidProbability},
		{"within default tolerance", []dist.Entry[string]{{Value: "a", Prob: 0.5}, {Value: "b", Prob: 0.49995}}, nil, nil},
		{"loose tolerance", []dist.Entry[string]{{Value: "a", Prob: 0.5}}, []dist.Option{dist.WithTolerance(0.6)}, nil},
		{"strict tolerance", []dist.Entry[string]{{Value: "a", Prob: 0.5}, {Value: "b", Prob: 0.49995}}, []dist.Option{dist.WithTolerance(0)}, dist.ErrInvalidProbability},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := dist.NewDiscrete(tc.entries, tc.opts...)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, d)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, d)
		})
	}
}

func TestNewDiscrete_DuplicateKeysOverwrite(t *testing.T) {
	d, err := dist.NewDiscrete([]dist.Entry[string]{
		{Value: "a", Prob: 0.9},
		{Value: "b", Prob: 0.7},
		{Value: "a", Prob: 0.3},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, d.Len())
	assert.Equal(t, []dist.Entry[string]{{Value: "a", Prob: 0.3}, {Value: "b", Prob: 0.7}}, d.Entries())
	assert.Equal(t, 0.3, d.Score("a"))
}

func TestFromMap_SortsKeys(t *testing.T) {
	d, err := dist.FromMap(map[string]float64{"Snow": 0.4, "Rain": 0.3, "Sun": 0.3})
	require.NoError(t, err)
	assert.Equal(t, []string{"Rain", "Snow", "Sun"}, slices.Collect(d.Support()))
}

func TestDiscrete_Scores(t *testing.T) {
	d := dist.Must(dist.FromMap(map[int]float64{1: 0.2, 2: 0.5, 3: 0.3}))

	assert.Equal(t, 0.5, d.Score(2))
	assert.Equal(t, 0.0, d.Score(4))
	assert.InDelta(t, 0.5, d.ScoreFunc(func(x int) bool { return x != 2 }), eps)
	disttest.AssertNormalized[int](t, d)
	disttest.AssertConsistent[int](t, d, func(x int) bool { return x >= 2 })
}

func TestDiscrete_SupportSkipsZeroMass(t *testing.T) {
	d := dist.Must(dist.NewDiscrete([]dist.Entry[string]{
		{Value: "never", Prob: 0},
		{Value: "always", Prob: 1},
	}))
	assert.Equal(t, []string{"always"}, slices.Collect(d.Support()))
	assert.Equal(t, 2, d.Len())
}

func TestDiscrete_Filter(t *testing.T) {
	d := dist.Must(dist.NewDiscrete([]dist.Entry[string]{
		{Value: "Sun", Prob: 0.3},
		{Value: "Rain", Prob: 0.3},
		{Value: "Snow", Prob: 0.4},
	}))

	f, err := d.Filter(func(s string) bool { return s != "Rain" })
	require.NoError(t, err)
	assert.Equal(t, dist.KindDiscrete, f.Kind())
	assert.InDelta(t, 0.3/0.7, f.Score("Sun"), eps)
	assert.InDelta(t, 0.4/0.7, f.Score("Snow"), eps)
	assert.Equal(t, 0.0, f.Score("Rain"))
	disttest.AssertNormalized(t, f)

	// Renormalization keeps the ratio between survivors.
	assert.InDelta(t, d.Score("Snow")/d.Score("Sun"), f.Score("Snow")/f.Score("Sun"), eps)

	_, err = d.Filter(func(string) bool { return false })
	assert.ErrorIs(t, err, dist.ErrEmptyDistribution)

	_, err = dist.Must(dist.NewDiscrete([]dist.Entry[string]{
		{Value: "a", Prob: 0},
		{Value: "b", Prob: 1},
	})).Filter(func(s string) bool { return s == "a" })
	assert.ErrorIs(t, err, dist.ErrEmptyDistribution)
}

func TestDiscrete_SampleWalksInOrder(t *testing.T) {
	d := dist.Must(dist.NewDiscrete([]dist.Entry[string]{
		{Value: "a", Prob: 0.5},
		{Value: "b", Prob: 0.5},
	}))
	r := &fixedRand{floats: []float64{0.1, 0.6, 0.5}}

	for _, want := range []string{"a", "b", "b"} {
		got, err := d.Sample(r)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestDiscrete_SampleExhausted(t *testing.T) {
	// Accepted by the tolerance, but a draw above 0.99995 selects nothing.
	d := dist.Must(dist.NewDiscrete([]dist.Entry[string]{
		{Value: "a", Prob: 0.5},
		{Value: "b", Prob: 0.49995},
	}))
	_, err := d.Sample(&fixedRand{floats: []float64{0.99999}})
	assert.ErrorIs(t, err, dist.ErrSamplingExhausted)
}

func TestDiscrete_SampleConvergence(t *testing.T) {
	d := dist.Must(dist.NewDiscrete([]dist.Entry[string]{
		{Value: "Sun", Prob: 0.3},
		{Value: "Rain", Prob: 0.3},
		{Value: "Snow", Prob: 0.4},
	}))
	counts, err := dist.SampleN[string](d, 10000, dist.NewRand(123))
	require.NoError(t, err)

	assert.InDelta(t, 0.3, float64(counts["Sun"])/10000, 0.03)
	assert.InDelta(t, 0.3, float64(counts["Rain"])/10000, 0.03)
	assert.InDelta(t, 0.4, float64(counts["Snow"])/10000, 0.03)

	p, err := disttest.GoodnessOfFit[string](d, dist.NewRand(7), 10000)
	require.NoError(t, err)
	assert.Greater(t, p, 1e-4)
}

func TestWithOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { dist.WithTolerance(-1) })
	assert.Panics(t, func() { dist.WithTolerance(math.NaN()) })
	assert.Panics(t, func() { dist.WithSupportLimit(-1) })
	assert.Panics(t, func() { dist.WithLogger(nil) })
}
