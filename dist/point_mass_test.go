package dist_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvprob/dist"
)

func TestPointMass_ScoreAndSupport(t *testing.T) {
	p := dist.NewPointMass("x")

	assert.Equal(t, 1.0, p.Score("x"))
	assert.Equal(t, 0.0, p.Score("y"))
	assert.Equal(t, 1.0, p.ScoreFunc(func(s string) bool { return s == "x" }))
	assert.Equal(t, 0.0, p.ScoreFunc(func(string) bool { return false }))
	assert.Equal(t, []string{"x"}, slices.Collect(p.Support()))
	assert.Equal(t, "x", p.Value())
	assert.Equal(t, dist.KindPointMass, p.Kind())
}

func TestPointMass_SampleIgnoresRand(t *testing.T) {
	v, err := dist.NewPointMass(7).Sample(nil)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestPointMass_Filter(t *testing.T) {
	p := dist.NewPointMass(3)

	kept, err := p.Filter(func(x int) bool { return x > 0 })
	require.NoError(t, err)
	assert.Same(t, p, kept)

	// Rejecting the only value must fail, never yield an empty table.
	rejected, err := p.Filter(func(x int) bool { return x > 5 })
	assert.ErrorIs(t, err, dist.ErrEmptyDistribution)
	assert.Nil(t, rejected)
}

func TestAlways(t *testing.T) {
	d := dist.Always(true)
	assert.Equal(t, dist.KindPointMass, d.Kind())
	assert.Equal(t, 1.0, d.Score(true))
}
