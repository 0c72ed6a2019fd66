package tables_test

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvprob/dist"
	"github.com/katalvlaran/lvprob/tables"
)

const doc = `
weather:
  Sun: 0.3
  Rain: 0.3
  Snow: 0.4
coin:
  tails: 0.5
  heads: 0.5
`

func TestParse_PreservesOrder(t *testing.T) {
	set, err := tables.Parse([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []string{"weather", "coin"}, set.Names())

	weather, ok := set.Get("weather")
	require.True(t, ok)
	assert.Equal(t, []string{"Sun", "Rain", "Snow"}, slices.Collect(weather.Support()))
	assert.Equal(t, 0.4, weather.Score("Snow"))

	coin, ok := set.Get("coin")
	require.True(t, ok)
	assert.Equal(t, []string{"tails", "heads"}, slices.Collect(coin.Support()))

	_, ok = set.Get("missing")
	assert.False(t, ok)
}

func TestDecode(t *testing.T) {
	set, err := tables.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"weather", "coin"}, set.Names())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	set, err := tables.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())

	_, err = tables.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		wantErr error
	}{
		{"empty", "", tables.ErrMalformed},
		{"syntax", "weather: [", tables.ErrMalformed},
		{"top-level list", "- a\n- b\n", tables.ErrMalformed},
		{"table not a mapping", "weather: 0.5\n", tables.ErrMalformed},
		{"non-numeric probability", "weather:\n  Sun: lots\n", tables.ErrMalformed},
		{"duplicate table", "a:\n  x: 1\na:\n  y: 1\n", tables.ErrMalformed},
		{"mass below one", "weather:\n  Sun: 0.2\n  Rain: 0.2\n", dist.ErrInvalidProbability},
		{"negative", "weather:\n  Sun: 1.5\n  Rain: -0.5\n", dist.ErrInvalidProbability},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tables.Parse([]byte(tc.src))
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	_, err := tables.Decode(strings.NewReader(""))
	assert.ErrorIs(t, err, tables.ErrMalformed)
}

func TestParse_Options(t *testing.T) {
	loose := "weather:\n  Sun: 0.5\n  Rain: 0.45\n"

	_, err := tables.Parse([]byte(loose))
	assert.ErrorIs(t, err, dist.ErrInvalidProbability)

	set, err := tables.Parse([]byte(loose), dist.WithTolerance(0.1))
	require.NoError(t, err)
	assert.Equal(t, 1, set.Len())
}
