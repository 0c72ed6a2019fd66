package dist

import "math/rand"

// Seeds are owned by the caller: nothing here reads the clock. A *rand.Rand
// is not safe for concurrent use, so parallel samplers of one tree each take
// their own stream from DeriveRand.

// defaultSeed replaces seed 0.
const defaultSeed int64 = 1

// NewRand returns a *rand.Rand seeded with seed, or with defaultSeed when
// seed is 0.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

const golden = 0x9e3779b97f4a7c15

// splitmix mixes parent and stream so that neighbouring stream ids give
// uncorrelated seeds.
func splitmix(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + golden) + golden
	x = (x ^ x>>30) * 0xbf58476d1ce4e5b9
	x = (x ^ x>>27) * 0x94d049bb133111eb
	return int64(x ^ x>>31)
}

// DeriveRand returns an independent stream numbered stream, seeded from one
// draw of base (any Rand, not only *rand.Rand). Deriving twice from the same
// base therefore yields different children even for equal ids. A nil base
// uses defaultSeed as the parent.
func DeriveRand(base Rand, stream uint64) *rand.Rand {
	parent := defaultSeed
	if base != nil {
		parent = int64(base.Float64() * (1 << 53))
	}
	return rand.New(rand.NewSource(splitmix(parent, stream)))
}
