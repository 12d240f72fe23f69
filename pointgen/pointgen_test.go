package pointgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"kdtree_code/kdtree"
	"kdtree_code/pointgen"
)

func TestSameSeedSameSequence(t *testing.T) {
	assert := assert.New(t)

	a := pointgen.New(42, kdtree.Max).Points(50)
	b := pointgen.New(42, kdtree.Max).Points(50)
	assert.Equal(a, b)
	assert.Len(a, 50)

	c := pointgen.New(43, kdtree.Max).Points(50)
	assert.NotEqual(a, c)
}

func TestPointsEmpty(t *testing.T) {
	assert.Empty(t, pointgen.New(1, 10).Points(0))
}

func TestPointsInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		seed := rapid.Uint64().Draw(t, "seed")
		bound := rapid.IntRange(1, 2000).Draw(t, "bound")
		n := rapid.IntRange(0, 200).Draw(t, "n")

		ps := pointgen.New(seed, bound).Points(n)
		assert.Len(ps, n)
		for _, p := range ps {
			assert.True(p.X >= 0 && p.X < bound, "x out of range: %v", p)
			assert.True(p.Y >= 0 && p.Y < bound, "y out of range: %v", p)
		}
	})
}
