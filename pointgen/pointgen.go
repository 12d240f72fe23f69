// Package pointgen produces uniformly random points for filling and querying
// a kdtree.
package pointgen

import (
	"math/rand/v2"

	"github.com/goose-lang/primitive"

	"kdtree_code/kdtree"
)

// Generator draws points with both coordinates uniform in [0, bound). It is
// not safe for concurrent use.
type Generator struct {
	rnd   *rand.Rand
	bound int
}

// New returns a Generator seeded with seed. Generators with the same seed and
// bound produce the same sequence. bound must be positive.
func New(seed uint64, bound int) *Generator {
	primitive.Assert(bound > 0)
	return &Generator{
		rnd:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		bound: bound,
	}
}

func (g *Generator) Next() kdtree.Point {
	x := g.rnd.IntN(g.bound)
	y := g.rnd.IntN(g.bound)
	return kdtree.Point{X: x, Y: y}
}

// Points returns the next n points.
func (g *Generator) Points(n int) []kdtree.Point {
	var ps = make([]kdtree.Point, 0, n)
	for i := 0; i < n; i++ {
		ps = append(ps, g.Next())
	}
	return ps
}
