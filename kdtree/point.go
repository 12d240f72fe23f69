package kdtree

import "strconv"

// Max is the default bound of the coordinate universe: points are expected
// to satisfy 0 <= X, Y < Max.
const Max = 1000

// Point is an immutable pair of integer coordinates.
type Point struct {
	X int
	Y int
}

// Coord returns the coordinate on axis d (0 for X, 1 for Y).
func (p Point) Coord(d uint8) int {
	if d == 0 {
		return p.X
	}
	return p.Y
}

func (p Point) String() string {
	return "(" + strconv.Itoa(p.X) + ", " + strconv.Itoa(p.Y) + ")"
}

// sqDist is the exact squared Euclidean distance between p and q, valid for
// any coordinates.
func sqDist(p Point, q Point) sqSum {
	return sumOfSquares(gap(p.X, q.X), gap(p.Y, q.Y))
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return hypot(gap(p.X, q.X), gap(p.Y, q.Y))
}
