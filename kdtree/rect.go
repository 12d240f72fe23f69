package kdtree

// Rect is an axis-aligned rectangle, closed on every side.
type Rect struct {
	MinX int
	MaxX int
	MinY int
	MaxY int
}

// Universe is the rectangle assigned to the root of a tree whose
// coordinates lie in [0, bound).
func Universe(bound int) Rect {
	return Rect{MinX: 0, MaxX: bound, MinY: 0, MaxY: bound}
}

// Contains reports whether p lies inside r or on its boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX &&
		p.Y >= r.MinY && p.Y <= r.MaxY
}

// ContainsRect reports whether o is a subset of r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.MinX >= r.MinX && o.MaxX <= r.MaxX &&
		o.MinY >= r.MinY && o.MaxY <= r.MaxY
}

// withMax returns r with its max bound on axis d replaced by v.
func (r Rect) withMax(d uint8, v int) Rect {
	if d == 0 {
		r.MaxX = v
	} else {
		r.MaxY = v
	}
	return r
}

// withMin returns r with its min bound on axis d replaced by v.
func (r Rect) withMin(d uint8, v int) Rect {
	if d == 0 {
		r.MinX = v
	} else {
		r.MinY = v
	}
	return r
}

// axisGap is how far k lies outside [lo, hi], or 0 if it is inside.
func axisGap(k int, lo int, hi int) uint64 {
	if k < lo {
		return gap(k, lo)
	}
	if k > hi {
		return gap(k, hi)
	}
	return 0
}

// sqDistance is the squared Euclidean distance from p to the nearest point of
// r; it is zero when r contains p.
func (r Rect) sqDistance(p Point) sqSum {
	return sumOfSquares(axisGap(p.X, r.MinX, r.MaxX), axisGap(p.Y, r.MinY, r.MaxY))
}

// Distance returns the Euclidean distance from p to the nearest point of r.
func (r Rect) Distance(p Point) float64 {
	return hypot(axisGap(p.X, r.MinX, r.MaxX), axisGap(p.Y, r.MinY, r.MaxY))
}
