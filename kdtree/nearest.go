package kdtree

import "github.com/goose-lang/primitive"

// best is the running match of a search. It lives on the searching
// goroutine, never on the Tree.
type best struct {
	point  Point
	sqDist sqSum
	found  bool
}

func (b *best) offer(p Point, d sqSum) {
	if !b.found || d.less(b.sqDist) {
		b.point = p
		b.sqDist = d
		b.found = true
	}
}

// beats reports whether a candidate at squared distance d could still be
// kept, i.e. it is not strictly farther than the current best.
func (b *best) beats(d sqSum) bool {
	return !b.found || !b.sqDist.less(d)
}

// search finds the stored point closest to q. The tree must be non-empty.
func (t *Tree) search(q Point) best {
	var acc best
	s := newStack[nodeID]()
	s.push(t.root)
	for {
		id, ok := s.pop()
		if !ok {
			break
		}
		n := &t.nodes[id]
		if !acc.beats(n.rect.sqDistance(q)) {
			continue
		}
		acc.offer(n.point, sqDist(n.point, q))

		// visit the side of the split q falls on first; the far side is
		// checked against the tightened best when it is popped
		var near, far = n.right, n.left
		if n.goesLeft(q.Coord(n.dim)) {
			near, far = n.left, n.right
		}
		if far != noNode {
			s.push(far)
		}
		if near != noNode {
			s.push(near)
		}
	}
	primitive.Assert(acc.found)
	return acc
}

// Nearest returns the stored point closest to q in Euclidean distance. When
// several points are equally close, any one of them may be returned.
func (t *Tree) Nearest(q Point) (Point, error) {
	p, _, err := t.NearestWithDistance(q)
	return p, err
}

// NearestWithDistance is like Nearest but also returns the distance from q to
// the returned point.
func (t *Tree) NearestWithDistance(q Point) (Point, float64, error) {
	if t.released {
		return Point{}, 0, ErrReleased
	}
	if t.root == noNode {
		return Point{}, 0, ErrEmptyTree
	}
	b := t.search(q)
	return b.point, q.Distance(b.point), nil
}
