package kdtree

import "github.com/goose-lang/primitive"

// nodeID indexes a node in its tree's arena.
type nodeID uint64

// noNode marks an absent link.
const noNode = ^nodeID(0)

// node is one stored point. left and right are owning links; parent is only
// a back-reference and is never followed when releasing storage. None of the
// fields change after the node is attached.
type node struct {
	point  Point
	dim    uint8
	left   nodeID
	right  nodeID
	parent nodeID
	rect   Rect
}

func rootNode(p Point, bound int) node {
	return node{
		point:  p,
		dim:    0,
		left:   noNode,
		right:  noNode,
		parent: noNode,
		rect:   Universe(bound),
	}
}

// childNode builds the node for p hanging off parent (stored at id) on the
// left side if left is set, otherwise the right. The child splits on the
// other axis and its rectangle is the parent's, cut at the parent's point.
func childNode(parent node, id nodeID, p Point, left bool) node {
	primitive.Assert(parent.dim <= 1)
	d := parent.dim
	v := parent.point.Coord(d)
	var rect Rect
	if left {
		rect = parent.rect.withMax(d, v)
	} else {
		rect = parent.rect.withMin(d, v)
	}
	return node{
		point:  p,
		dim:    1 - d,
		left:   noNode,
		right:  noNode,
		parent: id,
		rect:   rect,
	}
}

// goesLeft reports whether a point with coordinate v on n's splitting axis
// belongs in n's left subtree. Ties go right.
func (n *node) goesLeft(v int) bool {
	return n.point.Coord(n.dim) > v
}
