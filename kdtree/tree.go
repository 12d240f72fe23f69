// Package kdtree implements a two-dimensional k-d tree over integer points,
// supporting insertion and exact nearest-neighbor search.
//
// Every node records the bounding rectangle of the region its subtree covers,
// and the search skips any subtree whose rectangle is farther from the query
// than the best match found so far. The tree is never rebalanced and points
// are never removed.
//
// Insert and Release must not run concurrently with any other call. Queries
// keep no state on the tree, so any number of them may run at once on a tree
// that is not being modified.
//
// After Release, Insert, InsertBatch, Nearest and Release return ErrReleased;
// the read-only accessors (Len, Points, Walk, Height) see an empty tree.
package kdtree

import (
	"fmt"

	"github.com/goose-lang/std"
)

// Config sets up a Tree. The zero value is a tree over [0, Max) with no limit
// on the number of nodes.
type Config struct {
	// Bound is the exclusive upper bound of both coordinates; the root's
	// rectangle spans [0, Bound] on each axis.
	Bound int

	// MaxNodes caps the number of nodes the tree may allocate; 0 means no
	// limit.
	MaxNodes int
}

// Tree is a k-d tree. Nodes are stored in an arena owned by the tree, and
// links between them are arena indices.
type Tree struct {
	nodes    []node
	root     nodeID
	bound    int
	maxNodes uint64
	released bool
}

// New returns an empty tree over [0, Max) with no node limit.
func New() *Tree {
	return &Tree{
		nodes: []node{},
		root:  noNode,
		bound: Max,
	}
}

// NewWithConfig returns an empty tree configured by cfg.
func NewWithConfig(cfg Config) (*Tree, error) {
	bound := cfg.Bound
	if bound == 0 {
		bound = Max
	}
	if bound < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBound, cfg.Bound)
	}
	if cfg.MaxNodes < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidNodeLimit, cfg.MaxNodes)
	}
	t := New()
	t.bound = bound
	t.maxNodes = uint64(cfg.MaxNodes)
	return t, nil
}

// Bound returns the exclusive upper bound of the coordinate universe.
func (t *Tree) Bound() int {
	return t.bound
}

// Len returns the number of points stored in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

func (t *Tree) full() bool {
	return t.maxNodes != 0 && uint64(len(t.nodes)) >= t.maxNodes
}

func (t *Tree) alloc(n node) nodeID {
	id := nodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	return id
}

// Insert adds p to the tree. Duplicates are kept as separate nodes. If no
// node can be allocated, Insert returns ErrAllocation and the tree is
// unchanged.
func (t *Tree) Insert(p Point) error {
	if t.released {
		return ErrReleased
	}
	if t.full() {
		return fmt.Errorf("%w: node limit %d reached", ErrAllocation, t.maxNodes)
	}
	if t.root == noNode {
		t.root = t.alloc(rootNode(p, t.bound))
		return nil
	}
	var cur = t.root
	for {
		n := &t.nodes[cur]
		if n.goesLeft(p.Coord(n.dim)) {
			if n.left == noNode {
				// alloc may move the arena, so link through the index
				id := t.alloc(childNode(*n, cur, p, true))
				t.nodes[cur].left = id
				return nil
			}
			cur = n.left
		} else {
			if n.right == noNode {
				id := t.alloc(childNode(*n, cur, p, false))
				t.nodes[cur].right = id
				return nil
			}
			cur = n.right
		}
	}
}

// InsertBatch inserts ps in order and stops at the first failure. Points
// inserted before the failure stay in the tree.
func (t *Tree) InsertBatch(ps []Point) error {
	for i, p := range ps {
		if err := t.Insert(p); err != nil {
			return fmt.Errorf("insert point %d %v: %w", i, p, err)
		}
	}
	return nil
}

// NodeInfo is a read-only view of one node, as passed to Walk. ID identifies
// the node within its tree and Parent is the ID of its parent, or -1 for the
// root. Dim is the splitting axis: 0 for X, 1 for Y.
type NodeInfo struct {
	ID     int
	Parent int
	Point  Point
	Dim    uint8
	Rect   Rect
	Depth  uint64
}

type walkFrame struct {
	id    nodeID
	depth uint64
}

// Walk calls fn for every node in pre-order, left subtree before right,
// stopping early if fn returns false.
func (t *Tree) Walk(fn func(NodeInfo) bool) {
	if t.root == noNode {
		return
	}
	s := newStack[walkFrame]()
	s.push(walkFrame{id: t.root, depth: 0})
	for {
		f, ok := s.pop()
		if !ok {
			break
		}
		n := &t.nodes[f.id]
		parent := -1
		if n.parent != noNode {
			parent = int(n.parent)
		}
		info := NodeInfo{
			ID:     int(f.id),
			Parent: parent,
			Point:  n.point,
			Dim:    n.dim,
			Rect:   n.rect,
			Depth:  f.depth,
		}
		if !fn(info) {
			return
		}
		childDepth := std.SumAssumeNoOverflow(f.depth, 1)
		if n.right != noNode {
			s.push(walkFrame{id: n.right, depth: childDepth})
		}
		if n.left != noNode {
			s.push(walkFrame{id: n.left, depth: childDepth})
		}
	}
}

// Points returns the stored points in pre-order.
func (t *Tree) Points() []Point {
	var ps = make([]Point, 0, len(t.nodes))
	t.Walk(func(n NodeInfo) bool {
		ps = append(ps, n.Point)
		return true
	})
	return ps
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree) Height() int {
	var h = uint64(0)
	t.Walk(func(n NodeInfo) bool {
		if n.Depth+1 > h {
			h = n.Depth + 1
		}
		return true
	})
	return int(h)
}

type releaseFrame struct {
	id       nodeID
	expanded bool
}

// releaseNodes clears every node reachable from the root, children before
// their parent, calling visit (if non-nil) with each node as it is cleared.
func (t *Tree) releaseNodes(visit func(nodeID)) {
	if t.root == noNode {
		return
	}
	s := newStack[releaseFrame]()
	s.push(releaseFrame{id: t.root})
	for {
		f, ok := s.pop()
		if !ok {
			break
		}
		n := &t.nodes[f.id]
		if !f.expanded {
			s.push(releaseFrame{id: f.id, expanded: true})
			if n.right != noNode {
				s.push(releaseFrame{id: n.right})
			}
			if n.left != noNode {
				s.push(releaseFrame{id: n.left})
			}
			continue
		}
		if visit != nil {
			visit(f.id)
		}
		*n = node{}
	}
}

// Release tears the tree down, releasing every node once with children
// before their parent. It may be called once; afterwards Insert, InsertBatch,
// Nearest and Release return ErrReleased and the accessors see no nodes.
func (t *Tree) Release() error {
	if t.released {
		return ErrReleased
	}
	t.releaseNodes(nil)
	t.nodes = nil
	t.root = noNode
	t.released = true
	return nil
}
