package kdtree

import "errors"

var (
	// ErrAllocation is returned when storage for a node cannot be obtained,
	// which for a Tree means its configured node limit has been reached.
	ErrAllocation = errors.New("kdtree: cannot allocate node")
	// ErrEmptyTree is returned by queries against a tree with no points.
	ErrEmptyTree = errors.New("kdtree: empty tree")
	// ErrReleased is returned by every operation on a tree after Release.
	ErrReleased = errors.New("kdtree: tree released")
	// ErrInvalidBound is returned for a Config whose Bound is not positive.
	ErrInvalidBound = errors.New("kdtree: invalid bound")
	// ErrInvalidNodeLimit is returned for a Config whose MaxNodes is negative.
	ErrInvalidNodeLimit = errors.New("kdtree: invalid node limit")
)
