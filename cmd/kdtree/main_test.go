package main

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kdtree_code/kdtree"
	"kdtree_code/pointgen"
)

func TestRunPrintsNearest(t *testing.T) {
	opts := options{numPoints: 100, seed: 5, bound: kdtree.Max}
	var out bytes.Buffer
	require.NoError(t, run(opts, &out))

	// replay the generator to find the expected answer by brute force
	g := pointgen.New(opts.seed, opts.bound)
	ps := g.Points(opts.numPoints)
	q := g.Next()
	var best = ps[0]
	for _, p := range ps[1:] {
		if q.Distance(p) < q.Distance(best) {
			best = p
		}
	}
	var got kdtree.Point
	var gotQ kdtree.Point
	_, err := fmt.Sscanf(out.String(), "Point: (%d, %d) closest tree neighbor is Point: (%d, %d)\n",
		&gotQ.X, &gotQ.Y, &got.X, &got.Y)
	require.NoError(t, err)
	assert.Equal(t, q, gotQ)
	assert.Equal(t, q.Distance(best), q.Distance(got))
}

func TestRunEmpty(t *testing.T) {
	var out bytes.Buffer
	err := run(options{numPoints: 0, seed: 1, bound: 10}, &out)
	assert.ErrorIs(t, err, kdtree.ErrEmptyTree)
	assert.Empty(t, out.String())
}

func TestRunNodeLimit(t *testing.T) {
	var out bytes.Buffer
	err := run(options{numPoints: 10, seed: 1, bound: 10, maxNodes: 3}, &out)
	assert.ErrorIs(t, err, kdtree.ErrAllocation)
}

func TestReleaseTreeReportsError(t *testing.T) {
	assert := assert.New(t)

	tree := kdtree.New()
	var err error
	releaseTree(tree, &err)
	assert.NoError(err)

	// a second release fails, and that failure must surface
	releaseTree(tree, &err)
	assert.ErrorIs(err, kdtree.ErrReleased)

	// an earlier error is not overwritten
	first := errors.New("insert failed")
	err = first
	releaseTree(tree, &err)
	assert.Equal(first, err)
}

func TestParseFlags(t *testing.T) {
	assert := assert.New(t)

	opts, level, err := parseFlags([]string{"-n", "7", "-seed", "9", "-bound", "50", "-log-level", "debug"})
	assert.NoError(err)
	assert.Equal(options{numPoints: 7, seed: 9, bound: 50}, opts)
	assert.Equal("debug", level)

	_, _, err = parseFlags([]string{"-n", "-1"})
	assert.Error(err)
	_, _, err = parseFlags([]string{"-bound", "0"})
	assert.Error(err)
}
