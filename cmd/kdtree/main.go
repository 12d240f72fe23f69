// Command kdtree fills a k-d tree with random points and prints the stored
// point closest to one more random point.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"kdtree_code/kdtree"
	"kdtree_code/pointgen"
)

type options struct {
	numPoints int
	seed      uint64
	bound     int
	maxNodes  int
}

func parseFlags(args []string) (options, string, error) {
	fs := flag.NewFlagSet("kdtree", flag.ContinueOnError)
	var opts options
	fs.IntVar(&opts.numPoints, "n", 100, "number of random points to insert")
	fs.Uint64Var(&opts.seed, "seed", uint64(time.Now().UnixNano()), "random seed")
	fs.IntVar(&opts.bound, "bound", kdtree.Max, "coordinates are drawn from [0, bound)")
	fs.IntVar(&opts.maxNodes, "max-nodes", 0, "node limit for the tree (0 for none)")
	level := fs.String("log-level", "info", "log level")
	if err := fs.Parse(args); err != nil {
		return options{}, "", err
	}
	if opts.numPoints < 0 {
		return options{}, "", fmt.Errorf("-n must not be negative, got %d", opts.numPoints)
	}
	if opts.bound <= 0 {
		return options{}, "", fmt.Errorf("-bound must be positive, got %d", opts.bound)
	}
	return opts, *level, nil
}

// releaseTree releases tree when run returns, reporting a failed release
// through *err unless run already failed.
func releaseTree(tree *kdtree.Tree, err *error) {
	if rerr := tree.Release(); rerr != nil && *err == nil {
		*err = fmt.Errorf("release tree: %w", rerr)
	}
}

func run(opts options, out io.Writer) (err error) {
	tree, err := kdtree.NewWithConfig(kdtree.Config{Bound: opts.bound, MaxNodes: opts.maxNodes})
	if err != nil {
		return err
	}
	defer releaseTree(tree, &err)

	g := pointgen.New(opts.seed, opts.bound)
	points := g.Points(opts.numPoints)
	log.WithFields(log.Fields{
		"points": len(points),
		"seed":   opts.seed,
		"bound":  opts.bound,
	}).Debug("generated points")

	start := time.Now()
	if err := tree.InsertBatch(points); err != nil {
		log.WithError(err).WithField("inserted", tree.Len()).Error("insert aborted")
		return err
	}
	log.WithFields(log.Fields{
		"nodes":    tree.Len(),
		"height":   tree.Height(),
		"duration": time.Since(start),
	}).Debug("built tree")

	q := g.Next()
	p, d, err := tree.NearestWithDistance(q)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"query": q, "match": p, "distance": d}).Debug("query done")

	fmt.Fprintf(out, "Point: (%d, %d) closest tree neighbor is Point: (%d, %d)\n", q.X, q.Y, p.X, p.Y)
	return nil
}

func main() {
	opts, level, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.WithError(err).Fatal("bad arguments")
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.WithError(err).Fatal("bad log level")
	}
	log.SetLevel(lvl)

	if err := run(opts, os.Stdout); err != nil {
		if errors.Is(err, kdtree.ErrEmptyTree) {
			log.Error("no points were inserted, nothing to query")
			os.Exit(2)
		}
		log.WithError(err).Fatal("kdtree failed")
	}
}
