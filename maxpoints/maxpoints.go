// Package maxpoints groups integer-plane points by shared lines and finds
// the largest collinear group.
package maxpoints

import (
	"sync"

	"github.com/katalvlaran/collinear/geom"
)

// LinesContaining buckets every point of all, other than ref itself, by
// the canonical line it forms with ref. Each bucket lists ref first and
// then the partners in input order. Points whose coordinates equal ref's
// are skipped entirely: a Point has no identity beyond its coordinates,
// so they form no line with ref.
// Complexity: O(n) line constructions, O(n) memory.
func LinesContaining(ref geom.Point, all []geom.Point) map[geom.Line][]geom.Point {
	lines := make(map[geom.Line][]geom.Point)
	for _, p := range all {
		if p == ref {
			continue
		}
		line := geom.LineThrough(ref, p)
		if group, ok := lines[line]; ok {
			lines[line] = append(group, p)
		} else {
			lines[line] = []geom.Point{ref, p}
		}
	}

	return lines
}

// CollinearGroup returns the largest group of points in all that lie on
// one common line through ref, ref included. When several lines tie on
// size the winner is unspecified (map iteration order); the size is still
// deterministic. If all contains no point other than ref (or only
// coordinate-duplicates of it), the group is just [ref].
// Complexity: O(n) time, O(n) memory.
func CollinearGroup(ref geom.Point, all []geom.Point) []geom.Point {
	var best []geom.Point
	for _, group := range LinesContaining(ref, all) {
		if len(group) > len(best) {
			best = group
		}
	}
	if best == nil {
		return []geom.Point{ref}
	}

	return best
}

// CollinearGroups computes CollinearGroup for every point of the input,
// keyed by coordinates. Input points sharing coordinates collapse to one
// entry; the maximizer below deliberately avoids this map and accumulates
// by input index instead.
// Complexity: O(n²) time, O(n²) memory across all stored groups.
func CollinearGroups(points []geom.Point) map[geom.Point][]geom.Point {
	groups := make(map[geom.Point][]geom.Point, len(points))
	for _, p := range points {
		groups[p] = CollinearGroup(p, points)
	}

	return groups
}

// MaxCollinearPoints returns the number of input points lying on the most
// populous single line, counting the reference point and every other
// point exactly on it. Raw pairs are (x, y) integer coordinates;
// duplicate pairs are legitimate input and each contributes its own
// reference pass. Pass nil opts for defaults.
//
// Returns ErrNoPoints for empty input and ErrBadWorkers for a negative
// Options.Workers.
// Complexity: O(n²) time, O(n) memory (plus O(n) for the size accumulator).
func MaxCollinearPoints(raw [][2]int, opts *Options) (int, error) {
	workers := 1
	if opts != nil {
		if opts.Workers < 0 {
			return 0, ErrBadWorkers
		}
		if opts.Workers > 1 {
			workers = opts.Workers
		}
	}
	if len(raw) == 0 {
		return 0, ErrNoPoints
	}

	points := make([]geom.Point, len(raw))
	for i, rp := range raw {
		points[i] = geom.Pt(rp[0], rp[1])
	}

	// One accumulator slot per input index, so duplicate coordinates each
	// keep their own pass instead of collapsing under a map key.
	sizes := make([]int, len(points))
	if workers > len(points) {
		workers = len(points)
	}
	if workers <= 1 {
		sweep(points, sizes, 0, len(points))
	} else {
		parallelSweep(points, sizes, workers)
	}

	best := 0
	for _, size := range sizes {
		if size > best {
			best = size
		}
	}

	return best, nil
}

// sweep fills sizes[lo:hi] with the best group size per reference index.
func sweep(points []geom.Point, sizes []int, lo, hi int) {
	for i := lo; i < hi; i++ {
		sizes[i] = len(CollinearGroup(points[i], points))
	}
}

// parallelSweep splits the reference indices into contiguous chunks, one
// goroutine each. Workers write disjoint ranges of sizes and read the
// shared input slice only, so no locking is needed.
func parallelSweep(points []geom.Point, sizes []int, workers int) {
	var wg sync.WaitGroup
	chunk := (len(points) + workers - 1) / workers
	for lo := 0; lo < len(points); lo += chunk {
		hi := lo + chunk
		if hi > len(points) {
			hi = len(points)
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			sweep(points, sizes, lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
