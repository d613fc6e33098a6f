// Package collinear answers one question about points on the integer
// plane: how many of them, at most, lie on a single common straight line —
// computed with exact integer arithmetic from start to finish.
//
// 🚀 What is collinear?
//
//	A small, pure-Go library organized as three focused packages:
//		• Exact fractions: reduced, sign-normalized slopes (no floats ever)
//		• Canonical lines: hashable slope/intercept keys for infinite lines
//		• Grouping sweep: the O(n²) per-reference bucketing and global max
//
// ✨ Why choose collinear?
//
//   - Exact by construction – slopes are reduced integer fractions, so
//     (0,0)→(2,4) and (0,0)→(1,2) canonically hash to the same line
//   - Minimal API – one call, maxpoints.MaxCollinearPoints, answers the
//     question; the building blocks underneath stay exported and reusable
//   - Pure Go – no cgo, no hidden deps
//   - Optional parallelism – fan the reference sweep out across workers
//     without changing the observable result
//
// Under the hood, everything is organized under three subpackages:
//
//	rational/  — reduced fraction value type (Rational) & iterative gcd
//	geom/      — Point, exact Slope, canonical Line descriptors
//	maxpoints/ — LinesContaining, CollinearGroup & MaxCollinearPoints
//
// Quick ASCII example:
//
//	    4 ×
//	    3 ·  ×
//	    2 ·     ×
//	    1 ×        ×
//	      1  2  3  4
//
//	four of these five points share the anti-diagonal x+y=5,
//	so MaxCollinearPoints reports 4.
//
// Dive into each package's doc.go for contracts, complexity notes and
// sentinel errors, and into examples/ for runnable scenarios.
//
//	go get github.com/katalvlaran/collinear
package collinear
