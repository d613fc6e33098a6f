// Package maxpoints implements the collinearity sweep: bucketing points
// by the canonical line they share with a reference point, and taking the
// global maximum group size over all references.
//
// What:
//
//   - LinesContaining buckets every other point by the geom.Line it forms
//     with one fixed reference point.
//   - CollinearGroup returns the largest such bucket (reference included);
//     with no other point it returns just the reference.
//   - CollinearGroups maps every distinct input coordinate to its group.
//   - MaxCollinearPoints is the single top-level operation: the size of
//     the most populous line over the whole input.
//
// Why:
//
//   - Pattern detection: aligned sensors, stars, plotted samples.
//   - A worked example of exact-fraction hashing beating floating point.
//
// Complexity:
//
//   - LinesContaining / CollinearGroup: O(n) line constructions, O(n) memory.
//   - MaxCollinearPoints: O(n²) time, O(n) memory per reference pass.
//     The quadratic pairwise sweep is the intended design, not a defect;
//     Options.Workers only spreads it across goroutines.
//
// Tie-break policy:
//
//   - Among equal-sized groups the winner is unspecified (map iteration
//     order). Only group sizes are observable through the maximizer, and
//     sizes are deterministic.
//
// Errors:
//
//   - ErrNoPoints: MaxCollinearPoints was given an empty input; there is
//     no group to take a maximum over.
//   - ErrBadWorkers: Options.Workers is negative.
package maxpoints
