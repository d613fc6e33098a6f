// Package geom defines the planar value types of the collinear library:
// integer points, exact slopes, and canonical line descriptors.
//
// What:
//
//   - Point is an immutable (X, Y) integer pair; equality and hashing are
//     by coordinates, so duplicate coordinates are indistinguishable.
//   - Slope encodes the direction of a line through two points: either
//     vertical (undefined grade) or a reduced rational.Rational grade.
//   - Line is the canonical, comparable key for an infinite line: a Slope
//     plus an integer intercept. Any two point-pairs lying on the same
//     line, evaluated against the same reference point, produce equal
//     Line values — the property the grouping sweep in maxpoints relies on.
//
// Why:
//
//   - Exactness: slopes are rational.Rational values, never floats, so
//     (0,0)→(2,4) and (0,0)→(1,2) yield the identical Slope 2/1.
//   - Hashability: Point, Slope and Line are all comparable and safe as
//     map keys; bucketing points by line is a plain map insert.
//
// Complexity:
//
//   - SlopeBetween: O(log C) where C bounds the coordinate magnitudes
//     (the gcd reduction); LineThrough adds O(1) on top.
//
// Intercept caveat:
//
//   - For a defined slope, LineThrough computes the y-intercept with
//     truncating integer division at the reference point a. The value is
//     stable for a fixed a, which is all line bucketing needs, but it is
//     NOT in general the mathematical y-intercept; never compare Line
//     values built against different reference points.
package geom
