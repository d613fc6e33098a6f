package geom

import "fmt"

// Line is the canonical descriptor of an infinite line, usable as a map
// key. For a vertical Slope the Intercept is the line's x-coordinate; for
// a defined Slope it is the y-intercept evaluated at the reference point
// passed to LineThrough (see the package doc for the truncation caveat).
type Line struct {
	Slope     Slope
	Intercept int
}

// LineThrough builds the canonical Line through reference point a and
// partner b. The reference point matters: for a defined slope the
// intercept is a.Y - (num*a.X)/den with truncating integer division,
// which is stable per reference point and therefore a valid bucketing
// key within one grouping pass. Calling LineThrough(p, p) degenerates to
// the vertical line at p.X; callers that need distinct points must filter
// beforehand. Complexity: O(log C) (dominated by SlopeBetween).
func LineThrough(a, b Point) Line {
	s := SlopeBetween(a, b)
	if s.Vertical() {
		return Line{Slope: s, Intercept: a.X}
	}
	g := s.Grade()

	return Line{Slope: s, Intercept: a.Y - (g.Numerator()*a.X)/g.Denominator()}
}

// String renders the line as "x=c" for vertical lines or "slope n/d @ c"
// for defined ones.
func (l Line) String() string {
	if l.Slope.Vertical() {
		return fmt.Sprintf("x=%d", l.Intercept)
	}

	return fmt.Sprintf("slope %s @ %d", l.Slope, l.Intercept)
}
