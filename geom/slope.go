package geom

import (
	"github.com/katalvlaran/collinear/rational"
)

// Slope is the direction of a line, independent of its position: either
// vertical (the grade is undefined) or a reduced, sign-normalized
// rational grade. Slope is comparable and safe as a map key; a vertical
// slope always carries the zero Rational, so there is exactly one
// vertical value.
type Slope struct {
	vertical bool
	grade    rational.Rational
}

// VerticalSlope returns the slope of a vertical line.
func VerticalSlope() Slope {
	return Slope{vertical: true}
}

// GradeSlope returns a defined slope with the given grade.
func GradeSlope(grade rational.Rational) Slope {
	return Slope{grade: grade}
}

// SlopeBetween computes the exact slope of the line through a and b.
// If a.X == b.X the line is vertical; otherwise the grade is the reduced
// fraction (a.Y-b.Y)/(a.X-b.X). Thanks to sign normalization in
// rational.New, SlopeBetween(a, b) == SlopeBetween(b, a).
// Complexity: O(log C) for the gcd reduction, C = max coordinate magnitude.
func SlopeBetween(a, b Point) Slope {
	if a.X == b.X {
		return VerticalSlope()
	}
	// a.X != b.X guarantees a non-zero denominator pre-reduction, so the
	// error branch of rational.New is unreachable here.
	grade, _ := rational.New(a.Y-b.Y, a.X-b.X)

	return GradeSlope(grade)
}

// Vertical reports whether the slope belongs to a vertical line.
// Complexity: O(1).
func (s Slope) Vertical() bool { return s.vertical }

// Grade returns the reduced rational grade of a non-vertical slope.
// For a vertical slope it returns the zero Rational, which is not a valid
// fraction; check Vertical first. Complexity: O(1).
func (s Slope) Grade() rational.Rational { return s.grade }

// String renders the slope as "vertical" or its grade, e.g. "2/1".
func (s Slope) String() string {
	if s.vertical {
		return "vertical"
	}

	return s.grade.String()
}
