// Package rational implements exact reduced fractions with normalized sign.
package rational

import (
	"errors"
	"fmt"
)

// ErrZeroDenominator indicates that New was called with denominator 0,
// which has no defined fraction value.
var ErrZeroDenominator = errors.New("rational: denominator must be non-zero")

// Rational is an exact fraction reduced to lowest terms.
// Invariants, established by New and never broken afterwards:
//
//   - gcd(|num|, |den|) == 1
//   - den > 0 (sign lives on the numerator)
//
// The zero value (0/0) is not a valid fraction; always construct via New.
// Rational is comparable: two values built from any pairs describing the
// same ratio are equal under ==, which makes Rational usable as a map key.
type Rational struct {
	num int
	den int
}

// New returns the fraction num/den reduced to lowest terms with a positive
// denominator. Returns ErrZeroDenominator when den == 0.
// Complexity: O(log min(|num|, |den|)).
func New(num, den int) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrZeroDenominator
	}
	// den != 0 here, so gcd is never asked for gcd(0, 0).
	g := gcd(num, den)
	num /= g
	den /= g
	// Normalize: the denominator carries no sign, so equality is a pure
	// field comparison independent of the subtraction order that produced
	// the inputs.
	if den < 0 {
		num, den = -num, -den
	}

	return Rational{num: num, den: den}, nil
}

// Numerator returns the reduced, sign-carrying numerator. Complexity: O(1).
func (r Rational) Numerator() int { return r.num }

// Denominator returns the reduced, always-positive denominator.
// Complexity: O(1).
func (r Rational) Denominator() int { return r.den }

// String renders the fraction as "num/den", e.g. "-1/2".
func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.num, r.den)
}

// gcd computes the greatest common divisor of |a| and |b| with the
// iterative Euclidean algorithm (no recursion, so no stack growth for
// large coordinates). gcd(a, 0) = |a| and gcd(0, b) = |b|; callers must
// not pass a == b == 0.
func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
