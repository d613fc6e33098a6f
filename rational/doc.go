// Package rational provides an exact reduced-fraction value type for use
// as a canonical, comparable slope representation.
//
// What:
//
//   - Rational holds an integer numerator/denominator pair reduced to
//     lowest terms at construction; values are immutable afterwards.
//   - The denominator sign is normalized to positive, so two fractions
//     describing the same ratio compare equal with plain ==, regardless of
//     which subtraction order produced them (1/-2 and -1/2 both become -1/2).
//   - Rational is comparable and safe to use as a map key.
//
// Why:
//
//   - Slope bucketing: grouping points by the line they share demands
//     exact equality; floating point cannot deliver it (0.1+0.2 problems),
//     reduced integer fractions can.
//   - Hashability: a reduced, sign-normalized pair is a canonical key.
//
// Complexity:
//
//   - New: O(log min(|num|, |den|)) for the iterative Euclidean gcd.
//   - Accessors: O(1).
//
// Errors:
//
//   - ErrZeroDenominator: New was called with denominator 0.
//
// No arithmetic (add/mul) is provided: construction, accessors and
// equality are the entire contract.
package rational
