package rational_test

import (
	"testing"

	"github.com/katalvlaran/collinear/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_ReducesToLowestTerms verifies that New divides out the greatest
// common divisor of numerator and denominator.
func TestNew_ReducesToLowestTerms(t *testing.T) {
	r, err := rational.New(4, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Numerator(), "4/2 must reduce to 2/1")
	assert.Equal(t, 1, r.Denominator(), "4/2 must reduce to 2/1")

	r, err = rational.New(6, 9)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Numerator(), "6/9 must reduce to 2/3")
	assert.Equal(t, 3, r.Denominator(), "6/9 must reduce to 2/3")
}

// TestNew_AlreadyReduced verifies that coprime pairs pass through untouched.
func TestNew_AlreadyReduced(t *testing.T) {
	r, err := rational.New(3, 7)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Numerator())
	assert.Equal(t, 7, r.Denominator())
}

// TestNew_SignNormalization verifies that the denominator is always
// positive after construction, so equal ratios produced with opposite
// subtraction orders compare equal under ==.
func TestNew_SignNormalization(t *testing.T) {
	a, err := rational.New(1, -2)
	require.NoError(t, err)
	b, err := rational.New(-1, 2)
	require.NoError(t, err)
	assert.Equal(t, a, b, "1/-2 and -1/2 must be the same canonical value")
	assert.Equal(t, -1, a.Numerator(), "sign must move to the numerator")
	assert.Equal(t, 2, a.Denominator(), "denominator must be positive")

	c, err := rational.New(-4, -6)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Numerator(), "-4/-6 must normalize to 2/3")
	assert.Equal(t, 3, c.Denominator(), "-4/-6 must normalize to 2/3")
}

// TestNew_ZeroNumerator verifies that 0/anything collapses to the single
// canonical zero 0/1.
func TestNew_ZeroNumerator(t *testing.T) {
	a, err := rational.New(0, 5)
	require.NoError(t, err)
	b, err := rational.New(0, -17)
	require.NoError(t, err)
	assert.Equal(t, a, b, "all zero fractions must share one representation")
	assert.Equal(t, 0, a.Numerator())
	assert.Equal(t, 1, a.Denominator())
}

// TestNew_ZeroDenominator verifies the sentinel error for denominator 0.
func TestNew_ZeroDenominator(t *testing.T) {
	_, err := rational.New(3, 0)
	assert.ErrorIs(t, err, rational.ErrZeroDenominator, "den == 0 must error")

	_, err = rational.New(0, 0)
	assert.ErrorIs(t, err, rational.ErrZeroDenominator, "0/0 must error, not divide by zero")
}

// TestRational_EqualityAcrossConstructions verifies that any two pairs
// describing the same ratio construct identical values.
func TestRational_EqualityAcrossConstructions(t *testing.T) {
	a, err := rational.New(2, 4)
	require.NoError(t, err)
	b, err := rational.New(50, 100)
	require.NoError(t, err)
	assert.Equal(t, a, b, "2/4 and 50/100 must both reduce to 1/2")
}

// TestRational_String verifies the "num/den" rendering.
func TestRational_String(t *testing.T) {
	r, err := rational.New(2, -4)
	require.NoError(t, err)
	assert.Equal(t, "-1/2", r.String())
}
