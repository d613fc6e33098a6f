// File: rational/example_test.go
package rational_test

import (
	"fmt"

	"github.com/katalvlaran/collinear/rational"
)

// ExampleNew demonstrates reduction and sign normalization: both the
// pair (2, -4) and the pair (-1, 2) build the same canonical fraction.
func ExampleNew() {
	a, _ := rational.New(2, -4)
	b, _ := rational.New(-1, 2)

	fmt.Println("a:", a)
	fmt.Println("b:", b)
	fmt.Println("equal:", a == b)

	// Output:
	// a: -1/2
	// b: -1/2
	// equal: true
}

// ExampleNew_zeroDenominator demonstrates the sentinel error returned
// when no fraction value exists.
func ExampleNew_zeroDenominator() {
	_, err := rational.New(1, 0)
	fmt.Println(err)

	// Output:
	// rational: denominator must be non-zero
}
