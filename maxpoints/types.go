// Package maxpoints defines options and sentinel errors for the
// collinearity sweep.
package maxpoints

import (
	"errors"
)

// Sentinel errors returned by MaxCollinearPoints.
var (
	// ErrNoPoints indicates an empty input: with zero points there is no
	// group to take a maximum over.
	ErrNoPoints = errors.New("maxpoints: input must contain at least one point")

	// ErrBadWorkers indicates Options.Workers was negative.
	ErrBadWorkers = errors.New("maxpoints: Workers must be non-negative")
)

// Options configures MaxCollinearPoints.
//
// Fields:
//   - Workers — number of goroutines sweeping reference points.
//     0 and 1 both mean a plain sequential sweep. Values above the input
//     size are clamped. Parallelism never changes the returned maximum:
//     each reference pass is independent and read-only over the input.
type Options struct {
	Workers int
}

// DefaultOptions returns Options with default settings: Workers=1
// (sequential sweep).
func DefaultOptions() Options {
	return Options{
		Workers: 1,
	}
}
