package advanced

import (
	"fmt"

	"github.com/pkg/errors"
)

// Why an input could not be triangulated.
type DegenerateReason string

const (
	TooFewPoints   DegenerateReason = "fewer than 3 points"
	TooFewDistinct DegenerateReason = "fewer than 3 distinct points"
	AllCollinear   DegenerateReason = "all points are collinear"
)

// Returned by Build when no triangle can be formed from the input. No partial
// triangulation accompanies it.
type DegenerateInputError struct {
	Reason DegenerateReason
	// Number of points supplied, and how many of them were distinct
	Count, Distinct int
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("degenerate input: %s (%d points, %d distinct)", e.Reason, e.Count, e.Distinct)
}

// Returned by Build when a coordinate is NaN or infinite.
type InvalidPointError struct {
	Index int
	Point Point
}

func (e *InvalidPointError) Error() string {
	return fmt.Sprintf("point %d is not finite: %v", e.Index, e.Point)
}

func IsDegenerate(err error) bool {
	var degenerate *DegenerateInputError
	return errors.As(err, &degenerate)
}
