package advanced

import "math"

// Relative tolerance for comparing accumulated areas. Predicates never use
// it; they are exact.
const Tolerance = 1e-9

// If two points have the same Y value, the one with the smaller X value is
// "lower". This gives every point set a unique lowest point, which is where the
// hull walk starts.
func (p Point) Below(otherPoint Point) bool {
	if p.Y == otherPoint.Y {
		return p.X < otherPoint.X
	}
	return p.Y < otherPoint.Y
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Treat an array as a circular buffer. Unlike the raw modulo operator, this
// only gives non-negative values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s *IndexStack) Push(i int) {
	*s = append(*s, i)
}

// Pop returns -1 on an empty stack.
func (s *IndexStack) Pop() int {
	if len(*s) == 0 {
		return -1
	}
	i := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return i
}

func (s *IndexStack) Empty() bool {
	return len(*s) == 0
}

func (set IndexSet) Add(i int) {
	set[i] = struct{}{}
}

func (set IndexSet) Contains(i int) bool {
	_, ok := set[i]
	return ok
}
