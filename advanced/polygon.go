package advanced

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Is the segment strictly left of the point? For an upward segment, this means
// the point is on its right hand side.
func (s Segment) IsLeftOf(p Point) bool {
	return Orient(s.Start, s.End, p) == Clockwise
}

// Is the segment strictly right of the point?
func (s Segment) IsRightOf(p Point) bool {
	return Orient(s.Start, s.End, p) == CounterClockwise
}

// Both ends of the segment lie on opposite sides of the horizontal through p
func (s Segment) straddles(p Point) bool {
	return s.Start.Below(p) != s.End.Below(p)
}

// Even odd rule point-in-polygon. This is provided primarily for testing the
// point locator against an independent oracle. Output is not defined for
// points exactly on the boundary.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Crossing count helper for even odd rule
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]

		segment := Segment{vertex, nextVertex}
		if segment.straddles(p) {
			// Orient the segment upward so "right of" is unambiguous
			if nextVertex.Below(vertex) {
				segment = Segment{nextVertex, vertex}
			}
			if segment.IsRightOf(p) {
				crossingCount++
			}
		}
	}
	return crossingCount
}

// Unsigned area of the polygon.
func (poly Polygon) Area() float64 {
	if len(poly.Points) < 3 {
		return 0
	}
	return math.Abs(planar.Area(poly.Ring()))
}

// Closed orb ring with the polygon's vertices.
func (poly Polygon) Ring() orb.Ring {
	ring := make(orb.Ring, 0, len(poly.Points)+1)
	for _, p := range poly.Points {
		ring = append(ring, orb.Point{p.X, p.Y})
	}
	if len(poly.Points) > 0 {
		ring = append(ring, ring[0])
	}
	return ring
}

// Signed area of the triangle formed by the three points. Positive when they
// are counterclockwise.
func SignedArea(a, b, c Point) float64 {
	return ((b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)) / 2
}
