package advanced

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"
)

// A Delaunay triangulation of a fixed point set. A Triangulation is never
// modified after Build returns it, so any number of goroutines may query it
// concurrently.
type Triangulation struct {
	// The input points, in input order. Triangles and Hull index into this.
	Points []Point
	// Counterclockwise triangles covering the convex hull of Points.
	Triangles []Triangle
	// Counterclockwise hull vertices, starting at the lowest one.
	Hull []int
	// Input index of each skipped duplicate point, mapped to the index of the
	// identical point that was inserted.
	Duplicates map[int]int
	// How many predicate evaluations were close enough to zero that they had
	// to be decided with exact arithmetic.
	NearDegenerate int

	// neighbors[t][i] is the triangle across edge i of triangle t, where edge 0
	// is A→B, edge 1 is B→C and edge 2 is C→A. Hull edges have -1.
	neighbors [][3]int
	// Where location walks start
	seed int
}

// Vertex index of corner i (0, 1 or 2) of the triangle.
func (t Triangle) Vertex(i int) int {
	switch CircularIndex(i, 3) {
	case 0:
		return t.A
	case 1:
		return t.B
	}
	return t.C
}

// Triangle across the given edge of triangle ti, or -1 on the hull.
func (tr *Triangulation) Neighbor(ti, edge int) int {
	return tr.neighbors[ti][CircularIndex(edge, 3)]
}

// Corner coordinates of triangle ti.
func (tr *Triangulation) Vertices(ti int) [3]Point {
	t := tr.Triangles[ti]
	return [3]Point{tr.Points[t.A], tr.Points[t.B], tr.Points[t.C]}
}

// Total area of all triangles.
func (tr *Triangulation) Area() float64 {
	var area float64
	for ti := range tr.Triangles {
		v := tr.Vertices(ti)
		area += SignedArea(v[0], v[1], v[2])
	}
	return area
}

func (tr *Triangulation) HullPolygon() Polygon {
	points := make([]Point, len(tr.Hull))
	for i, v := range tr.Hull {
		points[i] = tr.Points[v]
	}
	return Polygon{Points: points}
}

// Centre and radius of the circumcircle of triangle ti.
func (tr *Triangulation) Circumcircle(ti int) (Point, float64) {
	v := tr.Vertices(ti)
	a := r2.Vec{X: v[0].X, Y: v[0].Y}
	b := r2.Sub(r2.Vec{X: v[1].X, Y: v[1].Y}, a)
	c := r2.Sub(r2.Vec{X: v[2].X, Y: v[2].Y}, a)

	d := 2 * r2.Cross(b, c)
	bb, cc := r2.Norm2(b), r2.Norm2(c)
	offset := r2.Vec{
		X: (c.Y*bb - b.Y*cc) / d,
		Y: (b.X*cc - c.X*bb) / d,
	}
	center := r2.Add(a, offset)
	return Point{center.X, center.Y}, r2.Norm(offset)
}

// The triangle whose centroid is nearest the centre of the points' bounding
// box. Ties go to the lowest index.
func (tr *Triangulation) centralTriangle() int {
	multiPoint := make(orb.MultiPoint, len(tr.Points))
	for i, p := range tr.Points {
		multiPoint[i] = orb.Point{p.X, p.Y}
	}
	center := multiPoint.Bound().Center()

	best, bestDistance := 0, math.Inf(1)
	for ti := range tr.Triangles {
		v := tr.Vertices(ti)
		dx := (v[0].X+v[1].X+v[2].X)/3 - center.X()
		dy := (v[0].Y+v[1].Y+v[2].Y)/3 - center.Y()
		if distance := dx*dx + dy*dy; distance < bestDistance {
			best, bestDistance = ti, distance
		}
	}
	return best
}

// Check the structural and Delaunay invariants of the triangulation. This is
// quadratic in the number of points, so it is meant for tests and debugging.
func (tr *Triangulation) Validate() error {
	if len(tr.neighbors) != len(tr.Triangles) {
		return errors.Errorf("%d neighbor entries for %d triangles", len(tr.neighbors), len(tr.Triangles))
	}

	for ti, t := range tr.Triangles {
		v := tr.Vertices(ti)
		if Orient(v[0], v[1], v[2]) != CounterClockwise {
			return errors.Errorf("triangle %d %v is not counterclockwise", ti, t)
		}

		for edge := 0; edge < 3; edge++ {
			n := tr.Neighbor(ti, edge)
			if n < 0 {
				continue
			}
			from, to := t.Vertex(edge), t.Vertex(edge+1)
			if !tr.hasEdge(n, to, from) {
				return errors.Errorf("triangle %d does not share edge %d→%d with neighbor %d", ti, from, to, n)
			}
			if tr.Neighbor(n, tr.edgeIndex(n, to)) != ti {
				return errors.Errorf("neighbors %d and %d are not symmetric", ti, n)
			}
		}

		for pi, p := range tr.Points {
			if t.Has(pi) {
				continue
			}
			if InCircle(v[0], v[1], v[2], p) > 0 {
				return errors.Errorf("point %d %v is inside the circumcircle of triangle %d %v", pi, p, ti, t)
			}
		}
	}

	hullArea := tr.HullPolygon().Area()
	if area := tr.Area(); math.Abs(area-hullArea) > Tolerance*math.Max(1, hullArea) {
		return errors.Errorf("triangle area %g does not match hull area %g", area, hullArea)
	}
	return nil
}

// Does triangle ti contain the directed edge from→to?
func (tr *Triangulation) hasEdge(ti, from, to int) bool {
	i := tr.edgeIndex(ti, from)
	return i >= 0 && tr.Triangles[ti].Vertex(i+1) == to
}

// Index of the edge of triangle ti starting at vertex v, or -1.
func (tr *Triangulation) edgeIndex(ti, v int) int {
	t := tr.Triangles[ti]
	for i := 0; i < 3; i++ {
		if t.Vertex(i) == v {
			return i
		}
	}
	return -1
}
