package advanced

import "fmt"

type Point struct {
	X float64
	Y float64
}

// Triangles refer to points by their index in the input sequence, so that
// callers can map results back onto their own data. Vertices are always stored
// counterclockwise.
type Triangle struct {
	A, B, C int
}

// A directed segment between two points. Orientation predicates treat it as
// the infinite line through Start and End.
type Segment struct {
	Start Point
	End   Point
}

type Polygon struct {
	Points []Point
}

// Stack of triangle or vertex indices, used for depth first traversals of the
// mesh.
type IndexStack []int

type IndexSet map[int]struct{}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (t Triangle) String() string {
	return fmt.Sprintf("△[%d %d %d]", t.A, t.B, t.C)
}

// Vertex indices in counterclockwise order.
func (t Triangle) Vertices() [3]int {
	return [3]int{t.A, t.B, t.C}
}

// Does the triangle use the given vertex index?
func (t Triangle) Has(v int) bool {
	return t.A == v || t.B == v || t.C == v
}
