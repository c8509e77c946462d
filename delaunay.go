// Delaunay triangulation and point location for Go.
//
// This package builds the Delaunay triangulation of a set of 2D points, and
// then answers which triangle contains an arbitrary query point, or that the
// point lies outside the convex hull of the input.
//
// Predicates are exact, so nearly collinear and nearly cocircular inputs never
// produce an inconsistent triangulation. See the advanced package for the
// underlying structure.
package delaunay

import "github.com/osuushi/delaunay/advanced"

type Point = advanced.Point
type Triangle = advanced.Triangle
type Triangulation = advanced.Triangulation
type DegenerateInputError = advanced.DegenerateInputError
type InvalidPointError = advanced.InvalidPointError
type Option = advanced.Option

var WithLogger = advanced.WithLogger

// Build the Delaunay triangulation of the points.
//
// Fails with a *DegenerateInputError when fewer than three distinct points are
// given or they are all collinear. Identical points are collapsed into the
// first of them; see Triangulation.Duplicates.
func Build(points []Point, opts ...Option) (result *Triangulation, err error) {
	defer func() {
		recoveredErr := advanced.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.Build(points, opts...)
}

// Locate the triangle of the triangulation containing q. ok is false if q is
// outside the convex hull. The returned triangle belongs to the triangulation.
//
// A point on an edge shared by two triangles is reported in whichever of them
// the location walk reaches first. This is stable across repeated queries.
func Locate(triangulation *Triangulation, q Point) (triangle *Triangle, ok bool) {
	return triangulation.Locate(q)
}

func IsDegenerate(err error) bool {
	return advanced.IsDegenerate(err)
}
