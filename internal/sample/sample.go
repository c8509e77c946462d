// Random inputs for demos and benchmarks.
package sample

import (
	"math/rand"

	"github.com/osuushi/delaunay/advanced"
	"gonum.org/v1/gonum/floats"
)

// n points uniform in [0, space)².
func Points(r *rand.Rand, n int, space float64) []advanced.Point {
	points := make([]advanced.Point, n)
	for i := range points {
		points[i] = advanced.Point{X: r.Float64() * space, Y: r.Float64() * space}
	}
	return points
}

// A random convex combination of the points. It is inside their convex hull
// up to rounding, and tends towards the centroid as the number of points
// grows.
func QueryInside(r *rand.Rand, points []advanced.Point) advanced.Point {
	if len(points) == 0 {
		return advanced.Point{}
	}
	weights := make([]float64, len(points))
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		weights[i] = r.Float64()
		xs[i] = p.X
		ys[i] = p.Y
	}
	sum := floats.Sum(weights)
	if sum == 0 {
		return points[0]
	}
	floats.Scale(1/sum, weights)
	return advanced.Point{X: floats.Dot(weights, xs), Y: floats.Dot(weights, ys)}
}
