package advanced

import (
	"embed"
	"log"
	"math"
	"math/rand"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs point sets. This is not a full
// (or even correct) svg parser. It collects the centre of every circle in the
// document, in document order. If anything goes wrong, it panics.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	circles := rootEl.FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}

	points := make([]Point, 0, len(circles))
	for _, circleEl := range circles {
		x, err := strconv.ParseFloat(circleEl.Attributes["cx"], 64)
		if err != nil {
			log.Fatalf("Invalid cx value %q: %v", circleEl.Attributes["cx"], err)
		}
		y, err := strconv.ParseFloat(circleEl.Attributes["cy"], 64)
		if err != nil {
			log.Fatalf("Invalid cy value %q: %v", circleEl.Attributes["cy"], err)
		}
		points = append(points, Point{x, y})
	}
	return points
}

var fixtureNames = []string{"grid", "ring", "clusters", "hull_collinear"}

// Some ad hoc point sets

func UnitSquare() []Point {
	return []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
}

func RandomPoints(r *rand.Rand, n int, space float64) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{r.Float64() * space, r.Float64() * space}
	}
	return points
}

// Points on a circle, which makes every quadruple cocircular up to rounding.
func CirclePoints(n int, radius float64) []Point {
	points := make([]Point, n)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = Point{radius * math.Cos(angle), radius * math.Sin(angle)}
	}
	return points
}

// Integer lattice. Every unit square is cocircular, so this exercises ties.
func Lattice(w, h int) []Point {
	var points []Point
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			points = append(points, Point{float64(x), float64(y)})
		}
	}
	return points
}

// A random convex combination of the points, which is always inside their
// hull.
func RandomInside(r *rand.Rand, points []Point) Point {
	var sum, x, y float64
	weights := make([]float64, len(points))
	for i := range weights {
		weights[i] = r.Float64()
		sum += weights[i]
	}
	for i, p := range points {
		x += weights[i] / sum * p.X
		y += weights[i] / sum * p.Y
	}
	return Point{x, y}
}
