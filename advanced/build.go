package advanced

import (
	"io"
	"log/slog"
)

type buildConfig struct {
	logger *slog.Logger
}

type Option func(*buildConfig)

// Log build statistics and numerical warnings to the given logger. By default,
// nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *buildConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Build the Delaunay triangulation of the points by Bowyer-Watson insertion.
//
// Points are inserted in input order, after the first three non-collinear
// points, which seed the mesh. A point identical to one already inserted is
// skipped and recorded in Triangulation.Duplicates.
//
// Returns a *DegenerateInputError if no triangle can be formed, and an
// *InvalidPointError if any coordinate is not finite.
func Build(points []Point, opts ...Option) (*Triangulation, error) {
	config := buildConfig{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&config)
	}

	for i, p := range points {
		if !p.IsFinite() {
			return nil, &InvalidPointError{Index: i, Point: p}
		}
	}

	distinct := countDistinct(points)
	if len(points) < 3 {
		return nil, &DegenerateInputError{Reason: TooFewPoints, Count: len(points), Distinct: distinct}
	}
	if distinct < 3 {
		return nil, &DegenerateInputError{Reason: TooFewDistinct, Count: len(points), Distinct: distinct}
	}

	a, b, c, ok := findSeedTriangle(points)
	if !ok {
		return nil, &DegenerateInputError{Reason: AllCollinear, Count: len(points), Distinct: distinct}
	}

	// The caller's slice is copied, since the triangulation must not change
	// under the caller's feet.
	owned := make([]Point, len(points))
	copy(owned, points)

	m := newMesh(owned, a, b, c)
	duplicates := make(map[int]int)
	for i := range owned {
		if i == a || i == b || i == c {
			continue
		}
		if dup := m.insert(i); dup >= 0 {
			duplicates[i] = dup
		}
	}

	t := m.triangulation()
	t.Duplicates = duplicates
	t.NearDegenerate = m.exact.count

	config.logger.Debug("delaunay.build",
		"points", len(owned),
		"triangles", len(t.Triangles),
		"hull", len(t.Hull),
		"duplicates", len(duplicates),
	)
	if t.NearDegenerate > 0 {
		config.logger.Warn("delaunay.near_degenerate",
			"exact_evaluations", t.NearDegenerate,
		)
	}
	return t, nil
}

func countDistinct(points []Point) int {
	seen := make(map[Point]struct{}, len(points))
	for _, p := range points {
		seen[p] = struct{}{}
	}
	return len(seen)
}

// First point, first point different from it, and first point not collinear
// with both.
func findSeedTriangle(points []Point) (a, b, c int, ok bool) {
	a, b = 0, -1
	for i := 1; i < len(points); i++ {
		if points[i] != points[a] {
			b = i
			break
		}
	}
	if b < 0 {
		return 0, 0, 0, false
	}
	for i := b + 1; i < len(points); i++ {
		if Orient(points[a], points[b], points[i]) != Collinear {
			return a, b, i, true
		}
	}
	return 0, 0, 0, false
}

// Drop the ghosts and dead triangles and freeze the result.
func (m *mesh) triangulation() *Triangulation {
	newIndex := make([]int, len(m.tris))
	var triangles []Triangle
	for ti := range m.tris {
		t := &m.tris[ti]
		if t.dead || t.isGhost() {
			newIndex[ti] = -1
			continue
		}
		newIndex[ti] = len(triangles)
		triangles = append(triangles, Triangle{t.V[0], t.V[1], t.V[2]})
	}

	neighbors := make([][3]int, len(triangles))
	hullNext := make(map[int]int)
	for ti := range m.tris {
		t := &m.tris[ti]
		if t.dead {
			continue
		}
		if k := t.ghostSlot(); k >= 0 {
			// The ghost's edge runs clockwise around the hull
			from := t.V[CircularIndex(k+1, 3)]
			to := t.V[CircularIndex(k+2, 3)]
			hullNext[to] = from
			continue
		}
		for i, n := range t.N {
			neighbors[newIndex[ti]][i] = newIndex[n]
		}
	}

	result := &Triangulation{
		Points:    m.points,
		Triangles: triangles,
		neighbors: neighbors,
		Hull:      orderHull(m.points, hullNext),
	}
	result.seed = result.centralTriangle()
	return result
}

// Counterclockwise hull cycle starting from the lowest hull vertex.
func orderHull(points []Point, next map[int]int) []int {
	start := -1
	for v := range next {
		if start < 0 || points[v].Below(points[start]) {
			start = v
		}
	}
	hull := make([]int, 0, len(next))
	for v := start; ; {
		hull = append(hull, v)
		v = next[v]
		if v == start {
			break
		}
		if len(hull) > len(next) {
			fatalf("hull does not close")
		}
	}
	return hull
}
