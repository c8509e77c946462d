package advanced

// Point location by directed walk.
//
// Starting from some triangle, test the query point against the triangle's
// edges in A→B, B→C, C→A order. The first edge that has the point strictly on
// its outer side is crossed into the neighboring triangle. If that edge is on
// the hull, the point is outside the hull, since the hull is convex. If no edge
// has the point outside, the triangle contains it.
//
// On a Delaunay triangulation this walk cannot cycle, whatever edge is chosen
// at each step (Edelsbrunner 1990), and it visits O(√n) triangles on average
// for uniformly distributed points.
//
// Ties: a point on an edge or vertex is never strictly outside the triangle
// being visited, so it is contained by the first triangle the walk reaches
// whose closed region contains it. The seed, the edge order and the predicates
// are all deterministic, so the same query always yields the same triangle.

// Locate the triangle containing q. The triangle is borrowed from
// tr.Triangles and must not be modified. ok is false when q is outside the
// convex hull.
func (tr *Triangulation) Locate(q Point) (triangle *Triangle, ok bool) {
	ti, ok := tr.LocateIndex(q)
	if !ok {
		return nil, false
	}
	return &tr.Triangles[ti], true
}

// Like Locate, but returns the index of the triangle in tr.Triangles.
func (tr *Triangulation) LocateIndex(q Point) (int, bool) {
	return tr.LocateFrom(q, tr.seed)
}

// Like LocateIndex, but starts walking from the given triangle. Starting near
// the answer, e.g. from the result of a previous nearby query, shortens the
// walk. The result does not depend on the start, except for ties.
func (tr *Triangulation) LocateFrom(q Point, start int) (int, bool) {
	ti, ok, _ := tr.walk(q, start, false)
	return ti, ok
}

// Walk returns the triangles visited while locating q from the default start,
// ending with the containing triangle if there is one.
func (tr *Triangulation) Walk(q Point) (path []int, ok bool) {
	_, ok, path = tr.walk(q, tr.seed, true)
	return path, ok
}

func (tr *Triangulation) walk(q Point, start int, record bool) (int, bool, []int) {
	if len(tr.Triangles) == 0 || !q.IsFinite() {
		return -1, false, nil
	}
	if start < 0 || start >= len(tr.Triangles) {
		start = tr.seed
	}

	var path []int
	t := start
	budget := len(tr.Triangles) + 3
	for step := 0; step < budget; step++ {
		if record {
			path = append(path, t)
		}

		next, exited := tr.step(t, q)
		if exited {
			return -1, false, path
		}
		if next < 0 {
			return t, true, path
		}
		t = next
	}

	// Only reachable on a triangulation that is not Delaunay
	ti, ok := tr.LocateExhaustive(q)
	return ti, ok, path
}

// One step of the walk. Returns the next triangle, or -1 if triangle t
// contains q. exited is set if q is strictly beyond a hull edge of t.
func (tr *Triangulation) step(t int, q Point) (next int, exited bool) {
	v := tr.Vertices(t)
	for i := 0; i < 3; i++ {
		if (Segment{v[i], v[CircularIndex(i+1, 3)]}).IsLeftOf(q) {
			n := tr.neighbors[t][i]
			return n, n < 0
		}
	}
	return -1, false
}

// Test every triangle in index order, and return the first whose closed region
// contains q. This is the O(n) reference the walk is checked against.
func (tr *Triangulation) LocateExhaustive(q Point) (int, bool) {
	for ti := range tr.Triangles {
		if tr.Contains(ti, q) {
			return ti, true
		}
	}
	return -1, false
}

// Does the closed region of triangle ti contain q?
func (tr *Triangulation) Contains(ti int, q Point) bool {
	v := tr.Vertices(ti)
	for i := 0; i < 3; i++ {
		if (Segment{v[i], v[CircularIndex(i+1, 3)]}).IsLeftOf(q) {
			return false
		}
	}
	return true
}
