package advanced

// Working structure for Bowyer-Watson insertion.
//
// Rather than enclosing the input in a finite super triangle, the mesh is
// closed off with "ghost" triangles. Every hull edge a→b has a ghost triangle
// on its outer side whose third vertex is a single symbolic vertex at
// infinity. The ghost's circumcircle is taken to be the open half-plane beyond
// the hull edge, plus the open hull edge itself. With that convention, points
// outside the current hull are inserted exactly like points inside it, and
// removing the ghosts at the end leaves precisely the convex hull. A finite
// super triangle can leave the hull slightly concave when it is removed.

// Vertex index of the symbolic vertex at infinity
const ghostVertex = -1

type meshTriangle struct {
	// Counterclockwise vertices. A ghost has ghostVertex in one slot.
	V [3]int
	// N[i] is the neighbor across the edge V[i]→V[i+1]. Every live triangle has
	// three neighbors, since ghosts close the mesh.
	N    [3]int
	dead bool
}

type directedEdge struct {
	from, to int
}

type mesh struct {
	points []Point
	tris   []meshTriangle
	// Last triangle created, where the next walk starts
	last int
	// Per triangle marks for cavity search. A triangle is in the current cavity
	// iff its mark equals stamp, and has been rejected iff it equals -stamp.
	mark  []int
	stamp int
	exact exactCounter
}

func (t *meshTriangle) ghostSlot() int {
	for k, v := range t.V {
		if v == ghostVertex {
			return k
		}
	}
	return -1
}

func (t *meshTriangle) isGhost() bool {
	return t.ghostSlot() >= 0
}

// Create the mesh from three non-collinear points and the three ghosts around
// them.
func newMesh(points []Point, a, b, c int) *mesh {
	m := &mesh{points: points}
	if orient(points[a], points[b], points[c], &m.exact) == Clockwise {
		b, c = c, b
	}
	m.addTriangle(a, b, c)
	m.addTriangle(b, a, ghostVertex)
	m.addTriangle(c, b, ghostVertex)
	m.addTriangle(a, c, ghostVertex)
	m.link([]int{0, 1, 2, 3})
	m.last = 0
	return m
}

func (m *mesh) addTriangle(a, b, c int) int {
	m.tris = append(m.tris, meshTriangle{V: [3]int{a, b, c}, N: [3]int{-1, -1, -1}})
	m.mark = append(m.mark, 0)
	return len(m.tris) - 1
}

// Fill in neighbor slots that are still unset by matching opposite directed
// edges among the given triangles.
func (m *mesh) link(indexes []int) {
	edges := make(map[directedEdge]int, 3*len(indexes))
	for _, ti := range indexes {
		t := &m.tris[ti]
		for i := 0; i < 3; i++ {
			edges[directedEdge{t.V[i], t.V[CircularIndex(i+1, 3)]}] = ti
		}
	}
	for _, ti := range indexes {
		t := &m.tris[ti]
		for i := 0; i < 3; i++ {
			if t.N[i] >= 0 {
				continue
			}
			twin, ok := edges[directedEdge{t.V[CircularIndex(i+1, 3)], t.V[i]}]
			if !ok {
				fatalf("edge %d→%d of triangle %d has no twin", t.V[i], t.V[CircularIndex(i+1, 3)], ti)
			}
			t.N[i] = twin
		}
	}
}

// Is p strictly inside the circumcircle of the triangle? For ghosts, this is
// the open outer half-plane of the hull edge plus the open hull edge.
func (m *mesh) inCircumcircle(ti int, p Point) bool {
	t := &m.tris[ti]
	if k := t.ghostSlot(); k >= 0 {
		a := m.points[t.V[CircularIndex(k+1, 3)]]
		b := m.points[t.V[CircularIndex(k+2, 3)]]
		switch orient(a, b, p, &m.exact) {
		case CounterClockwise:
			return true
		case Clockwise:
			return false
		}
		return strictlyBetween(a, b, p)
	}
	a, b, c := m.points[t.V[0]], m.points[t.V[1]], m.points[t.V[2]]
	return inCircle(a, b, c, p, &m.exact) > 0
}

// For p collinear with a and b, is it strictly between them?
func strictlyBetween(a, b, p Point) bool {
	if a.X != b.X {
		return (a.X < p.X && p.X < b.X) || (b.X < p.X && p.X < a.X)
	}
	return (a.Y < p.Y && p.Y < b.Y) || (b.Y < p.Y && p.Y < a.Y)
}

// Find a triangle whose circumcircle strictly contains p, by walking from the
// last created triangle. If p coincides with an existing vertex, that vertex
// is returned as dup and no triangle is.
func (m *mesh) findCavitySeed(p Point) (tri int, dup int) {
	t := m.last
	if k := m.tris[t].ghostSlot(); k >= 0 {
		// Step onto the real triangle across the ghost's hull edge
		t = m.tris[t].N[CircularIndex(k+1, 3)]
	}

	budget := len(m.tris) + 3
	for step := 0; step < budget; step++ {
		tri := &m.tris[t]
		next := -1
		for i := 0; i < 3; i++ {
			a, b := m.points[tri.V[i]], m.points[tri.V[CircularIndex(i+1, 3)]]
			if orient(a, b, p, &m.exact) == Clockwise {
				next = tri.N[i]
				break
			}
		}

		if next < 0 {
			// p is in the closed triangle
			for _, v := range tri.V {
				if m.points[v] == p {
					return -1, v
				}
			}
			return t, -1
		}
		if m.tris[next].isGhost() {
			// p is strictly beyond a hull edge, so inside the ghost's circumcircle
			return next, -1
		}
		t = next
	}

	return m.scanForCavitySeed(p)
}

// Exhaustive fallback for findCavitySeed. This is never needed on a valid
// Delaunay mesh, where the walk cannot cycle.
func (m *mesh) scanForCavitySeed(p Point) (tri int, dup int) {
	for ti := range m.tris {
		t := &m.tris[ti]
		if t.dead || t.isGhost() {
			continue
		}
		for _, v := range t.V {
			if m.points[v] == p {
				return -1, v
			}
		}
	}
	for ti := range m.tris {
		if !m.tris[ti].dead && m.inCircumcircle(ti, p) {
			return ti, -1
		}
	}
	fatalf("no triangle's circumcircle contains %v", p)
	return -1, -1
}

// Collect the connected set of triangles whose circumcircle strictly contains
// p, starting from a triangle known to be in it.
func (m *mesh) cavity(start int, p Point) []int {
	m.stamp++
	if !m.inCircumcircle(start, p) {
		fatalf("cavity seed %d does not contain %v in its circumcircle", start, p)
	}
	m.mark[start] = m.stamp

	var cavity []int
	stack := IndexStack{start}
	for !stack.Empty() {
		ti := stack.Pop()
		cavity = append(cavity, ti)
		for _, n := range m.tris[ti].N {
			if m.mark[n] == m.stamp || m.mark[n] == -m.stamp {
				continue
			}
			if m.inCircumcircle(n, p) {
				m.mark[n] = m.stamp
				stack.Push(n)
			} else {
				m.mark[n] = -m.stamp
			}
		}
	}
	return cavity
}

// Insert the point with the given index. Returns the index of the vertex it
// duplicates, or -1 if it was inserted.
func (m *mesh) insert(pi int) int {
	p := m.points[pi]
	start, dup := m.findCavitySeed(p)
	if dup >= 0 {
		return dup
	}

	cavity := m.cavity(start, p)

	// Every edge between a cavity triangle and a non-cavity triangle is on the
	// cavity boundary. The boundary is a simple cycle around p, and each edge
	// becomes the base of a new triangle with apex p.
	type boundaryEdge struct {
		from, to, outside int
	}
	var boundary []boundaryEdge
	for _, ti := range cavity {
		t := &m.tris[ti]
		for i, n := range t.N {
			if m.mark[n] != m.stamp {
				boundary = append(boundary, boundaryEdge{t.V[i], t.V[CircularIndex(i+1, 3)], n})
			}
		}
	}
	for _, ti := range cavity {
		m.tris[ti].dead = true
	}

	created := make([]int, 0, len(boundary))
	for _, e := range boundary {
		if e.from != ghostVertex && e.to != ghostVertex &&
			orient(m.points[e.from], m.points[e.to], p, &m.exact) != CounterClockwise {
			fatalf("cavity of %v is not star shaped at edge %d→%d", p, e.from, e.to)
		}

		ti := m.addTriangle(e.from, e.to, pi)
		m.tris[ti].N[0] = e.outside

		outside := &m.tris[e.outside]
		for k := 0; k < 3; k++ {
			if outside.V[k] == e.to && outside.V[CircularIndex(k+1, 3)] == e.from {
				outside.N[k] = ti
			}
		}
		created = append(created, ti)
	}
	m.link(created)
	m.last = created[len(created)-1]
	return -1
}
