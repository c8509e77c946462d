package advanced

import (
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate_UnitSquare(t *testing.T) {
	tr, err := Build(UnitSquare())
	require.NoError(t, err)

	t.Run("center is on the diagonal", func(t *testing.T) {
		q := Point{0.5, 0.5}
		tri, ok := tr.Locate(q)
		require.True(t, ok)
		require.NotNil(t, tri)
		ti, _ := tr.LocateIndex(q)
		assert.True(t, tr.Contains(ti, q))
		assert.Same(t, &tr.Triangles[ti], tri)

		// The tie is always broken the same way
		for i := 0; i < 10; i++ {
			again, ok := tr.Locate(q)
			require.True(t, ok)
			assert.Same(t, tri, again)
		}
	})

	t.Run("each half", func(t *testing.T) {
		low, ok := tr.LocateIndex(Point{0.9, 0.1})
		require.True(t, ok)
		high, ok := tr.LocateIndex(Point{0.1, 0.9})
		require.True(t, ok)
		assert.NotEqual(t, low, high)
	})

	t.Run("corners and edges are inside", func(t *testing.T) {
		for _, q := range []Point{{0, 0}, {1, 1}, {0.5, 0}, {1, 0.25}, {0, 1}} {
			ti, ok := tr.LocateIndex(q)
			require.True(t, ok, "%v should be located", q)
			assert.True(t, tr.Contains(ti, q))
		}
	})

	t.Run("outside", func(t *testing.T) {
		for _, q := range []Point{{-0.1, 0.5}, {2, 2}, {0.5, -1e-12}, {1 + 1e-12, 1}} {
			tri, ok := tr.Locate(q)
			assert.False(t, ok, "%v should be outside", q)
			assert.Nil(t, tri)
		}
	})
}

func TestLocate_SingleTriangle(t *testing.T) {
	tr, err := Build([]Point{{0, 0}, {2, 0}, {1, 2}})
	require.NoError(t, err)

	tri, ok := tr.Locate(Point{1, 0.5})
	require.True(t, ok)
	assert.ElementsMatch(t, []int{0, 1, 2}, tri.Vertices())

	tri, ok = tr.Locate(Point{5, 5})
	assert.False(t, ok)
	assert.Nil(t, tri)
}

func TestLocate_Coverage(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for _, name := range fixtureNames {
		t.Run(name, func(t *testing.T) {
			points := LoadFixture(name)
			tr, err := Build(points)
			require.NoError(t, err)
			for i := 0; i < 200; i++ {
				q := RandomInside(r, points)
				ti, ok := tr.LocateIndex(q)
				require.True(t, ok, "%v is a convex combination of the input", q)
				assert.True(t, tr.Contains(ti, q))
			}
			// Every input point is inside the closed hull
			for _, p := range points {
				_, ok := tr.LocateIndex(p)
				assert.True(t, ok, "input point %v", p)
			}
		})
	}
}

func TestLocate_Exclusion(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	points := RandomPoints(r, 150, 10)
	tr, err := Build(points)
	require.NoError(t, err)
	hull := tr.HullPolygon()
	ring := hull.Ring()

	for i := 0; i < 2000; i++ {
		q := Point{r.Float64()*16 - 3, r.Float64()*16 - 3}
		_, ok := tr.LocateIndex(q)
		assert.Equal(t, hull.ContainsPointByEvenOdd(q), ok, "query %v", q)
		assert.Equal(t, planar.RingContains(ring, orb.Point{q.X, q.Y}), ok, "query %v", q)
	}
}

func TestLocate_MatchesExhaustive(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	points := RandomPoints(r, 400, 1)
	tr, err := Build(points)
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		q := Point{r.Float64()*1.2 - 0.1, r.Float64()*1.2 - 0.1}
		walked, walkOk := tr.LocateIndex(q)
		scanned, scanOk := tr.LocateExhaustive(q)
		require.Equal(t, scanOk, walkOk, "query %v", q)
		if walkOk {
			// Random queries are never on an edge, so the triangle is unique
			assert.Equal(t, scanned, walked, "query %v", q)
		}
	}
}

func TestLocateFrom_AnyStart(t *testing.T) {
	points := LoadFixture("clusters")
	tr, err := Build(points)
	require.NoError(t, err)

	q := Point{47.123, 41.987}
	expected, ok := tr.LocateIndex(q)
	require.True(t, ok)
	for start := range tr.Triangles {
		actual, ok := tr.LocateFrom(q, start)
		require.True(t, ok)
		assert.Equal(t, expected, actual, "start %d", start)
	}

	// Out of range starts fall back to the default
	actual, ok := tr.LocateFrom(q, -5)
	require.True(t, ok)
	assert.Equal(t, expected, actual)
}

func TestLocate_LatticeTies(t *testing.T) {
	points := Lattice(6, 6)
	tr, err := Build(points)
	require.NoError(t, err)

	// Every query here is a vertex or on an edge
	for y := 0.0; y <= 5; y += 0.5 {
		for x := 0.0; x <= 5; x += 0.5 {
			q := Point{x, y}
			first, ok := tr.LocateIndex(q)
			require.True(t, ok, "%v", q)
			assert.True(t, tr.Contains(first, q))
			second, _ := tr.LocateIndex(q)
			assert.Equal(t, first, second)
		}
	}
}

func TestWalk(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	points := RandomPoints(r, 300, 1)
	tr, err := Build(points)
	require.NoError(t, err)

	q := Point{0.01, 0.99}
	path, ok := tr.Walk(q)
	require.NotEmpty(t, path)
	assert.Equal(t, tr.seed, path[0])
	ti, expectedOk := tr.LocateIndex(q)
	assert.Equal(t, expectedOk, ok)
	if ok {
		assert.Equal(t, ti, path[len(path)-1])
	}
	// Consecutive triangles on the path are neighbors
	for i := 1; i < len(path); i++ {
		isNeighbor := false
		for edge := 0; edge < 3; edge++ {
			if tr.Neighbor(path[i-1], edge) == path[i] {
				isNeighbor = true
			}
		}
		assert.True(t, isNeighbor, "step %d of the walk is not to a neighbor", i)
	}
	// The walk visits far fewer triangles than a scan
	assert.Less(t, len(path), len(tr.Triangles)/2)
}

func TestLocate_Concurrent(t *testing.T) {
	r := rand.New(rand.NewSource(8))
	points := RandomPoints(r, 500, 100)
	tr, err := Build(points)
	require.NoError(t, err)

	queries := make([]Point, 200)
	expected := make([]int, len(queries))
	for i := range queries {
		queries[i] = Point{r.Float64()*120 - 10, r.Float64()*120 - 10}
		expected[i], _ = tr.LocateIndex(queries[i])
	}

	var wg sync.WaitGroup
	results := make([][]int, 8)
	for g := range results {
		g := g
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[g] = make([]int, len(queries))
			for i, q := range queries {
				results[g][i], _ = tr.LocateIndex(q)
			}
		}()
	}
	wg.Wait()

	for _, result := range results {
		assert.Equal(t, expected, result)
	}
}

func TestLocate_NonFiniteQuery(t *testing.T) {
	tr, err := Build(UnitSquare())
	require.NoError(t, err)
	_, ok := tr.LocateIndex(Point{0.5, math.NaN()})
	assert.False(t, ok)
}
