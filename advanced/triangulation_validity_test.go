package advanced

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"testing"

	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. Every distinct input point is a vertex of some triangle.
// 2. Every triangle is counterclockwise, neighbors agree, and no point is
//    strictly inside any circumcircle (Validate). The circumcircle test is
//    repeated here in exact arithmetic, so a faulty float filter in InCircle
//    cannot vouch for itself.
// 3. The sum of the areas of all triangles equals the area of the hull.
// 4. There are 2n - h - 2 triangles for n vertices, h of them on the hull.
func AssertValidTriangulation(t *testing.T, points []Point, tr *Triangulation) {
	t.Helper()
	require.NotNil(t, tr)
	require.NoError(t, tr.Validate())

	for ti, tri := range tr.Triangles {
		v := tr.Vertices(ti)
		for pi, p := range tr.Points {
			if tri.Has(pi) {
				continue
			}
			require.LessOrEqual(t, inCircleExact(v[0], v[1], v[2], p), 0,
				"point %d %v is inside the circumcircle of triangle %d %v", pi, p, ti, tri)
		}
	}

	used := make(IndexSet)
	for _, tri := range tr.Triangles {
		used.Add(tri.A)
		used.Add(tri.B)
		used.Add(tri.C)
	}
	for i := range points {
		if _, isDuplicate := tr.Duplicates[i]; isDuplicate {
			require.False(t, used.Contains(i), "duplicate point %d is used by a triangle", i)
			continue
		}
		require.True(t, used.Contains(i), "point %d %v is not a vertex of any triangle", i, points[i])
	}

	hullArea := math.Abs(planar.Area(tr.HullPolygon().Ring()))
	require.InDelta(t, hullArea, tr.Area(), 1e-9*math.Max(1, hullArea), "sum of triangle areas must equal hull area")

	n := len(points) - len(tr.Duplicates)
	require.Len(t, tr.Triangles, 2*n-len(tr.Hull)-2)
}
