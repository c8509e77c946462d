package sample

import (
	"math/rand"
	"testing"

	"github.com/osuushi/delaunay/advanced"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoints(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	points := Points(r, 1000, 10)
	require.Len(t, points, 1000)
	for _, p := range points {
		assert.True(t, p.X >= 0 && p.X < 10, "x out of range: %v", p)
		assert.True(t, p.Y >= 0 && p.Y < 10, "y out of range: %v", p)
	}

	// Same seed, same points
	again := Points(rand.New(rand.NewSource(1)), 1000, 10)
	assert.Equal(t, points, again)
}

func TestQueryInside(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for _, n := range []int{3, 10, 500} {
		points := Points(r, n, 10)
		tr, err := advanced.Build(points)
		require.NoError(t, err)
		for i := 0; i < 50; i++ {
			q := QueryInside(r, points)
			_, ok := tr.LocateIndex(q)
			assert.True(t, ok, "%v should be inside the hull of %d points", q, n)
		}
	}
}

func TestQueryInside_Trivial(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	assert.Equal(t, advanced.Point{}, QueryInside(r, nil))
	q := QueryInside(r, []advanced.Point{{2, 3}})
	assert.InDelta(t, 2, q.X, 1e-12)
	assert.InDelta(t, 3, q.Y, 1e-12)
}
