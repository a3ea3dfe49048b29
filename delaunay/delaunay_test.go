package delaunay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmohn/TEMimage/tiling"
)

func TestTriangulateQuad(t *testing.T) {
	points := []tiling.Point{
		{X: 0, Y: 0},
		{X: 2, Y: 0},
		{X: 2, Y: 1},
		{X: 0, Y: 2},
	}

	vertices, neighbors, err := Triangulator{}.Triangulate(points)
	require.NoError(t, err)
	require.Len(t, vertices, 2)
	require.Len(t, neighbors, 2)

	for ti, verts := range vertices {
		require.Len(t, verts, 3)
		require.Len(t, neighbors[ti], 3)

		// exactly one neighbor: the other triangle, positioned opposite
		// the vertex the two triangles don't share
		other := 1 - ti
		shared := 0
		for k, n := range neighbors[ti] {
			if n == tiling.NoTile {
				continue
			}
			shared++
			assert.Equal(t, other, n)
			assert.NotContains(t, vertices[other], verts[k],
				"neighbor %d of triangle %d must sit across the edge opposite vertex %d", k, ti, verts[k])
		}
		assert.Equal(t, 1, shared)
	}

	// both triangles together cover all four points
	covered := make(map[int]bool)
	for _, verts := range vertices {
		for _, v := range verts {
			covered[v] = true
		}
	}
	assert.Len(t, covered, 4)
}

func TestTriangulateTooFewPoints(t *testing.T) {
	_, _, err := Triangulator{}.Triangulate([]tiling.Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	assert.Error(t, err)
}
