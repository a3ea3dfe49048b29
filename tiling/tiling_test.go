package tiling

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubOracle replays a fixed decomposition, standing in for a real
// triangulation library.
type stubOracle struct {
	vertices  [][]int
	neighbors [][]int
	err       error
}

func (s stubOracle) Triangulate([]Point) ([][]int, [][]int, error) {
	return s.vertices, s.neighbors, s.err
}

// assertInvariants checks the properties every freshly constructed tiling
// must satisfy: consistent counts and a canonical, duplicate-free edge list.
func assertInvariants(t *testing.T, til *Tiling) {
	t.Helper()
	assert.Equal(t, til.NPoints(), len(til.Points))
	assert.Equal(t, til.NTiles(), len(til.Vertices))
	assert.Equal(t, til.NTiles(), len(til.Neighbors))
	assert.Equal(t, til.NEdges(), len(til.Edges))
	seen := make(map[[2]int]bool)
	for _, e := range til.Edges {
		assert.Less(t, e[0], e[1], "edge %v not canonically ordered", e)
		assert.False(t, seen[e], "edge %v appears twice", e)
		seen[e] = true
	}
}

// Two triangles over the unit square, sharing the (0, 2) diagonal. The
// full edge list is supplied explicitly.
func twoTriangles(t *testing.T) *Tiling {
	t.Helper()
	til, err := NewFromTiles(unitSquare,
		[][]int{{0, 1, 2}, {0, 2, 3}},
		[][]int{{1, NoTile, NoTile}, {0, NoTile, NoTile}},
		[][2]int{{0, 1}, {1, 2}, {0, 2}, {2, 3}, {0, 3}},
	)
	require.NoError(t, err)
	return til
}

func TestNewFromTiles(t *testing.T) {
	til := twoTriangles(t)
	assertInvariants(t, til)

	assert.Equal(t, 4, til.NPoints())
	assert.Equal(t, 2, til.NTiles())
	assert.Equal(t, 5, til.NEdges())
	// supplied vertex lists are canonicalized to clockwise order
	assert.Equal(t, []int{0, 2, 1}, til.Vertices[0])
	assert.Equal(t, []int{0, 3, 2}, til.Vertices[1])
}

func TestNewFromTilesCanonicalizesEdges(t *testing.T) {
	til, err := NewFromTiles(unitSquare,
		[][]int{{0, 1, 2}},
		nil,
		[][2]int{{2, 0}, {1, 0}},
	)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 2}, {0, 1}}, til.Edges)
	// nil neighbors means no adjacency is known, not an error
	assert.Equal(t, [][]int{nil}, til.Neighbors)
}

func TestNewFromTilesDoesNotAliasInputs(t *testing.T) {
	points := append([]Point(nil), unitSquare...)
	vertices := [][]int{{0, 1, 2}}
	neighbors := [][]int{{NoTile}}
	edges := [][2]int{{0, 1}}
	til, err := NewFromTiles(points, vertices, neighbors, edges)
	require.NoError(t, err)

	points[0] = Point{99, 99}
	vertices[0][0] = 3
	neighbors[0][0] = 0
	edges[0] = [2]int{2, 3}

	assert.Equal(t, Point{0, 0}, til.Points[0])
	assert.Equal(t, []int{0, 2, 1}, til.Vertices[0])
	assert.Equal(t, []int{NoTile}, til.Neighbors[0])
	assert.Equal(t, [][2]int{{0, 1}}, til.Edges)
}

func TestNewFromTilesInvalidInput(t *testing.T) {
	cases := []struct {
		name      string
		points    []Point
		vertices  [][]int
		neighbors [][]int
		edges     [][2]int
	}{
		{
			name:   "no vertices",
			points: unitSquare,
		},
		{
			name:     "point index out of range",
			points:   unitSquare,
			vertices: [][]int{{0, 1, 4}},
		},
		{
			name:     "negative point index",
			points:   unitSquare,
			vertices: [][]int{{0, -1, 2}},
		},
		{
			name:      "neighbor tile out of range",
			points:    unitSquare,
			vertices:  [][]int{{0, 1, 2}},
			neighbors: [][]int{{1}},
		},
		{
			name:      "neighbor list count mismatch",
			points:    unitSquare,
			vertices:  [][]int{{0, 1, 2}},
			neighbors: [][]int{{NoTile}, {NoTile}},
		},
		{
			name:     "degenerate edge",
			points:   unitSquare,
			vertices: [][]int{{0, 1, 2}},
			edges:    [][2]int{{2, 2}},
		},
		{
			name:     "edge endpoint out of range",
			points:   unitSquare,
			vertices: [][]int{{0, 1, 2}},
			edges:    [][2]int{{0, 4}},
		},
		{
			name:     "non-finite coordinate",
			points:   []Point{{0, 0}, {1, math.NaN()}, {1, 1}},
			vertices: [][]int{{0, 1, 2}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewFromTiles(tc.points, tc.vertices, tc.neighbors, tc.edges)
			assert.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)
		})
	}
}

func TestNewDerivesEdges(t *testing.T) {
	oracle := stubOracle{
		vertices:  [][]int{{0, 1, 2}, {0, 2, 3}},
		neighbors: [][]int{{1, NoTile, NoTile}, {0, NoTile, NoTile}},
	}
	til, err := New(unitSquare, oracle)
	require.NoError(t, err)
	assertInvariants(t, til)

	// Tiles come out clockwise as {0,2,1} and {0,3,2}; walking those
	// cycles and keeping only ascending pairs leaves the shared diagonal
	// traversal (0,2) from the first tile and the boundary traversal
	// (0,3) from the second.
	assert.Equal(t, [][2]int{{0, 2}, {0, 3}}, til.Edges)
}

func TestNewReportsOracleError(t *testing.T) {
	boom := errors.New("collinear input")
	_, err := New(unitSquare, stubOracle{err: boom})
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
}

func TestNewRejectsBadOracleOutput(t *testing.T) {
	_, err := New(unitSquare, stubOracle{
		vertices:  [][]int{{0, 1, 7}},
		neighbors: [][]int{{NoTile, NoTile, NoTile}},
	})
	assert.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)
}

func TestEdgeSegments(t *testing.T) {
	til := twoTriangles(t)
	segments := til.EdgeSegments()
	require.Len(t, segments, 5)
	assert.Equal(t, [2]Point{{0, 0}, {1, 0}}, segments[0])
	assert.Equal(t, [2]Point{{0, 0}, {1, 1}}, segments[2])
}

func TestTilesByCardinality(t *testing.T) {
	til, err := NewFromTiles(unitSquare,
		[][]int{{0, 1, 2}, {0, 1, 2, 3}, {}},
		nil,
		nil,
	)
	require.NoError(t, err)

	byCardinality := til.TilesByCardinality()
	require.Len(t, byCardinality, 2)
	require.Len(t, byCardinality[3], 1)
	require.Len(t, byCardinality[4], 1)
	// polygons carry coordinates in the stored clockwise order
	assert.Equal(t, []Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}}, byCardinality[4][0])
}
