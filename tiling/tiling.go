// Package tiling represents subdivisions of the 2D plane into polygonal
// tiles. By default a tiling is built from a Delaunay triangulation of the
// given points; alternatively, tiles and adjacency can be supplied
// explicitly. Every tiling can produce its dual graph (mapping tiles to
// centroid points and points to tiles), and triangulated tilings support
// flipping the shared edge of two adjacent triangles.
//
// Tilings are plain index arenas: tiles reference points and neighbor tiles
// by integer index only, never by pointer. A Tiling is not safe for
// concurrent use; Flip mutates it in place.
package tiling

import (
	"math"

	"github.com/pkg/errors"
)

// NoTile marks a missing neighbor, i.e. a tile edge with nothing on the
// other side.
const NoTile = -1

// Point is a 2D coordinate. A point's identity is its index in a Tiling's
// point array; coordinates are never mutated after construction.
type Point struct {
	X, Y float64
}

// Triangulator produces an initial triangle decomposition of a point set.
// vertices[t] holds the three point indices of triangle t, and
// neighbors[t][k] is the triangle across the edge opposite vertex k, or
// NoTile on the hull. The tiling package does not validate that the
// decomposition is geometrically correct; it trusts its oracle.
type Triangulator interface {
	Triangulate(points []Point) (vertices, neighbors [][]int, err error)
}

// Tiling is a planar subdivision into polygonal tiles sharing points and
// edges.
type Tiling struct {
	// Points is the coordinate array all indices below refer to.
	Points []Point
	// Vertices holds each tile's boundary as point indices, always stored
	// in clockwise order.
	Vertices [][]int
	// Neighbors names, per tile, the tiles adjacent across its edges, with
	// NoTile for open boundary sides. General tiles may record fewer
	// neighbors than they have vertices.
	Neighbors [][]int
	// Edges is the deduplicated set of undirected edges, each stored with
	// the lower point index first.
	Edges [][2]int
}

func (t *Tiling) NPoints() int { return len(t.Points) }
func (t *Tiling) NTiles() int  { return len(t.Vertices) }
func (t *Tiling) NEdges() int  { return len(t.Edges) }

// New builds a triangulated tiling of points, delegating the triangulation
// itself to tr. Every triangle is clockwise-ordered and the global edge
// list is derived from the tile boundaries.
func New(points []Point, tr Triangulator) (*Tiling, error) {
	if err := checkPoints(points); err != nil {
		return nil, err
	}
	vertices, neighbors, err := tr.Triangulate(points)
	if err != nil {
		return nil, errors.WithMessage(err, "triangulation oracle")
	}
	t, err := assemble(points, vertices, neighbors, nil)
	if err != nil {
		return nil, err
	}
	t.Edges = t.deriveEdges()
	return t, nil
}

// NewFromTiles builds a tiling from an explicit decomposition. The supplied
// vertex lists are clockwise-ordered and every index is bounds-checked, but
// the adjacency is otherwise accepted as given: no geometric validation
// happens here. Edges are canonicalized to (low, high); they are not
// re-derived from the tiles, so callers supplying vertices must supply edges
// too. A nil neighbors table means no adjacency is known for any tile.
func NewFromTiles(points []Point, vertices, neighbors [][]int, edges [][2]int) (*Tiling, error) {
	if err := checkPoints(points); err != nil {
		return nil, err
	}
	return assemble(points, vertices, neighbors, edges)
}

func checkPoints(points []Point) error {
	for i, p := range points {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return errors.Wrapf(ErrInvalidInput, "point %d has non-finite coordinates (%v, %v)", i, p.X, p.Y)
		}
	}
	return nil
}

// assemble copies and validates the index arrays. Nothing partially built
// escapes: any inconsistency fails before the Tiling is returned.
func assemble(points []Point, vertices, neighbors [][]int, edges [][2]int) (*Tiling, error) {
	if vertices == nil {
		return nil, errors.Wrap(ErrInvalidInput, "no tile vertices")
	}
	t := &Tiling{Points: append([]Point(nil), points...)}

	t.Vertices = make([][]int, len(vertices))
	for i, verts := range vertices {
		for _, v := range verts {
			if v < 0 || v >= t.NPoints() {
				return nil, errors.Wrapf(ErrInvalidInput, "tile %d references point %d of %d", i, v, t.NPoints())
			}
		}
		t.Vertices[i] = t.sortClockwise(verts)
	}

	if neighbors == nil {
		neighbors = make([][]int, len(vertices))
	}
	if len(neighbors) != len(vertices) {
		return nil, errors.Wrapf(ErrInvalidInput, "%d neighbor lists for %d tiles", len(neighbors), len(vertices))
	}
	t.Neighbors = make([][]int, len(neighbors))
	for i, ns := range neighbors {
		for _, n := range ns {
			if n != NoTile && (n < 0 || n >= t.NTiles()) {
				return nil, errors.Wrapf(ErrInvalidInput, "tile %d references tile %d of %d", i, n, t.NTiles())
			}
		}
		t.Neighbors[i] = append([]int(nil), ns...)
	}

	t.Edges = make([][2]int, 0, len(edges))
	for _, e := range edges {
		i, j := e[0], e[1]
		if j < i {
			i, j = j, i
		}
		if i == j || i < 0 || j >= t.NPoints() {
			return nil, errors.Wrapf(ErrInvalidInput, "bad edge (%d, %d)", e[0], e[1])
		}
		t.Edges = append(t.Edges, [2]int{i, j})
	}
	return t, nil
}

// deriveEdges walks every tile's boundary cycle and keeps only the pairs
// whose first index is less than the second. Adjacent tiles are both
// clockwise, so a shared edge is traversed once in each direction and
// survives exactly once.
func (t *Tiling) deriveEdges() [][2]int {
	var edges [][2]int
	for _, verts := range t.Vertices {
		for _, e := range tileEdges(verts) {
			if e[0] < e[1] {
				edges = append(edges, e)
			}
		}
	}
	return edges
}
