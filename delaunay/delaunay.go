// Package delaunay adapts the fogleman/delaunay triangulator to the oracle
// shape the tiling package consumes: per-triangle vertex lists plus a
// neighbor table aligned so that neighbor k sits across the edge opposite
// vertex k.
package delaunay

import (
	fogleman "github.com/fogleman/delaunay"
	"github.com/pkg/errors"

	"github.com/mmohn/TEMimage/tiling"
)

// Triangulator computes Delaunay triangulations. The zero value is ready
// to use.
type Triangulator struct{}

// Triangulate runs a Delaunay triangulation of points. NoTile marks a hull
// edge with no triangle on the other side.
func (Triangulator) Triangulate(points []tiling.Point) (vertices, neighbors [][]int, err error) {
	if len(points) < 3 {
		return nil, nil, errors.Errorf("need at least 3 points, got %d", len(points))
	}
	sites := make([]fogleman.Point, len(points))
	for i, p := range points {
		sites[i] = fogleman.Point{X: p.X, Y: p.Y}
	}
	tri, err := fogleman.Triangulate(sites)
	if err != nil {
		return nil, nil, errors.Wrap(err, "delaunay triangulation")
	}

	ntriangles := len(tri.Triangles) / 3
	vertices = make([][]int, ntriangles)
	neighbors = make([][]int, ntriangles)
	for t := 0; t < ntriangles; t++ {
		vertices[t] = []int{tri.Triangles[3*t], tri.Triangles[3*t+1], tri.Triangles[3*t+2]}
		neighbors[t] = []int{tiling.NoTile, tiling.NoTile, tiling.NoTile}
	}

	// Halfedge s runs from corner s%3 to corner (s%3+1)%3 of triangle s/3,
	// so the triangle on its twin's side is the neighbor opposite corner
	// (s%3+2)%3.
	for s, twin := range tri.Halfedges {
		if twin < 0 {
			continue
		}
		neighbors[s/3][(s%3+2)%3] = twin / 3
	}
	return vertices, neighbors, nil
}
