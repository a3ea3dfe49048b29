// Tilings of 2D space and their dual graphs, for atom positions extracted
// from transmission electron microscopy images.
//
// This package is a thin facade over the tiling and delaunay packages: it
// builds the Delaunay tiling of a point set, from which the Voronoi diagram
// is one Dual() call away.
package temimage

import (
	"github.com/mmohn/TEMimage/delaunay"
	"github.com/mmohn/TEMimage/tiling"
)

type Point = tiling.Point
type Tiling = tiling.Tiling

// Delaunay builds the Delaunay tiling of points: one triangular tile per
// Delaunay triangle, with the global edge list derived from the tile
// boundaries.
func Delaunay(points []Point) (*Tiling, error) {
	return tiling.New(points, delaunay.Triangulator{})
}
