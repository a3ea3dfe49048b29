package tiling

import (
	"math"
	"sort"
)

// sortClockwise returns the tile's vertex indices ordered around the tile
// centroid. Each vertex is ranked by the angle of its displacement from the
// centroid, measured from the +Y axis via atan2(dx, dy); ascending angle
// walks the polygon clockwise in a y-up frame. The same convention is used
// everywhere, which is all the edge derivation and rendering depend on.
// The sort is stable, so coincident angles keep their input order.
func (t *Tiling) sortClockwise(vertices []int) []int {
	if len(vertices) == 0 {
		return nil
	}
	var cx, cy float64
	for _, v := range vertices {
		cx += t.Points[v].X
		cy += t.Points[v].Y
	}
	cx /= float64(len(vertices))
	cy /= float64(len(vertices))

	type ranked struct {
		vertex int
		angle  float64
	}
	byAngle := make([]ranked, len(vertices))
	for i, v := range vertices {
		p := t.Points[v]
		byAngle[i] = ranked{v, math.Atan2(p.X-cx, p.Y-cy)}
	}
	sort.SliceStable(byAngle, func(i, j int) bool {
		return byAngle[i].angle < byAngle[j].angle
	})

	sorted := make([]int, len(byAngle))
	for i, r := range byAngle {
		sorted[i] = r.vertex
	}
	return sorted
}

// tileEdges returns the boundary edges of an ordered vertex list as
// consecutive pairs, closing the cycle back to the first vertex.
func tileEdges(sorted []int) [][2]int {
	if len(sorted) < 2 {
		return nil
	}
	edges := make([][2]int, 0, len(sorted))
	for i := range sorted {
		edges = append(edges, [2]int{sorted[i], sorted[(i+1)%len(sorted)]})
	}
	return edges
}
