package tiling

// Accessors for rendering layers. Renderers only ever need coordinates:
// the point list, the edge list as coordinate pairs, and the tile polygons
// grouped by vertex count.

// EdgeSegments returns the coordinate pair of every edge.
func (t *Tiling) EdgeSegments() [][2]Point {
	segments := make([][2]Point, len(t.Edges))
	for i, e := range t.Edges {
		segments[i] = [2]Point{t.Points[e[0]], t.Points[e[1]]}
	}
	return segments
}

// TilesByCardinality groups the tile polygons by their vertex count, so a
// caller can render, say, only the heptagons of a Voronoi diagram. Empty
// tiles are skipped.
func (t *Tiling) TilesByCardinality() map[int][][]Point {
	tiles := make(map[int][][]Point)
	for _, verts := range t.Vertices {
		if len(verts) == 0 {
			continue
		}
		poly := make([]Point, len(verts))
		for i, v := range verts {
			poly[i] = t.Points[v]
		}
		tiles[len(verts)] = append(tiles[len(verts)], poly)
	}
	return tiles
}
