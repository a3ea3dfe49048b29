package tiling

// Dual returns the dual graph of the tiling, constructed by mapping each
// tile to a point (its centroid) and each point to a tile (the tiles that
// touch it). Original edges become dual adjacency, and original adjacency
// becomes dual edges. The receiver is never modified.
//
// Taking the dual of a Delaunay tiling yields the Voronoi diagram; taking
// it again yields a tiling topologically equivalent to the original, up to
// renumbering.
func (t *Tiling) Dual() (*Tiling, error) {
	dpoints := make([]Point, t.NTiles())
	dvertices := make([][]int, t.NPoints())
	dneighbors := make([][]int, t.NPoints())
	var dedges [][2]int

	for ti, verts := range t.Vertices {
		// centroid of the tile, dual to the original face
		var cx, cy float64
		for _, v := range verts {
			cx += t.Points[v].X
			cy += t.Points[v].Y
		}
		n := float64(len(verts))
		dpoints[ti] = Point{cx / n, cy / n}

		// edges connect the centroids of neighboring tiles; requiring
		// n < ti counts each pair once
		for _, nb := range t.Neighbors[ti] {
			if 0 <= nb && nb < ti {
				dedges = append(dedges, [2]int{nb, ti})
			}
		}

		// every tile touching a point becomes a vertex of that point's
		// dual tile
		for _, v := range verts {
			dvertices[v] = append(dvertices[v], ti)
		}
	}

	// points joined by an original edge are neighbors in the dual
	for _, e := range t.Edges {
		dneighbors[e[0]] = append(dneighbors[e[0]], e[1])
		dneighbors[e[1]] = append(dneighbors[e[1]], e[0])
	}

	// the constructor clockwise-orders the dual tiles against the
	// centroid points
	return NewFromTiles(dpoints, dvertices, dneighbors, dedges)
}
