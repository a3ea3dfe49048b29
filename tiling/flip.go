package tiling

import "github.com/pkg/errors"

// Flip replaces the shared edge of two adjacent triangles with the other
// diagonal of the quadrilateral they form, in place.
//
//	   A   p1   B      edge:       (p1, p2)
//	     / |  \        tiles:      t1 = (p1, p2, e1), t2 = (p1, p2, e2)
//	  e1 . | .  e2     new edge:   (e1, e2)
//	     \ |  /        new tiles:  t1 = (e1, e2, p1), t2 = (e1, e2, p2)
//	   D   p2   C
//
// Exactly two tiles are rewritten and four neighbor relations patched: the
// outer neighbors A and B move to t1, C and D to t2, and D and B swap their
// back-references accordingly. An outer neighbor missing on an open
// boundary resolves to NoTile and its patch is skipped.
//
// All preconditions are checked before anything is written, so a failed
// flip leaves the tiling byte-for-byte unchanged: ErrInvalidInput if the
// edge index is out of range, ErrNotFlippable if the edge is not shared by
// exactly two triangles, ErrDegenerateNeighbor if an outer-neighbor slot
// has more than one candidate.
func (t *Tiling) Flip(edge int) error {
	if edge < 0 || edge >= t.NEdges() {
		return errors.Wrapf(ErrInvalidInput, "edge %d out of range [0, %d)", edge, t.NEdges())
	}
	p1, p2 := t.Edges[edge][0], t.Edges[edge][1]

	// Find the two triangles sharing the edge, and their vertices opposite
	// to it. Tiles of any other cardinality never take part in a flip.
	var tiles, opposite []int
	for ti, verts := range t.Vertices {
		if len(verts) != 3 {
			continue
		}
		other := NoTile
		matched := 0
		for _, v := range verts {
			if v == p1 || v == p2 {
				matched++
			} else {
				other = v
			}
		}
		if matched == 2 {
			tiles = append(tiles, ti)
			opposite = append(opposite, other)
		}
	}
	if len(tiles) != 2 {
		return errors.Wrapf(ErrNotFlippable, "edge %d = (%d, %d) belongs to %d triangles", edge, p1, p2, len(tiles))
	}
	t1, t2 := tiles[0], tiles[1]
	e1, e2 := opposite[0], opposite[1]

	a, err := t.outerNeighbor(t1, p2)
	if err != nil {
		return err
	}
	d, err := t.outerNeighbor(t1, p1)
	if err != nil {
		return err
	}
	b, err := t.outerNeighbor(t2, p2)
	if err != nil {
		return err
	}
	c, err := t.outerNeighbor(t2, p1)
	if err != nil {
		return err
	}

	// Commit. Everything below is infallible, so no partial state can
	// escape through an error path.
	t.Neighbors[t1] = []int{t2, a, b}
	t.Neighbors[t2] = []int{t1, c, d}
	if d != NoTile {
		replaceNeighbor(t.Neighbors[d], t1, t2) // D borders (p2, e1), now owned by t2
	}
	if b != NoTile {
		replaceNeighbor(t.Neighbors[b], t2, t1) // B borders (p1, e2), now owned by t1
	}
	t.Vertices[t1] = t.sortClockwise([]int{e1, e2, p1})
	t.Vertices[t2] = t.sortClockwise([]int{e1, e2, p2})
	if e1 < e2 {
		t.Edges[edge] = [2]int{e1, e2}
	} else {
		t.Edges[edge] = [2]int{e2, e1}
	}
	return nil
}

// outerNeighbor finds the neighbor of tile whose vertices do not include
// the point without. A boundary tile may have no such neighbor, which is
// reported as NoTile rather than an error; two distinct candidates mean the
// adjacency lists are inconsistent.
func (t *Tiling) outerNeighbor(tile, without int) (int, error) {
	found := NoTile
	for _, n := range t.Neighbors[tile] {
		if n == NoTile {
			continue
		}
		if n < 0 || n >= t.NTiles() {
			return NoTile, errors.Wrapf(ErrDegenerateNeighbor, "tile %d has out-of-range neighbor %d", tile, n)
		}
		if containsVertex(t.Vertices[n], without) {
			continue
		}
		if found != NoTile && found != n {
			return NoTile, errors.Wrapf(ErrDegenerateNeighbor, "tiles %d and %d both border tile %d away from point %d", found, n, tile, without)
		}
		found = n
	}
	return found, nil
}

func containsVertex(vertices []int, v int) bool {
	for _, w := range vertices {
		if w == v {
			return true
		}
	}
	return false
}

func replaceNeighbor(neighbors []int, from, to int) {
	for i, n := range neighbors {
		if n == from {
			neighbors[i] = to
		}
	}
}
