package tiling

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/mmohn/TEMimage/dbg"
)

type tileHandle struct {
	tiling *Tiling
	index  int
}

// TileName gives a stable, human-readable name for a tile of this tiling.
// Names are random per process run.
func (t *Tiling) TileName(tile int) string {
	return dbg.Name(tileHandle{t, tile})
}

// TileString formats one tile for debugging: its name, vertex cycle, and
// neighbor names. Triangles are cyan and everything else green, so a flip
// gone wrong stands out in a dump.
func (t *Tiling) TileString(tile int) string {
	name := t.TileName(tile)
	if len(t.Vertices[tile]) == 3 {
		name = aurora.Cyan(name).String()
	} else {
		name = aurora.Green(name).String()
	}
	neighbors := make([]string, 0, len(t.Neighbors[tile]))
	for _, n := range t.Neighbors[tile] {
		if n == NoTile {
			neighbors = append(neighbors, "Ø")
		} else {
			neighbors = append(neighbors, t.TileName(n))
		}
	}
	return fmt.Sprintf("%s %v ~ [%s]", name, t.Vertices[tile], strings.Join(neighbors, " "))
}
