package plot

import (
	"fmt"
	"io"

	"github.com/mmohn/TEMimage/tiling"
)

// Dump writes a one-line summary followed by every tile with its readable
// name, vertex cycle, and neighbor names. Meant for eyeballing adjacency
// after a flip.
func Dump(w io.Writer, t *tiling.Tiling) {
	fmt.Fprintf(w, "%d points, %d tiles, %d edges\n", t.NPoints(), t.NTiles(), t.NEdges())
	for i := 0; i < t.NTiles(); i++ {
		fmt.Fprintln(w, t.TileString(i))
	}
}
