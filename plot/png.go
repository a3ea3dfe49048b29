// Package plot renders tilings. It only ever consumes the coordinate
// accessors of a Tiling: the point list, the edge segments, and the tile
// polygons grouped by vertex count.
package plot

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"

	"github.com/mmohn/TEMimage/tiling"
)

// Padding around the tiling so hull edges don't touch the image border
const padding = 40

const pointRadius = 3.0

// Style controls how a tiling is drawn.
type Style struct {
	// Scale is the number of pixels per coordinate unit; zero means 1.
	Scale float64
	// Cardinalities selects which tile polygons get filled, by vertex
	// count. Nil fills all of them.
	Cardinalities []int
	// Preview additionally cats the finished image to the terminal
	// (iTerm only).
	Preview bool
}

// PNG renders the tiling to a PNG file: filled tiles at the bottom, then
// edges, then points on top.
func PNG(t *tiling.Tiling, path string, style Style) error {
	if t.NPoints() == 0 {
		return errors.New("nothing to draw: tiling has no points")
	}
	scale := style.Scale
	if scale <= 0 {
		scale = 1
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range t.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	width := int(scale*(maxX-minX)) + padding*2
	height := int(scale*(maxY-minY)) + padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(padding, padding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	for cardinality, polygons := range t.TilesByCardinality() {
		if !wantCardinality(style.Cardinalities, cardinality) {
			continue
		}
		for _, poly := range polygons {
			c.MoveTo(poly[0].X, poly[0].Y)
			for _, p := range poly[1:] {
				c.LineTo(p.X, p.Y)
			}
			c.ClosePath()
		}
	}
	c.SetRGBA(0, 0, 1, 0.5)
	c.Fill()

	c.SetRGB(0, 0, 1)
	c.SetLineWidth(2)
	for _, segment := range t.EdgeSegments() {
		c.DrawLine(segment[0].X, segment[0].Y, segment[1].X, segment[1].Y)
	}
	c.Stroke()

	c.SetRGB(1, 0, 0)
	for _, p := range t.Points {
		c.DrawCircle(p.X, p.Y, pointRadius/scale)
	}
	c.Fill()

	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	if style.Preview {
		imgcat.CatFile(path, os.Stdout)
	}
	return nil
}

func wantCardinality(selected []int, cardinality int) bool {
	if selected == nil {
		return true
	}
	for _, n := range selected {
		if n == cardinality {
			return true
		}
	}
	return false
}
