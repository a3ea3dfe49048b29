package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	temimage "github.com/mmohn/TEMimage"
	"github.com/mmohn/TEMimage/plot"
	"github.com/mmohn/TEMimage/tiling"
)

// Builds the Delaunay tiling of a point file, its Voronoi dual, and the
// dual of that, optionally flips one edge of the latter, and renders all
// three tilings.
//
// Input is one "x y" point per line; blank lines and lines starting with
// "#" are skipped.

var (
	pointsFile = kingpin.Arg("points", "file of x y coordinates, one point per line").Required().ExistingFile()
	outPrefix  = kingpin.Flag("out", "prefix for rendered output files").Default("tiling").String()
	asHTML     = kingpin.Flag("html", "render echarts HTML instead of PNG").Bool()
	scale      = kingpin.Flag("scale", "pixels per coordinate unit").Default("4").Float64()
	flipEdge   = kingpin.Flag("flip", "flip this edge of the dual-of-dual tiling").Default("-1").Int()
	fill       = kingpin.Flag("fill", "fill only tiles with this many vertices (repeatable)").Ints()
	dump       = kingpin.Flag("dump", "print per-tile adjacency for each tiling").Bool()
)

func main() {
	kingpin.Parse()
	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	f, err := os.Open(*pointsFile)
	if err != nil {
		log.Fatal("opening point file", zap.Error(err))
	}
	points, err := readPoints(f)
	f.Close()
	if err != nil {
		log.Fatal("reading points", zap.String("file", *pointsFile), zap.Error(err))
	}
	log.Info("loaded points", zap.String("file", *pointsFile), zap.Int("count", len(points)))

	del, err := temimage.Delaunay(points)
	if err != nil {
		log.Fatal("triangulation failed", zap.Error(err))
	}
	voronoi, err := del.Dual()
	if err != nil {
		log.Fatal("voronoi construction failed", zap.Error(err))
	}
	dual2, err := voronoi.Dual()
	if err != nil {
		log.Fatal("dual-of-dual construction failed", zap.Error(err))
	}

	if *flipEdge >= 0 {
		if err := dual2.Flip(*flipEdge); err != nil {
			log.Fatal("flip failed", zap.Int("edge", *flipEdge), zap.Error(err))
		}
		log.Info("flipped edge", zap.Int("edge", *flipEdge))
	}

	for _, out := range []struct {
		name   string
		tiling *tiling.Tiling
	}{
		{"delaunay", del},
		{"voronoi", voronoi},
		{"dual2", dual2},
	} {
		fmt.Printf("%s %d points, %d tiles, %d edges\n",
			aurora.Cyan(out.name+":"), out.tiling.NPoints(), out.tiling.NTiles(), out.tiling.NEdges())
		if *dump {
			plot.Dump(os.Stdout, out.tiling)
		}
		if err := render(out.tiling, out.name); err != nil {
			log.Fatal("render failed", zap.String("tiling", out.name), zap.Error(err))
		}
	}
}

func render(t *tiling.Tiling, name string) error {
	if *asHTML {
		f, err := os.Create(fmt.Sprintf("%s-%s.html", *outPrefix, name))
		if err != nil {
			return err
		}
		defer f.Close()
		return plot.HTML(f, t, name)
	}
	return plot.PNG(t, fmt.Sprintf("%s-%s.png", *outPrefix, name), plot.Style{
		Scale:         *scale,
		Cardinalities: *fill,
	})
}

func readPoints(r io.Reader) ([]tiling.Point, error) {
	var points []tiling.Point
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, errors.Errorf("line %q: want an x and a y coordinate", line)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %q", line)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %q", line)
		}
		points = append(points, tiling.Point{X: x, Y: y})
	}
	return points, scanner.Err()
}
