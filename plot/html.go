package plot

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/mmohn/TEMimage/tiling"
)

// HTML renders the tiling as a self-contained echarts page: a scatter
// series for the points with one line overlay per edge.
func HTML(w io.Writer, t *tiling.Tiling, title string) error {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "1020px",
			Height: "580px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
	)

	points := make([]opts.ScatterData, 0, t.NPoints())
	for _, p := range t.Points {
		points = append(points, opts.ScatterData{
			Value: []float64{p.X, p.Y},
		})
	}
	scatter.AddSeries("points", points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "red",
			}),
		)

	for _, segment := range t.EdgeSegments() {
		line := charts.NewLine()
		line.AddSeries("edges", []opts.LineData{
			{Value: []float64{segment[0].X, segment[0].Y}},
			{Value: []float64{segment[1].X, segment[1].Y}},
		}).SetSeriesOptions(
			charts.WithLineStyleOpts(opts.LineStyle{
				Width: 2,
			}),
		)
		scatter.Overlap(line)
	}

	return scatter.Render(w)
}
