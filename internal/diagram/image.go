package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/gosfd/internal/statics"
)

var (
	curveColor = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	fillColor  = color.RGBA{R: 100, G: 149, B: 237, A: 110}
	gridColor  = color.Gray{Y: 190}
)

// ExportDiagram saves V(x) or M(x) as an image. The format follows the file
// extension (.png, .svg, .pdf); anything else gets ".png" appended.
func ExportDiagram(p statics.Profile, q Quantity, filename string) error {
	if p.Len() < 2 {
		return fmt.Errorf("diagram needs at least 2 samples, got %d", p.Len())
	}

	pl, err := newDiagramPlot(p, q)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}

	// Create directory if needed
	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return pl.Save(8*vg.Inch, 4*vg.Inch, filename)
}

func newDiagramPlot(p statics.Profile, q Quantity) (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = q.Title()
	pl.X.Label.Text = "x (m)"
	pl.Y.Label.Text = q.Symbol()

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Vertical.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	grid.Horizontal.Color = gridColor
	grid.Horizontal.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	pl.Add(grid)

	xs := p.Xs()
	ys := q.Values(p)
	span := float64(p.Span)

	// Shade between the curve and the axis
	area := make(plotter.XYs, 0, len(xs)+2)
	area = append(area, plotter.XY{X: xs[0], Y: 0})
	for i := range xs {
		area = append(area, plotter.XY{X: xs[i], Y: ys[i]})
	}
	area = append(area, plotter.XY{X: xs[len(xs)-1], Y: 0})
	shade, err := plotter.NewPolygon(area)
	if err != nil {
		return nil, err
	}
	shade.Color = fillColor
	shade.LineStyle.Width = 0
	pl.Add(shade)

	curve := make(plotter.XYs, len(xs))
	for i := range xs {
		curve[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = curveColor
	pl.Add(line)

	// Zero reference line
	axis, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: span, Y: 0}})
	if err != nil {
		return nil, err
	}
	axis.LineStyle.Width = vg.Points(1)
	axis.LineStyle.Color = color.Black
	pl.Add(axis)

	// Label the peak
	e := p.Extremes()
	peak := e.MaxAbsShear
	if q == Moment {
		peak = e.MaxMoment
		if -e.MinMoment.M > e.MaxMoment.M {
			peak = e.MinMoment
		}
	}
	peakY := peak.V
	if q == Moment {
		peakY = peak.M
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: peak.X, Y: peakY}},
		Labels: []string{fmt.Sprintf("%.3f @ x=%.2f", peakY, peak.X)},
	})
	if err != nil {
		return nil, err
	}
	pl.Add(labels)

	return pl, nil
}
