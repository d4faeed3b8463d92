package diagram

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/okoham/ibeam/internal/cantilever"
	"github.com/okoham/ibeam/internal/section"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrNoData is returned when nothing plottable is left once non-finite
// samples are dropped.
var ErrNoData = errors.New("diagram: nothing to plot")

var (
	outlineColor  = color.Black
	feasibleColor = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	failedColor   = color.RGBA{R: 200, G: 0, B: 0, A: 255}
	axisColor     = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// Outline returns the closed I-section outline, counter-clockwise from the
// bottom-left corner, centred on the web.
func Outline(g section.Geometry) plotter.XYs {
	bl, bu, tw := g.Blf/2, g.Buf/2, g.Tw/2
	zl, zu := g.Tlf, g.H-g.Tuf
	return plotter.XYs{
		{X: -bl, Y: 0},
		{X: bl, Y: 0},
		{X: bl, Y: zl},
		{X: tw, Y: zl},
		{X: tw, Y: zu},
		{X: bu, Y: zu},
		{X: bu, Y: g.H},
		{X: -bu, Y: g.H},
		{X: -bu, Y: zu},
		{X: -tw, Y: zu},
		{X: -tw, Y: zl},
		{X: -bl, Y: zl},
		{X: -bl, Y: 0},
	}
}

// ExportSection exports the section outline with its neutral axis.
func ExportSection(g section.Geometry, props section.Properties, filename string) error {
	p := plot.New()
	p.Title.Text = "I-Section"
	p.X.Label.Text = "y (mm)"
	p.Y.Label.Text = "z (mm)"

	shape, err := plotter.NewPolygon(Outline(g))
	if err != nil {
		return err
	}
	shape.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	shape.LineStyle.Color = outlineColor
	shape.LineStyle.Width = vg.Points(2)
	p.Add(shape)

	half := g.Width() / 2
	na, err := plotter.NewLine(plotter.XYs{
		{X: -half - 10, Y: props.Cg},
		{X: half + 10, Y: props.Cg},
	})
	if err != nil {
		return err
	}
	na.LineStyle.Width = vg.Points(1.5)
	na.LineStyle.Color = axisColor
	na.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(na)

	lbl, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: half + 12, Y: props.Cg}},
		Labels: []string{fmt.Sprintf("cg=%.1fmm", props.Cg)},
	})
	if err != nil {
		return err
	}
	p.Add(lbl)

	return save(p, 6*vg.Inch, 6*vg.Inch, filename)
}

// ExportStressProfile exports σx over the section height at the clamped end,
// one line per load.
func ExportStressProfile(c *cantilever.Cantilever, loads []float64, filename string) error {
	p := plot.New()
	p.Title.Text = "Root Bending Stress"
	p.X.Label.Text = "σx (MPa)"
	p.Y.Label.Text = "z (mm)"
	p.Add(plotter.NewGrid())

	plotted := 0
	for i, f := range loads {
		prof := StressProfile(c, f, 40)
		pts := make(plotter.XYs, 0, len(prof.X))
		for j := range prof.X {
			if finite(prof.Y[j]) {
				pts = append(pts, plotter.XY{X: prof.Y[j], Y: prof.X[j]})
			}
		}
		if len(pts) == 0 {
			continue
		}
		plotted++
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = plotColor(i)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("F = %g N", f), line)
	}
	if plotted == 0 {
		return fmt.Errorf("%w: no finite stresses", ErrNoData)
	}

	if finite(c.Props.Cg) {
		cg, err := plotter.NewLine(plotter.XYs{
			{X: p.X.Min, Y: c.Props.Cg},
			{X: p.X.Max, Y: c.Props.Cg},
		})
		if err != nil {
			return err
		}
		cg.LineStyle.Color = color.Gray{Y: 128}
		cg.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		p.Add(cg)
	}

	return save(p, 6*vg.Inch, 8*vg.Inch, filename)
}

// ExportStudyScatter plots the mass of every design over its governing
// reserve factor. Feasible designs are drawn green, the others red; designs
// with a non-finite reserve factor are left out.
func ExportStudyScatter(summaries []cantilever.Summary, filename string) error {
	p := plot.New()
	p.Title.Text = "Design Study"
	p.X.Label.Text = "governing reserve factor"
	p.Y.Label.Text = "mass (kg)"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}

	var ok, failed plotter.XYs
	for _, s := range summaries {
		_, rf := s.Governing()
		if !finite(rf) || rf <= 0 {
			continue
		}
		pt := plotter.XY{X: rf, Y: s.Mass}
		if rf >= 1 {
			ok = append(ok, pt)
		} else {
			failed = append(failed, pt)
		}
	}
	if len(ok)+len(failed) == 0 {
		return fmt.Errorf("%w: no finite designs", ErrNoData)
	}

	for _, set := range []struct {
		pts   plotter.XYs
		color color.Color
		name  string
	}{
		{failed, failedColor, "RF < 1"},
		{ok, feasibleColor, "RF ≥ 1"},
	} {
		if len(set.pts) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(set.pts)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = set.color
		sc.GlyphStyle.Radius = vg.Points(2)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
		p.Legend.Add(set.name, sc)
	}

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func plotColor(i int) color.Color {
	palette := []color.Color{
		color.RGBA{R: 0, G: 0, B: 139, A: 255},
		color.RGBA{R: 139, G: 69, B: 19, A: 255},
		feasibleColor,
		failedColor,
	}
	return palette[i%len(palette)]
}

// save writes the plot in the format given by the file extension, PNG when
// there is none.
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg", ".eps", ".tif", ".tiff":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
