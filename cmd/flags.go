package cmd

import (
	"fmt"
	"math"

	"github.com/okoham/ibeam/internal/cantilever"
	"github.com/okoham/ibeam/internal/loads"
	"github.com/okoham/ibeam/internal/section"
	"github.com/okoham/ibeam/internal/study"
	"github.com/spf13/cobra"
)

// beamFlags are the inputs shared by the commands that evaluate a single beam
type beamFlags struct {
	material string
	span     float64
	dstab    float64
	geometry section.Geometry
	file     string
	strict   bool
	face     string
}

func addSectionFlags(c *cobra.Command, b *beamFlags) {
	c.Flags().Float64Var(&b.geometry.H, "h", 0, "Overall height (mm)")
	c.Flags().Float64Var(&b.geometry.Tw, "tw", 0, "Web thickness (mm)")
	c.Flags().Float64Var(&b.geometry.Blf, "blf", 0, "Lower flange width (mm)")
	c.Flags().Float64Var(&b.geometry.Tlf, "tlf", 0, "Lower flange thickness (mm)")
	c.Flags().Float64Var(&b.geometry.Buf, "buf", 0, "Upper flange width (mm)")
	c.Flags().Float64Var(&b.geometry.Tuf, "tuf", 0, "Upper flange thickness (mm)")
	c.Flags().StringVarP(&b.file, "file", "f", "", "Read the section geometry from a JSON file")
	c.Flags().BoolVar(&b.strict, "strict", false, "Reject degenerate sections instead of evaluating them")
	c.MarkFlagsOneRequired("h", "file")
}

func addBeamFlags(c *cobra.Command, b *beamFlags) {
	addSectionFlags(c, b)
	c.Flags().StringVarP(&b.material, "material", "m", "AL7010", "Material name")
	c.Flags().Float64VarP(&b.span, "length", "L", 2000, "Span (mm)")
	c.Flags().Float64Var(&b.dstab, "dstab", 0, "Spacing of lateral stabilisers (mm), 0 for the full span")
	c.Flags().StringVar(&b.face, "compression-face", "max", "Flange compression face stress: max or min")
}

func (b *beamFlags) section() (section.Geometry, error) {
	g := b.geometry
	if b.file != "" {
		var err error
		g, err = section.LoadFromFile(b.file)
		if err != nil {
			return section.Geometry{}, fmt.Errorf("load section: %w", err)
		}
	}
	if b.strict {
		if err := g.Validate(); err != nil {
			return section.Geometry{}, err
		}
	}
	return g, nil
}

func (b *beamFlags) beam() (*cantilever.Cantilever, error) {
	g, err := b.section()
	if err != nil {
		return nil, err
	}
	face, err := cantilever.ParseCompressionFace(b.face)
	if err != nil {
		return nil, err
	}
	opts := []cantilever.Option{
		cantilever.WithStabilizerSpacing(b.dstab),
		cantilever.WithCompressionFace(face),
	}
	if b.strict {
		opts = append(opts, cantilever.WithGeometryCheck())
	}
	return cantilever.New(registry, b.material, b.span, g, opts...)
}

// parseLoads reads a --loads value, falling back to the reference load set.
func parseLoads(s string) ([]float64, error) {
	if s == "" {
		return loads.Default, nil
	}
	set, err := loads.Parse(s)
	if err != nil {
		return nil, err
	}
	if len(set) == 0 {
		return nil, study.ErrNoLoads
	}
	return set, nil
}

// jsonValue spells non-finite numbers as strings so they survive JSON encoding.
func jsonValue(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return study.FormatFloat(v)
	}
	return v
}

func formatRF(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return study.FormatFloat(v)
	}
	return fmt.Sprintf("%.3f", v)
}

func status(rf float64) string {
	if rf >= 1 {
		return "OK"
	}
	return "FAIL"
}
