package study

import (
	"fmt"
	"math/rand/v2"

	"github.com/okoham/ibeam/internal/section"
	"gonum.org/v1/gonum/stat/distuv"
)

// Range is a closed interval sampled uniformly
type Range struct {
	Min float64
	Max float64
}

// RandomSpace describes a Monte-Carlo design space
type RandomSpace struct {
	Span            float64
	Height          Range
	WebThickness    Range
	FlangeWidth     Range
	FlangeThickness Range
	Materials       []string
}

// DefaultRandom is the sampling space of the reference sizing study (mm).
func DefaultRandom(materials []string) RandomSpace {
	return RandomSpace{
		Span:            2000,
		Height:          Range{10, 300},
		WebThickness:    Range{1.5, 6},
		FlangeWidth:     Range{6, 100},
		FlangeThickness: Range{0, 12},
		Materials:       materials,
	}
}

func (r Range) validate(name string) error {
	if !(r.Max >= r.Min) {
		return fmt.Errorf("%w: %s range [%g, %g]", ErrEmptySpace, name, r.Min, r.Max)
	}
	return nil
}

// Sample draws n candidates from the space. The same seed always yields the
// same candidates.
func Sample(s RandomSpace, n int, seed uint64) ([]Candidate, error) {
	if n <= 0 || len(s.Materials) == 0 {
		return nil, ErrEmptySpace
	}
	for _, r := range []struct {
		name string
		Range
	}{
		{"height", s.Height},
		{"web thickness", s.WebThickness},
		{"flange width", s.FlangeWidth},
		{"flange thickness", s.FlangeThickness},
	} {
		if err := r.validate(r.name); err != nil {
			return nil, err
		}
	}

	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	rng := rand.New(src)
	uniform := func(r Range) distuv.Uniform {
		return distuv.Uniform{Min: r.Min, Max: r.Max, Src: src}
	}
	h := uniform(s.Height)
	tw := uniform(s.WebThickness)
	b := uniform(s.FlangeWidth)
	t := uniform(s.FlangeThickness)

	out := make([]Candidate, n)
	for i := range out {
		// draw order is part of the reproducibility contract
		g := section.Geometry{
			H:   h.Rand(),
			Tw:  tw.Rand(),
			Blf: b.Rand(),
			Tlf: t.Rand(),
			Buf: b.Rand(),
			Tuf: t.Rand(),
		}
		out[i] = Candidate{
			Material: s.Materials[rng.IntN(len(s.Materials))],
			L:        s.Span,
			Geometry: g,
		}
	}
	return out, nil
}
