package study

import (
	"errors"

	"github.com/okoham/ibeam/internal/section"
)

// GridSpace lists the discrete values of a full-factorial sweep. The lower
// and upper flanges draw independently from the same width and thickness
// sets.
type GridSpace struct {
	Span              float64
	Heights           []float64
	WebThicknesses    []float64
	FlangeWidths      []float64
	FlangeThicknesses []float64
	Materials         []string
}

// DefaultGrid is the sweep of the reference sizing study (mm).
func DefaultGrid(materials []string) GridSpace {
	return GridSpace{
		Span:              2000,
		Heights:           []float64{60, 80, 100, 120, 140, 160, 180, 200},
		WebThicknesses:    []float64{1, 2, 3, 4, 5, 6},
		FlangeWidths:      []float64{20, 30, 40, 50, 60, 70, 80},
		FlangeThicknesses: []float64{0, 3, 6, 9, 12},
		Materials:         materials,
	}
}

// ErrEmptySpace is returned for a design space without any candidate.
var ErrEmptySpace = errors.New("study: empty design space")

// Size returns the number of candidates of the sweep.
func (s GridSpace) Size() int {
	nb := len(s.FlangeWidths)
	nt := len(s.FlangeThicknesses)
	return len(s.Heights) * len(s.WebThicknesses) * nb * nt * nb * nt * len(s.Materials)
}

// Grid enumerates the cartesian product h × tw × blf × tlf × buf × tuf ×
// material, the last factor varying fastest.
func Grid(s GridSpace) ([]Candidate, error) {
	n := s.Size()
	if n == 0 {
		return nil, ErrEmptySpace
	}

	out := make([]Candidate, 0, n)
	for _, h := range s.Heights {
		for _, tw := range s.WebThicknesses {
			for _, blf := range s.FlangeWidths {
				for _, tlf := range s.FlangeThicknesses {
					for _, buf := range s.FlangeWidths {
						for _, tuf := range s.FlangeThicknesses {
							for _, m := range s.Materials {
								out = append(out, Candidate{
									Material: m,
									L:        s.Span,
									Geometry: section.Geometry{H: h, Tw: tw, Blf: blf, Tlf: tlf, Buf: buf, Tuf: tuf},
								})
							}
						}
					}
				}
			}
		}
	}
	return out, nil
}
