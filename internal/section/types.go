package section

import (
	"errors"
	"fmt"
)

// Geometry describes an I-section in a local system where z points upward
// from the lower extreme fiber (z = 0) to the upper extreme fiber (z = H).
type Geometry struct {
	H   float64 `json:"h"`   // overall height (mm)
	Tw  float64 `json:"tw"`  // web thickness (mm)
	Blf float64 `json:"blf"` // lower flange width (mm)
	Tlf float64 `json:"tlf"` // lower flange thickness (mm)
	Buf float64 `json:"buf"` // upper flange width (mm)
	Tuf float64 `json:"tuf"` // upper flange thickness (mm)
}

// Properties holds the derived cross-section properties
type Properties struct {
	// Part areas (mm²)
	ALf  float64 `json:"a_lf"` // lower flange
	AUf  float64 `json:"a_uf"` // upper flange
	AW   float64 `json:"a_w"`  // web
	Area float64 `json:"area"` // total

	// Part centroids, measured from the lower extreme fiber (mm)
	ZLf float64 `json:"cg_lf"`
	ZUf float64 `json:"cg_uf"`
	ZW  float64 `json:"cg_w"`

	Cg        float64 `json:"cg"`         // section centroid (mm)
	WebHeight float64 `json:"web_height"` // clear web height between flanges (mm)

	Iyy float64 `json:"iyy"` // bending inertia about the centroidal axis (mm⁴)
	It  float64 `json:"it"`  // torsional inertia, thin-walled open section (mm⁴)
}

// ErrDegenerateGeometry is returned by Validate for sections whose derived
// properties would be physically meaningless.
var ErrDegenerateGeometry = errors.New("section: degenerate geometry")

// Validate checks the geometry for the conditions the closed-form formulas
// rely on: positive dimensions, a web of positive height, and flanges at
// least as wide as the web. Flange thicknesses may be zero.
func (g Geometry) Validate() error {
	if !(g.H > 0) || !(g.Tw > 0) || !(g.Blf > 0) || !(g.Buf > 0) {
		return fmt.Errorf("%w: h, tw, blf and buf must be positive", ErrDegenerateGeometry)
	}
	if g.Tlf < 0 || g.Tuf < 0 {
		return fmt.Errorf("%w: flange thickness must not be negative", ErrDegenerateGeometry)
	}
	if g.Tlf+g.Tuf >= g.H {
		return fmt.Errorf("%w: flanges (%.2f + %.2f mm) leave no web within h = %.2f mm",
			ErrDegenerateGeometry, g.Tlf, g.Tuf, g.H)
	}
	if g.Blf < g.Tw || g.Buf < g.Tw {
		return fmt.Errorf("%w: flange narrower than web (blf=%.2f, buf=%.2f, tw=%.2f mm)",
			ErrDegenerateGeometry, g.Blf, g.Buf, g.Tw)
	}
	return nil
}

// Width returns the widest flange, the envelope width of the section.
func (g Geometry) Width() float64 {
	if g.Blf > g.Buf {
		return g.Blf
	}
	return g.Buf
}

// LowerOutstand returns the free width of one half of the lower flange.
func (g Geometry) LowerOutstand() float64 {
	return (g.Blf - g.Tw) / 2
}

// UpperOutstand returns the free width of one half of the upper flange.
func (g Geometry) UpperOutstand() float64 {
	return (g.Buf - g.Tw) / 2
}
