package cantilever

import (
	"math"

	"github.com/okoham/ibeam/internal/buckling"
)

// Reserve factors are allowable / applied. All checks are made at the root
// section (x = 0). +Inf means the load does not act on the failure mode, NaN
// means a stress was requested outside the section.

// webShearFactor converts the average web shear stress into the peak value.
const webShearFactor = 1.5

// RFTensionUpper returns the reserve factor of the upper flange in tension.
func (c *Cantilever) RFTensionUpper(f float64) float64 {
	s1, s2 := c.faceStresses(f, c.Section.H, c.Section.H-c.Section.Tuf)
	return tension(math.Max(s1, s2), c.Material.Ftu)
}

// RFCompressionUpper returns the reserve factor of the upper flange in
// compression.
func (c *Cantilever) RFCompressionUpper(f float64) float64 {
	s1, s2 := c.faceStresses(f, c.Section.H, c.Section.H-c.Section.Tuf)
	return compression(c.compressionFace(s1, s2), c.Material.Fcy)
}

// RFLocalBucklingUpper returns the reserve factor of the upper flange
// outstand against local buckling.
func (c *Cantilever) RFLocalBucklingUpper(f float64) float64 {
	s1, s2 := c.faceStresses(f, c.Section.H-c.Section.Tuf, c.Section.H)
	allow := buckling.SigmaFlangeCrit(c.Section.UpperOutstand(), c.Section.Tuf, c.Material.E)
	return flangeBuckling(math.Min(s1, s2), allow)
}

// RFTensionLower returns the reserve factor of the lower flange in tension.
func (c *Cantilever) RFTensionLower(f float64) float64 {
	s1, s2 := c.faceStresses(f, 0, c.Section.Tlf)
	return tension(math.Max(s1, s2), c.Material.Ftu)
}

// RFCompressionLower returns the reserve factor of the lower flange in
// compression.
func (c *Cantilever) RFCompressionLower(f float64) float64 {
	s1, s2 := c.faceStresses(f, 0, c.Section.Tlf)
	return compression(c.compressionFace(s1, s2), c.Material.Fcy)
}

// RFLocalBucklingLower returns the reserve factor of the lower flange
// outstand against local buckling.
func (c *Cantilever) RFLocalBucklingLower(f float64) float64 {
	s1, s2 := c.faceStresses(f, 0, c.Section.Tlf)
	allow := buckling.SigmaFlangeCrit(c.Section.LowerOutstand(), c.Section.Tlf, c.Material.E)
	return flangeBuckling(math.Min(s1, s2), allow)
}

// RFWebShear returns the reserve factor of the web against shear rupture.
func (c *Cantilever) RFWebShear(f float64) float64 {
	tau := webShearFactor * c.TauWeb(f, 0)
	return c.Material.Fsu / tau
}

// RFWebBuckling returns the reserve factor of the web plate under combined
// shear and in-plane bending.
func (c *Cantilever) RFWebBuckling(f float64) float64 {
	b := c.Props.WebHeight
	e := c.Material.E

	tau := c.TauWeb(f, 0)
	rs := tau / buckling.TauCrit(b, c.Section.Tw, e, c.Material.Nu)

	upper, lower := c.faceStresses(f, c.Section.H-c.Section.Tuf, c.Section.Tlf)
	sx := math.Min(upper, lower)

	// Sections with very thick flanges can leave the whole web in tension;
	// bending then gives no contribution.
	rb := 0.0
	if math.IsNaN(sx) {
		rb = sx
	} else if sx < 0 {
		rb = math.Abs(sx / buckling.SigmaBendingCrit(b, c.Section.Tw, e))
	}

	return buckling.Interaction(rs, rb)
}

// RFLateral returns the reserve factor against lateral-torsional buckling,
// Fcr = 4.2/d² · √(E·G·Iyy·It) with d the stabiliser spacing.
func (c *Cantilever) RFLateral(f float64) float64 {
	return math.Abs(c.CriticalLateralLoad() / f)
}

// CriticalLateralLoad returns the tip load at which the beam buckles
// laterally between stabilisers.
func (c *Cantilever) CriticalLateralLoad() float64 {
	e := c.Material.E
	g := c.Material.G()
	return (4.2 / (c.DStab * c.DStab)) * math.Sqrt(e*g*c.Props.Iyy*c.Props.It)
}

func (c *Cantilever) compressionFace(s1, s2 float64) float64 {
	if c.compression == CompressionFaceMin {
		return math.Min(s1, s2)
	}
	return math.Max(s1, s2)
}

func tension(s, allow float64) float64 {
	switch {
	case math.IsNaN(s):
		return s
	case s > 0:
		return allow / s
	}
	return math.Inf(1)
}

func compression(s, allow float64) float64 {
	switch {
	case math.IsNaN(s):
		return s
	case s < 0:
		return allow / math.Abs(s)
	}
	return math.Inf(1)
}

func flangeBuckling(s, allow float64) float64 {
	switch {
	case math.IsNaN(s):
		return s
	case s >= 0:
		return math.Inf(1)
	}
	return math.Abs(allow / s)
}
