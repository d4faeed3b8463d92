package cantilever

import "math"

// Qz returns the shear force at x. It is constant along the span for a
// single tip load; x outside [0, L] yields NaN.
func (c *Cantilever) Qz(f, x float64) float64 {
	if x < 0 || x > c.L {
		return math.NaN()
	}
	return f
}

// My returns the bending moment at x. The moment grows linearly towards the
// clamped end; x outside [0, L] yields NaN.
func (c *Cantilever) My(f, x float64) float64 {
	if x < 0 || x > c.L {
		return math.NaN()
	}
	return -f * (c.L - x)
}

// Stress returns the normal stress σx at station x and height z, measured
// from the lower extreme fiber. z outside [0, h] yields NaN.
func (c *Cantilever) Stress(f, x, z float64) float64 {
	if z < 0 || z > c.Section.H {
		return math.NaN()
	}
	return c.My(f, x) * (z - c.Props.Cg) / c.Props.Iyy
}

// WMax returns the tip deflection, w = F·L³ / (3·E·Iyy).
func (c *Cantilever) WMax(f float64) float64 {
	return f * c.L * c.L * c.L / (3 * c.Material.E * c.Props.Iyy)
}

// TauWeb returns the average shear stress in the web at x.
func (c *Cantilever) TauWeb(f, x float64) float64 {
	return math.Abs(c.Qz(f, x) / c.Props.AW)
}

// faceStresses returns the root stresses at the two given heights
func (c *Cantilever) faceStresses(f, z1, z2 float64) (float64, float64) {
	return c.Stress(f, 0, z1), c.Stress(f, 0, z2)
}
