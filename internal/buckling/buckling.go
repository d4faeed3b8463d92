// Package buckling provides closed-form critical stresses of thin plates for
// the boundary conditions met in I-section webs and flange outstands.
package buckling

import "math"

// Buckling coefficients read from the HSB design curves
const (
	// HSB 45112-01, figure 1, curve 3: shear, all edges simply supported,
	// aspect ratio → infinity
	KShear = 5.3

	// HSB 45111-01, figure 1, curve 2: pure bending, all edges simply
	// supported, aspect ratio → infinity
	KBending = 21.58

	// HSB 54111-01, figure 2, case 14: three edges simply supported, one
	// free, aspect ratio → infinity
	KFlange = 0.367
)

// TauCrit returns the shear buckling stress of a long simply supported plate
// of width b and thickness t.
func TauCrit(b, t, e, nu float64) float64 {
	return KShear * math.Pi * math.Pi * (t / b) * (t / b) * e / (12 * (1 - nu*nu))
}

// SigmaBendingCrit returns the buckling stress of a long simply supported
// plate loaded in pure in-plane bending (σmax = -σmin).
func SigmaBendingCrit(b, t, e float64) float64 {
	return KBending * e * (t / b) * (t / b)
}

// SigmaFlangeCrit returns the compressive buckling stress of a flange
// outstand of width b: three edges simply supported, one edge free.
func SigmaFlangeCrit(b, t, e float64) float64 {
	return KFlange * e * (t / b) * (t / b)
}

// Interaction combines a shear ratio and a bending ratio into a single
// reserve factor, HSB 45113-01 Eq. 3-1.
func Interaction(rs, rb float64) float64 {
	return 1 / math.Sqrt(rs*rs+rb*rb)
}
