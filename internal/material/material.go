package material

import (
	"fmt"
)

// Material holds the elastic constants, strength allowables, density and unit
// costs of a metallic alloy used for machined beams.
type Material struct {
	Name string `json:"name"`

	// Elastic constants
	E  float64 `json:"E"`  // Young's modulus (MPa)
	Nu float64 `json:"nu"` // Poisson ratio

	// Strength allowables (MPa)
	Ftu float64 `json:"ftu"` // ultimate tension
	Fty float64 `json:"fty"` // yield tension
	Fcy float64 `json:"fcy"` // yield compression
	Fsu float64 `json:"fsu"` // ultimate shear

	Rho   float64 `json:"rho"`   // density (kg/mm³)
	CMat  float64 `json:"cmat"`  // raw material cost (€/kg)
	CProd float64 `json:"cprod"` // machining cost (€/kg)
}

// Built-in alloys
var (
	AL7010 = Material{
		Name:  "AL7010",
		E:     71000,
		Nu:    0.33,
		Ftu:   515,
		Fty:   455,
		Fcy:   440,
		Fsu:   295,
		Rho:   2.82e-6,
		CMat:  5,
		CProd: 5,
	}

	AL2198 = Material{
		Name:  "AL2198",
		E:     76000,
		Nu:    0.33,
		Ftu:   495,
		Fty:   430,
		Fcy:   415,
		Fsu:   270,
		Rho:   2.69e-6,
		CMat:  10,
		CProd: 10,
	}

	TI64 = Material{
		Name:  "TI64",
		E:     110000,
		Nu:    0.33,
		Ftu:   900,
		Fty:   800,
		Fcy:   780,
		Fsu:   520,
		Rho:   4.5e-6,
		CMat:  60,
		CProd: 60,
	}
)

// G returns the shear modulus of an isotropic material.
func (m Material) G() float64 {
	return m.E / (2 * (1 + m.Nu))
}

// Validate checks that every property is strictly positive and that the
// Poisson ratio lies in (0, 0.5).
func (m Material) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidMaterial)
	}
	fields := []struct {
		name  string
		value float64
	}{
		{"E", m.E},
		{"ftu", m.Ftu},
		{"fty", m.Fty},
		{"fcy", m.Fcy},
		{"fsu", m.Fsu},
		{"rho", m.Rho},
		{"cmat", m.CMat},
		{"cprod", m.CProd},
	}
	for _, f := range fields {
		if !(f.value > 0) {
			return fmt.Errorf("%w: %s: %s must be positive, got %g", ErrInvalidMaterial, m.Name, f.name, f.value)
		}
	}
	if !(m.Nu > 0 && m.Nu < 0.5) {
		return fmt.Errorf("%w: %s: nu must lie in (0, 0.5), got %g", ErrInvalidMaterial, m.Name, m.Nu)
	}
	return nil
}
