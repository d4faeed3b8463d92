package loads

import "math"

// Combination is a set of load factors applied to the unfactored tip forces
// of each load type. Factors follow NSCP 2015 Section 203.3.1 - Basic Load
// Combinations (strength design).
type Combination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
	Rain       float64 // R - Rain load
}

// Forces holds the unfactored tip forces of each load type (N, signed).
// Wind and earthquake act in either direction; give them with the sign of
// the direction under study, Set evaluates both.
type Forces struct {
	Dead       float64
	Live       float64
	Roof       float64
	Wind       float64
	Earthquake float64
	Rain       float64
}

// Basic strength design combinations
var Combinations = []Combination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.6,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "3",
		Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)",
		Dead:        1.2,
		Live:        1.0,
		Roof:        1.6,
		Rain:        1.6,
		Wind:        0.5,
	},
	{
		ID:          "4",
		Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.0,
		Wind:        1.0,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "5",
		Description: "1.2D + 1.0E + 1.0L",
		Dead:        1.2,
		Live:        1.0,
		Earthquake:  1.0,
	},
	{
		ID:          "6",
		Description: "0.9D + 1.0W",
		Dead:        0.9,
		Wind:        1.0,
	},
	{
		ID:          "7",
		Description: "0.9D + 1.0E",
		Dead:        0.9,
		Earthquake:  1.0,
	},
}

// Gravity combinations, used when no lateral load acts on the cantilever
var GravityCombinations = []Combination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L",
		Dead:        1.2,
		Live:        1.6,
	},
}

// Factored returns the factored tip force of the combination
func (c Combination) Factored(f Forces) float64 {
	return c.Dead*f.Dead +
		c.Live*f.Live +
		c.Roof*f.Roof +
		c.Wind*f.Wind +
		c.Earthquake*f.Earthquake +
		c.Rain*f.Rain
}

// reversed returns the forces with the lateral loads acting the other way
func (f Forces) reversed() Forces {
	f.Wind = -f.Wind
	f.Earthquake = -f.Earthquake
	return f
}

// Case is a factored end load together with the combination it came from
type Case struct {
	Combination Combination
	Reversed    bool // lateral loads reversed
	F           float64
}

// Cases evaluates every combination for the forces. Combinations with a
// lateral load are evaluated a second time with the lateral loads reversed.
func Cases(f Forces, combinations []Combination) []Case {
	var out []Case
	for _, combo := range combinations {
		out = append(out, Case{Combination: combo, F: combo.Factored(f)})
		if (combo.Wind != 0 && f.Wind != 0) || (combo.Earthquake != 0 && f.Earthquake != 0) {
			out = append(out, Case{Combination: combo, Reversed: true, F: combo.Factored(f.reversed())})
		}
	}
	return out
}

// Set returns the end loads of Cases, ready to be passed to Analyse.
func Set(f Forces, combinations []Combination) []float64 {
	cases := Cases(f, combinations)
	loads := make([]float64, len(cases))
	for i, c := range cases {
		loads[i] = c.F
	}
	return loads
}

// Governing finds the case with the largest end load magnitude
func Governing(f Forces, combinations []Combination) Case {
	var governing Case
	for _, c := range Cases(f, combinations) {
		if math.Abs(c.F) > math.Abs(governing.F) {
			governing = c
		}
	}
	return governing
}
