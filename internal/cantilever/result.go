package cantilever

import "math"

// ReserveFactors holds one reserve factor per failure mode
type ReserveFactors struct {
	TensionUpper       float64 `json:"rf_t_uf"`
	TensionLower       float64 `json:"rf_t_lf"`
	CompressionUpper   float64 `json:"rf_c_uf"`
	CompressionLower   float64 `json:"rf_c_lf"`
	LocalBucklingUpper float64 `json:"rf_lb_uf"`
	LocalBucklingLower float64 `json:"rf_lb_lf"`
	WebShear           float64 `json:"rf_s_web"`
	WebBuckling        float64 `json:"rf_wb"`
	LateralTorsional   float64 `json:"rf_lat"`
}

// Mode names in record order
const (
	ModeTensionUpper       = "rf_t_uf"
	ModeTensionLower       = "rf_t_lf"
	ModeCompressionUpper   = "rf_c_uf"
	ModeCompressionLower   = "rf_c_lf"
	ModeLocalBucklingUpper = "rf_lb_uf"
	ModeLocalBucklingLower = "rf_lb_lf"
	ModeWebShear           = "rf_s_web"
	ModeWebBuckling        = "rf_wb"
	ModeLateralTorsional   = "rf_lat"
)

// Modes lists the failure mode names in record order.
var Modes = []string{
	ModeTensionUpper,
	ModeTensionLower,
	ModeCompressionUpper,
	ModeCompressionLower,
	ModeLocalBucklingUpper,
	ModeLocalBucklingLower,
	ModeWebShear,
	ModeWebBuckling,
	ModeLateralTorsional,
}

// Values returns the reserve factors in the order of Modes.
func (r ReserveFactors) Values() []float64 {
	return []float64{
		r.TensionUpper,
		r.TensionLower,
		r.CompressionUpper,
		r.CompressionLower,
		r.LocalBucklingUpper,
		r.LocalBucklingLower,
		r.WebShear,
		r.WebBuckling,
		r.LateralTorsional,
	}
}

// Governing returns the failure mode with the smallest reserve factor. A NaN
// reserve factor governs, so that evaluation errors are not hidden.
func (r ReserveFactors) Governing() (string, float64) {
	mode, rf := "", math.Inf(1)
	for i, v := range r.Values() {
		if math.IsNaN(v) {
			return Modes[i], v
		}
		if mode == "" || v < rf {
			mode, rf = Modes[i], v
		}
	}
	return mode, rf
}

// Feasible reports whether no failure mode has a reserve factor below one.
func (r ReserveFactors) Feasible() bool {
	_, rf := r.Governing()
	return rf >= 1
}

func infiniteReserve() ReserveFactors {
	inf := math.Inf(1)
	return ReserveFactors{inf, inf, inf, inf, inf, inf, inf, inf, inf}
}

// worst folds o into r keeping the smaller factor of every mode. NaN
// propagates.
func (r *ReserveFactors) worst(o ReserveFactors) {
	r.TensionUpper = math.Min(r.TensionUpper, o.TensionUpper)
	r.TensionLower = math.Min(r.TensionLower, o.TensionLower)
	r.CompressionUpper = math.Min(r.CompressionUpper, o.CompressionUpper)
	r.CompressionLower = math.Min(r.CompressionLower, o.CompressionLower)
	r.LocalBucklingUpper = math.Min(r.LocalBucklingUpper, o.LocalBucklingUpper)
	r.LocalBucklingLower = math.Min(r.LocalBucklingLower, o.LocalBucklingLower)
	r.WebShear = math.Min(r.WebShear, o.WebShear)
	r.WebBuckling = math.Min(r.WebBuckling, o.WebBuckling)
	r.LateralTorsional = math.Min(r.LateralTorsional, o.LateralTorsional)
}

// Single is the result of one load case
type Single struct {
	WMax float64 `json:"wmax"` // tip deflection, signed (mm)
	ReserveFactors
	Mass float64 `json:"mass"` // kg
	Cost float64 `json:"cost"` // €
}

// Summary is the worst case over a load set, with the design inputs echoed
// so that a batch of summaries forms a self-describing table.
type Summary struct {
	WMax float64 `json:"wmax"` // largest tip deflection magnitude (mm)
	ReserveFactors
	FMax float64 `json:"Fmax"` // largest load magnitude (N)
	Mass float64 `json:"mass"` // kg
	Cost float64 `json:"cost"` // €
	Area float64 `json:"area"` // mm²

	L   float64 `json:"L"`
	H   float64 `json:"h"`
	Tw  float64 `json:"tw"`
	Blf float64 `json:"blf"`
	Tlf float64 `json:"tlf"`
	Buf float64 `json:"buf"`
	Tuf float64 `json:"tuf"`

	MatName string `json:"matname"`
}

// ReserveFactors evaluates every failure mode for the end load f.
func (c *Cantilever) ReserveFactors(f float64) ReserveFactors {
	return ReserveFactors{
		TensionUpper:       c.RFTensionUpper(f),
		TensionLower:       c.RFTensionLower(f),
		CompressionUpper:   c.RFCompressionUpper(f),
		CompressionLower:   c.RFCompressionLower(f),
		LocalBucklingUpper: c.RFLocalBucklingUpper(f),
		LocalBucklingLower: c.RFLocalBucklingLower(f),
		WebShear:           c.RFWebShear(f),
		WebBuckling:        c.RFWebBuckling(f),
		LateralTorsional:   c.RFLateral(f),
	}
}

// AnalyseSingle returns the full result for a single end load.
func (c *Cantilever) AnalyseSingle(f float64) Single {
	return Single{
		WMax:           c.WMax(f),
		ReserveFactors: c.ReserveFactors(f),
		Mass:           c.Mass(),
		Cost:           c.Cost(),
	}
}

// Analyse returns the worst case over loads: the largest deflection and load
// magnitudes and the smallest reserve factor of every mode. An empty load
// set gives zero deflection and infinite reserve factors.
func (c *Cantilever) Analyse(loads []float64) Summary {
	s := Summary{
		ReserveFactors: infiniteReserve(),
	}

	for _, f := range loads {
		s.WMax = math.Max(s.WMax, math.Abs(c.WMax(f)))
		s.ReserveFactors.worst(c.ReserveFactors(f))
		s.FMax = math.Max(s.FMax, math.Abs(f))
	}

	s.Mass = c.Mass()
	s.Cost = c.Cost()
	s.Area = c.Props.Area

	s.L = c.L
	s.H = c.Section.H
	s.Tw = c.Section.Tw
	s.Blf = c.Section.Blf
	s.Tlf = c.Section.Tlf
	s.Buf = c.Section.Buf
	s.Tuf = c.Section.Tuf
	s.MatName = c.Material.Name

	return s
}
