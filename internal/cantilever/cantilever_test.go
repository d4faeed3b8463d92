package cantilever_test

import (
	"math"
	"testing"

	"github.com/okoham/ibeam/internal/cantilever"
	"github.com/okoham/ibeam/internal/material"
	"github.com/okoham/ibeam/internal/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

var referenceSection = section.Geometry{H: 100, Tw: 2, Blf: 40, Tlf: 3, Buf: 40, Tuf: 3}

func newReference(t *testing.T, opts ...cantilever.Option) *cantilever.Cantilever {
	t.Helper()
	c, err := cantilever.New(material.Default(), "AL7010", 2000, referenceSection, opts...)
	require.NoError(t, err)
	return c
}

func inf() float64 { return math.Inf(1) }

func TestNew_UnknownMaterial(t *testing.T) {
	_, err := cantilever.New(material.Default(), "AL6061", 2000, referenceSection)
	require.ErrorIs(t, err, material.ErrUnknownMaterial)
}

func TestNew_Defaults(t *testing.T) {
	c := newReference(t)
	assert.Equal(t, 2000.0, c.DStab)
	assert.Equal(t, cantilever.CompressionFaceMax, c.CompressionPolicy())
	assert.Equal(t, 428.0, c.Props.Area)

	c = newReference(t, cantilever.WithStabilizerSpacing(500))
	assert.Equal(t, 500.0, c.DStab)

	c = newReference(t, cantilever.WithStabilizerSpacing(0))
	assert.Equal(t, 2000.0, c.DStab)
}

func TestNew_GeometryCheck(t *testing.T) {
	bad := section.Geometry{H: 5, Tw: 2, Blf: 40, Tlf: 3, Buf: 40, Tuf: 3}

	c, err := cantilever.New(material.Default(), "AL7010", 2000, bad)
	require.NoError(t, err, "degenerate sections are evaluated unless checking is enabled")
	assert.Less(t, c.Props.AW, 0.0)

	_, err = cantilever.New(material.Default(), "AL7010", 2000, bad, cantilever.WithGeometryCheck())
	require.ErrorIs(t, err, section.ErrDegenerateGeometry)

	_, err = cantilever.New(material.Default(), "AL7010", 0, referenceSection, cantilever.WithGeometryCheck())
	require.ErrorIs(t, err, cantilever.ErrInvalidSpan)
}

func TestInternalLoads(t *testing.T) {
	c := newReference(t)

	assert.Equal(t, 6000.0, c.Qz(6000, 0))
	assert.Equal(t, 6000.0, c.Qz(6000, 2000))
	assert.True(t, math.IsNaN(c.Qz(6000, -1)))
	assert.True(t, math.IsNaN(c.Qz(6000, 2001)))

	assert.Equal(t, -12e6, c.My(6000, 0))
	assert.Equal(t, -6e6, c.My(6000, 1000))
	assert.Equal(t, 0.0, c.My(6000, 2000))
	assert.True(t, math.IsNaN(c.My(6000, 2000.5)))
}

func TestStress(t *testing.T) {
	c := newReference(t)

	// zero at the centroid, for any load and station
	for _, f := range []float64{6000, -10000, 1} {
		for _, x := range []float64{0, 500, 2000} {
			assert.InDelta(t, 0, c.Stress(f, x, c.Props.Cg), tol)
		}
	}

	// positive tip load compresses the upper fiber at the root
	top := c.Stress(6000, 0, 100)
	bottom := c.Stress(6000, 0, 0)
	assert.Less(t, top, 0.0)
	assert.Greater(t, bottom, 0.0)
	assert.InDelta(t, -12e6*50/703150.6666666666, top, tol)

	// outside the section height
	assert.True(t, math.IsNaN(c.Stress(6000, 0, -1)))
	assert.True(t, math.IsNaN(c.Stress(6000, 0, 101)))
	// outside the span
	assert.True(t, math.IsNaN(c.Stress(6000, -1, 50)))
}

func TestWMax_Scaling(t *testing.T) {
	c := newReference(t)
	assert.InDelta(t, 320.4890834340715, c.WMax(6000), 1e-9)
	assert.InDelta(t, 2*c.WMax(3000), c.WMax(6000), 1e-9)
	assert.InDelta(t, -c.WMax(6000), c.WMax(-6000), 1e-9)

	long, err := cantilever.New(material.Default(), "AL7010", 4000, referenceSection)
	require.NoError(t, err)
	assert.InDelta(t, 8*c.WMax(6000), long.WMax(6000), 1e-6)
}

func TestTauWeb(t *testing.T) {
	c := newReference(t)
	assert.InDelta(t, 6000.0/188, c.TauWeb(6000, 0), tol)
	assert.InDelta(t, 6000.0/188, c.TauWeb(-6000, 0), tol)
	assert.True(t, math.IsNaN(c.TauWeb(6000, -5)))
}

func TestAnalyseSingle_Reference(t *testing.T) {
	c := newReference(t)

	tests := []struct {
		f    float64
		want cantilever.Single
	}{
		{
			f: 6000,
			want: cantilever.Single{
				WMax: 320.4890834340715,
				ReserveFactors: cantilever.ReserveFactors{
					TensionUpper:       inf(),
					TensionLower:       0.6035376555555555,
					CompressionUpper:   0.5485572576832151,
					CompressionLower:   inf(),
					LocalBucklingUpper: 0.7613018111357339,
					LocalBucklingLower: inf(),
					WebShear:           6.162222222222222,
					WebBuckling:        0.851714497971931,
					LateralTorsional:   0.20066193861321013,
				},
				Mass: 2.41392,
				Cost: 263.7618192,
			},
		},
		{
			f: -10000,
			want: cantilever.Single{
				WMax: -534.1484723901192,
				ReserveFactors: cantilever.ReserveFactors{
					TensionUpper:       0.3621225933333333,
					TensionLower:       inf(),
					CompressionUpper:   inf(),
					CompressionLower:   0.329134354609929,
					LocalBucklingUpper: inf(),
					LocalBucklingLower: 0.45678108668144035,
					WebShear:           3.6973333333333334,
					WebBuckling:        0.5110286987831586,
					LateralTorsional:   0.12039716316792608,
				},
				Mass: 2.41392,
				Cost: 263.7618192,
			},
		},
	}

	for _, tt := range tests {
		got := c.AnalyseSingle(tt.f)
		assert.InDelta(t, tt.want.WMax, got.WMax, 1e-9)
		assert.InDelta(t, tt.want.Mass, got.Mass, 1e-9)
		assert.InDelta(t, tt.want.Cost, got.Cost, 1e-9)

		want, have := tt.want.Values(), got.Values()
		for i, mode := range cantilever.Modes {
			assertRF(t, want[i], have[i], "F=%g %s", tt.f, mode)
		}
	}
}

func TestAnalyseSingle_AsymmetricWithStabilisers(t *testing.T) {
	g := section.Geometry{H: 120, Tw: 3, Blf: 60, Tlf: 6, Buf: 40, Tuf: 4}
	c, err := cantilever.New(material.Default(), "TI64", 1500, g, cantilever.WithStabilizerSpacing(500))
	require.NoError(t, err)

	got := c.AnalyseSingle(8000)
	assert.InDelta(t, 43.011938687945126, got.WMax, 1e-9)
	assert.InDelta(t, 3.024857632826141, got.TensionLower, 1e-9)
	assert.InDelta(t, 1.7962343217683587, got.CompressionUpper, 1e-9)
	assert.InDelta(t, 4.107456352436115, got.LocalBucklingUpper, 1e-9)
	assert.InDelta(t, 14.3, got.WebShear, 1e-9)
	assert.InDelta(t, 3.948052205476602, got.WebBuckling, 1e-9)
	assert.InDelta(t, 15.447469782668357, got.LateralTorsional, 1e-9)
	assert.InDelta(t, 5.7375, got.Mass, 1e-9)
	assert.InDelta(t, 6418.65384, got.Cost, 1e-6)
}

func TestAnalyse_WorstCase(t *testing.T) {
	c := newReference(t)
	loads := []float64{6000, -10000}

	s := c.Analyse(loads)
	a, b := c.AnalyseSingle(loads[0]), c.AnalyseSingle(loads[1])

	assert.Equal(t, math.Max(math.Abs(a.WMax), math.Abs(b.WMax)), s.WMax)
	assert.Equal(t, 10000.0, s.FMax)
	av, bv, sv := a.Values(), b.Values(), s.Values()
	for i, mode := range cantilever.Modes {
		assert.Equal(t, math.Min(av[i], bv[i]), sv[i], mode)
	}

	assert.InDelta(t, 534.1484723901192, s.WMax, 1e-9)
	assert.InDelta(t, 0.329134354609929, s.CompressionLower, 1e-9)
	assert.InDelta(t, 0.12039716316792608, s.LateralTorsional, 1e-9)

	assert.Equal(t, 428.0, s.Area)
	assert.Equal(t, a.Mass, s.Mass)
	assert.Equal(t, a.Cost, s.Cost)
	assert.Equal(t, 2000.0, s.L)
	assert.Equal(t, 100.0, s.H)
	assert.Equal(t, 2.0, s.Tw)
	assert.Equal(t, 40.0, s.Blf)
	assert.Equal(t, 3.0, s.Tlf)
	assert.Equal(t, 40.0, s.Buf)
	assert.Equal(t, 3.0, s.Tuf)
	assert.Equal(t, "AL7010", s.MatName)

	mode, rf := s.Governing()
	assert.Equal(t, cantilever.ModeLateralTorsional, mode)
	assert.Equal(t, s.LateralTorsional, rf)
	assert.False(t, s.Feasible())
}

func TestAnalyse_EmptyLoadSet(t *testing.T) {
	s := newReference(t).Analyse(nil)
	assert.Equal(t, 0.0, s.WMax)
	assert.Equal(t, 0.0, s.FMax)
	for _, v := range s.Values() {
		assert.True(t, math.IsInf(v, 1))
	}
	assert.True(t, s.Feasible())
}

func TestZeroLoad(t *testing.T) {
	r := newReference(t).ReserveFactors(0)
	for i, v := range r.Values() {
		assert.True(t, math.IsInf(v, 1), cantilever.Modes[i])
	}
}

func assertRF(t *testing.T, want, got float64, msgAndArgs ...interface{}) {
	t.Helper()
	if math.IsInf(want, 1) {
		assert.True(t, math.IsInf(got, 1), msgAndArgs...)
		return
	}
	assert.InDelta(t, want, got, 1e-9, msgAndArgs...)
}

func TestSignReversal(t *testing.T) {
	ti := section.Geometry{H: 120, Tw: 3, Blf: 60, Tlf: 6, Buf: 40, Tuf: 4}
	for _, g := range []section.Geometry{referenceSection, ti} {
		strict, err := cantilever.New(material.Default(), "AL2198", 1800, g,
			cantilever.WithCompressionFace(cantilever.CompressionFaceMin))
		require.NoError(t, err)
		literal, err := cantilever.New(material.Default(), "AL2198", 1800, g)
		require.NoError(t, err)

		m := strict.Material
		for _, f := range []float64{6000, -10000, 1} {
			assertRF(t, strict.RFTensionUpper(f)/m.Ftu, strict.RFCompressionUpper(-f)/m.Fcy, "F=%g", f)
			assertRF(t, strict.RFTensionLower(f)/m.Ftu, strict.RFCompressionLower(-f)/m.Fcy, "F=%g", f)

			// the literal policy reads the less stressed face
			assert.GreaterOrEqual(t, literal.RFCompressionUpper(-f)/m.Fcy, literal.RFTensionUpper(f)/m.Ftu)
			assert.GreaterOrEqual(t, literal.RFCompressionLower(-f)/m.Fcy, literal.RFTensionLower(f)/m.Ftu)

			assert.Equal(t, strict.RFWebShear(f), strict.RFWebShear(-f))
			assert.Equal(t, strict.RFLateral(f), strict.RFLateral(-f))
		}
	}
}

func TestCompressionFacePolicy(t *testing.T) {
	// The outer face of a compressed flange is further from the centroid
	// than the inner one, so the two policies read different stresses.
	literal := newReference(t)
	strict := newReference(t, cantilever.WithCompressionFace(cantilever.CompressionFaceMin))

	f := 6000.0
	sOuter := literal.Stress(f, 0, 100)
	sInner := literal.Stress(f, 0, 97)
	require.Less(t, sOuter, sInner)

	assert.InDelta(t, 440/math.Abs(sInner), literal.RFCompressionUpper(f), 1e-12)
	assert.InDelta(t, 440/math.Abs(sOuter), strict.RFCompressionUpper(f), 1e-12)
	assert.Less(t, strict.RFCompressionUpper(f), literal.RFCompressionUpper(f))

	// tension checks are unaffected
	assert.Equal(t, literal.RFTensionLower(f), strict.RFTensionLower(f))
}

func TestParseCompressionFace(t *testing.T) {
	p, err := cantilever.ParseCompressionFace("min")
	require.NoError(t, err)
	assert.Equal(t, cantilever.CompressionFaceMin, p)
	assert.Equal(t, "min", p.String())

	p, err = cantilever.ParseCompressionFace("")
	require.NoError(t, err)
	assert.Equal(t, cantilever.CompressionFaceMax, p)

	_, err = cantilever.ParseCompressionFace("avg")
	require.Error(t, err)
}

func TestWebBuckling_TensionWeb(t *testing.T) {
	// A web entirely on one side of the centroid carries no compressive
	// bending stress, only the shear ratio remains.
	g := section.Geometry{H: 40, Tw: 2, Blf: 200, Tlf: 30, Buf: 10, Tuf: 2}
	c, err := cantilever.New(material.Default(), "AL7010", 1000, g)
	require.NoError(t, err)

	f := -5000.0
	upper := c.Stress(f, 0, g.H-g.Tuf)
	lower := c.Stress(f, 0, g.Tlf)
	require.GreaterOrEqual(t, math.Min(upper, lower), 0.0)

	tau := c.TauWeb(f, 0)
	tcr := 5.3 * math.Pi * math.Pi * math.Pow(g.Tw/c.Props.WebHeight, 2) * 71000 / (12 * (1 - 0.33*0.33))
	assert.InDelta(t, tcr/tau, c.RFWebBuckling(f), 1e-9)
}

func TestMassAndCost_Monotonic(t *testing.T) {
	reg := material.Default()
	prev, prevCost := 0.0, 0.0
	for _, l := range []float64{500, 1000, 2000, 4000} {
		c, err := cantilever.New(reg, "AL7010", l, referenceSection)
		require.NoError(t, err)
		assert.Greater(t, c.Mass(), prev)
		assert.Greater(t, c.Cost(), prevCost)
		assert.Greater(t, c.BilletMass(), c.Mass())
		prev, prevCost = c.Mass(), c.Cost()
	}

	// growing the envelope raises mass and cost together
	prev, prevCost = 0.0, 0.0
	for _, h := range []float64{60, 100, 140, 200} {
		g := referenceSection
		g.H = h
		c, err := cantilever.New(reg, "AL7010", 2000, g)
		require.NoError(t, err)
		assert.Greater(t, c.Mass(), prev)
		assert.Greater(t, c.Cost(), prevCost)
		prev, prevCost = c.Mass(), c.Cost()
	}

	// within a fixed envelope extra area means less machining
	thin := newReference(t)
	thickWeb, err := cantilever.New(reg, "AL7010", 2000, section.Geometry{H: 100, Tw: 4, Blf: 40, Tlf: 3, Buf: 40, Tuf: 3})
	require.NoError(t, err)
	assert.Greater(t, thickWeb.Mass(), thin.Mass())
	assert.Equal(t, thin.BilletMass(), thickWeb.BilletMass())
	assert.InDelta(t, thin.Cost()-(thickWeb.Mass()-thin.Mass())*5, thickWeb.Cost(), 1e-9)
}

func TestNaNPropagatesThroughAnalyse(t *testing.T) {
	// An upper flange thicker than the section puts the inner face below
	// z = 0, outside the section.
	g := section.Geometry{H: 10, Tw: 2, Blf: 20, Tlf: 1, Buf: 20, Tuf: 12}
	c, err := cantilever.New(material.Default(), "AL7010", 1000, g)
	require.NoError(t, err)

	s := c.Analyse([]float64{1000, -1000})
	assert.True(t, math.IsNaN(s.TensionUpper))
	mode, rf := s.Governing()
	assert.True(t, math.IsNaN(rf))
	assert.Equal(t, cantilever.ModeTensionUpper, mode)
	assert.False(t, s.Feasible())
}
