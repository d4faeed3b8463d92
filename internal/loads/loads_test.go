package loads_test

import (
	"testing"

	"github.com/okoham/ibeam/internal/loads"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want []float64
	}{
		{"6000,-10000", []float64{6000, -10000}},
		{"6000, -10000", []float64{6000, -10000}},
		{" 1e3 ;-2.5e3\t7 ", []float64{1000, -2500, 7}},
		{"", []float64{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := loads.Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"6000,abc", "NaN", "1,+Inf"} {
		_, err := loads.Parse(in)
		require.ErrorIs(t, err, loads.ErrInvalidLoad, in)
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	s := loads.Format(loads.Default)
	assert.Equal(t, "6000,-10000", s)

	got, err := loads.Parse(s)
	require.NoError(t, err)
	assert.Equal(t, loads.Default, got)
}

func TestFactored(t *testing.T) {
	f := loads.Forces{Dead: 1000, Live: 2000}
	assert.InDelta(t, 1400.0, loads.GravityCombinations[0].Factored(f), 1e-9)
	assert.InDelta(t, 1.2*1000+1.6*2000, loads.GravityCombinations[1].Factored(f), 1e-9)
}

func TestCases_ReversesLateralLoads(t *testing.T) {
	f := loads.Forces{Dead: 1000, Live: 500, Wind: 3000}

	cases := loads.Cases(f, loads.Combinations)
	// combinations 3, 4 and 6 carry wind and are evaluated twice
	require.Len(t, cases, len(loads.Combinations)+3)

	var found bool
	for _, c := range cases {
		if c.Combination.ID == "6" && c.Reversed {
			found = true
			assert.InDelta(t, 0.9*1000-3000, c.F, 1e-9)
		}
	}
	assert.True(t, found)

	set := loads.Set(f, loads.Combinations)
	require.Len(t, set, len(cases))
	for i := range cases {
		assert.Equal(t, cases[i].F, set[i])
	}
}

func TestGoverning(t *testing.T) {
	f := loads.Forces{Dead: 1000, Live: 500, Wind: 3000}
	g := loads.Governing(f, loads.Combinations)

	// 1.2D + 1.0W + 1.0L = 1200 + 3000 + 500
	assert.Equal(t, "4", g.Combination.ID)
	assert.False(t, g.Reversed)
	assert.InDelta(t, 4700.0, g.F, 1e-9)

	g = loads.Governing(loads.Forces{Dead: 1000, Live: 2000}, loads.GravityCombinations)
	assert.Equal(t, "2", g.Combination.ID)
}
