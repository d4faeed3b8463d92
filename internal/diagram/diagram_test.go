package diagram_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okoham/ibeam/internal/cantilever"
	"github.com/okoham/ibeam/internal/diagram"
	"github.com/okoham/ibeam/internal/material"
	"github.com/okoham/ibeam/internal/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reference = section.Geometry{H: 100, Tw: 2, Blf: 40, Tlf: 3, Buf: 40, Tuf: 3}

func newBeam(t *testing.T) *cantilever.Cantilever {
	t.Helper()
	c, err := cantilever.New(material.Default(), "AL7010", 2000, reference)
	require.NoError(t, err)
	return c
}

func TestStressProfile(t *testing.T) {
	c := newBeam(t)
	p := diagram.StressProfile(c, 6000, 10)

	require.Len(t, p.X, 11)
	assert.Equal(t, 0.0, p.X[0])
	assert.Equal(t, 100.0, p.X[10])
	// symmetric section: zero at mid-height, opposite signs at the faces
	assert.InDelta(t, 0, p.Y[5], 1e-9)
	assert.InDelta(t, -p.Y[0], p.Y[10], 1e-9)
	assert.Greater(t, p.Y[0], 0.0, "positive load stretches the lower fiber")
}

func TestMomentProfile(t *testing.T) {
	c := newBeam(t)
	p := diagram.MomentProfile(c, 6000, 4)

	assert.Equal(t, []float64{0, 500, 1000, 1500, 2000}, p.X)
	assert.Equal(t, -12e6, p.Y[0])
	assert.Equal(t, 0.0, p.Y[4])
}

func TestDrawSection(t *testing.T) {
	g := section.Geometry{H: 120, Tw: 3, Blf: 60, Tlf: 6, Buf: 40, Tuf: 4}
	out := diagram.DrawSection(g, section.Compute(g))

	assert.Contains(t, out, "upper flange 40.0 × 4.0")
	assert.Contains(t, out, "lower flange 60.0 × 6.0")
	assert.Contains(t, out, "cg = 47.2 mm")

	lines := strings.Split(out, "\n")
	var top, bottom string
	for _, l := range lines {
		if strings.Contains(l, "upper flange") {
			top = l
		}
		if strings.Contains(l, "lower flange") {
			bottom = l
		}
	}
	assert.Less(t, strings.Count(top, "█"), strings.Count(bottom, "█"))
}

func TestDrawSection_Empty(t *testing.T) {
	out := diagram.DrawSection(section.Geometry{}, section.Properties{})
	assert.Contains(t, out, "no section")
}

func TestDrawProfile(t *testing.T) {
	c := newBeam(t)
	out := diagram.DrawProfile(diagram.StressProfile(c, 6000, 20), "root stress")
	assert.Contains(t, out, "root stress")
	assert.Greater(t, strings.Count(out, "\n"), 10)

	assert.Contains(t, diagram.DrawProfile(diagram.Profile{}, "empty"), "no data")
}

func TestDrawSummaryBox(t *testing.T) {
	out := diagram.DrawSummaryBox("RESULT", []string{"mass = 2.41 kg", "governing rf_lat"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	for _, l := range lines[1:] {
		assert.Equal(t, len([]rune(lines[0])), len([]rune(l)), "box edges line up")
	}
}

func TestOutline(t *testing.T) {
	pts := diagram.Outline(reference)
	require.Len(t, pts, 13)
	assert.Equal(t, pts[0], pts[12], "outline is closed")
}

func TestExports(t *testing.T) {
	dir := t.TempDir()
	c := newBeam(t)

	sectionFile := filepath.Join(dir, "section.png")
	require.NoError(t, diagram.ExportSection(c.Section, c.Props, sectionFile))
	assert.FileExists(t, sectionFile)

	stressFile := filepath.Join(dir, "plots", "stress.svg")
	require.NoError(t, diagram.ExportStressProfile(c, []float64{6000, -10000}, stressFile))
	assert.FileExists(t, stressFile)

	heavy, err := cantilever.New(material.Default(), "AL7010", 2000,
		section.Geometry{H: 200, Tw: 6, Blf: 80, Tlf: 12, Buf: 80, Tuf: 12})
	require.NoError(t, err)
	loads := []float64{6000, -10000}
	summaries := []cantilever.Summary{c.Analyse(loads), heavy.Analyse(loads)}

	scatterFile := filepath.Join(dir, "study")
	require.NoError(t, diagram.ExportStudyScatter(summaries, scatterFile))
	info, err := os.Stat(scatterFile + ".png")
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	err = diagram.ExportStudyScatter([]cantilever.Summary{c.Analyse(nil)}, filepath.Join(dir, "none.png"))
	assert.ErrorIs(t, err, diagram.ErrNoData)
}

func TestExportStressProfile_ZeroArea(t *testing.T) {
	// no web and no flange thickness: the centroid and every stress are NaN
	c, err := cantilever.New(material.Default(), "AL7010", 2000,
		section.Geometry{H: 100, Blf: 40, Buf: 40})
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "stress.png")
	err = diagram.ExportStressProfile(c, []float64{6000, -10000}, file)
	require.ErrorIs(t, err, diagram.ErrNoData)
	assert.NoFileExists(t, file)

	assert.Equal(t, "  (no data)\n", diagram.DrawProfile(diagram.StressProfile(c, 6000, 10), ""))
}
