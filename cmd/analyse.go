package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"
	"time"

	"github.com/okoham/ibeam/internal/cantilever"
	"github.com/okoham/ibeam/internal/diagram"
	"github.com/okoham/ibeam/internal/loads"
	"github.com/okoham/ibeam/internal/report"
	"github.com/okoham/ibeam/internal/section"
	"github.com/okoham/ibeam/internal/study"
	"github.com/spf13/cobra"
)

var (
	analyseBeam        beamFlags
	analyseLoads       string
	analyseShowDiagram bool
	analysePlotFile    string
	analysePDFFile     string
	analyseProject     string
	analyseJSON        bool
)

var analyseCmd = &cobra.Command{
	Use:     "analyse",
	Aliases: []string{"analyze"},
	Short:   "Evaluate the reserve factors of a cantilever I-beam",
	Long: `Evaluate a cantilever I-beam against a set of signed tip loads.

A positive load compresses the upper flange at the clamped end. Every load
is checked for flange tension and compression, flange local buckling, web
shear, web buckling and lateral-torsional stability; the envelope keeps the
smallest reserve factor of each failure mode.

Examples:
  # Reference section under the default load set (6000, -10000 N)
  ibeam analyse -m AL7010 -L 2000 --h 100 --tw 2 --blf 40 --tlf 3 --buf 40 --tuf 3

  # Stabilised every 500 mm, custom loads, with diagrams
  ibeam analyse --h 120 --tw 3 --blf 60 --tlf 6 --buf 40 --tuf 4 --dstab 500 --loads 8000,-8000 --diagram

  # Geometry from a file, machine readable output
  ibeam analyse -f section.json -m TI64 --json`,
	RunE: runAnalyse,
}

func init() {
	rootCmd.AddCommand(analyseCmd)

	addBeamFlags(analyseCmd, &analyseBeam)
	analyseCmd.Flags().StringVar(&analyseLoads, "loads", "", "Signed tip loads (N), comma separated [default 6000,-10000]")

	// Output options
	analyseCmd.Flags().BoolVar(&analyseShowDiagram, "diagram", false, "Show ASCII section sketch, stress and moment profiles")
	analyseCmd.Flags().StringVarP(&analysePlotFile, "output", "o", "", "Export stress profile plot to file (png, svg, pdf)")
	analyseCmd.Flags().StringVar(&analysePDFFile, "pdf", "", "Write a PDF calculation sheet")
	analyseCmd.Flags().StringVar(&analyseProject, "project", "", "Project name printed on the PDF sheet")
	analyseCmd.Flags().BoolVar(&analyseJSON, "json", false, "Print results as JSON")
}

func runAnalyse(cmd *cobra.Command, args []string) error {
	set, err := parseLoads(analyseLoads)
	if err != nil {
		return err
	}
	beam, err := analyseBeam.beam()
	if err != nil {
		return err
	}
	logger.Debug("analysing", "material", beam.Material.Name, "span", beam.L, "loads", loads.Format(set))

	out := cmd.OutOrStdout()
	if analyseJSON {
		if err := writeAnalyseJSON(out, beam, set); err != nil {
			return err
		}
	} else {
		printAnalysis(out, beam, set)
	}

	if analysePlotFile != "" {
		switch err := diagram.ExportStressProfile(beam, set, analysePlotFile); {
		case errors.Is(err, diagram.ErrNoData):
			logger.Warn("stress profile not exported", "file", analysePlotFile, "error", err)
		case err != nil:
			return fmt.Errorf("export plot: %w", err)
		default:
			logger.Info("stress profile exported", "file", analysePlotFile)
		}
	}

	if analysePDFFile != "" {
		f, err := os.Create(analysePDFFile)
		if err != nil {
			return err
		}
		err = report.Write(f, report.Sheet{
			Input: report.Input{Project: analyseProject},
			Date:  time.Now(),
			Beam:  beam,
			Loads: set,
		})
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		logger.Info("calculation sheet written", "file", analysePDFFile)
	}
	return nil
}

func printAnalysis(out io.Writer, beam *cantilever.Cantilever, set []float64) {
	summary := beam.Analyse(set)
	g, p, m := beam.Section, beam.Props, beam.Material

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "          CANTILEVER I-BEAM ANALYSIS")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "INPUT PARAMETERS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Material:\t%s\n", m.Name)
	fmt.Fprintf(w, "  Span (L):\t%.1f mm\n", beam.L)
	fmt.Fprintf(w, "  Stabiliser spacing:\t%.1f mm\n", beam.DStab)
	fmt.Fprintf(w, "  Height (h):\t%.2f mm\n", g.H)
	fmt.Fprintf(w, "  Web thickness (tw):\t%.2f mm\n", g.Tw)
	fmt.Fprintf(w, "  Lower flange:\t%.2f × %.2f mm\n", g.Blf, g.Tlf)
	fmt.Fprintf(w, "  Upper flange:\t%.2f × %.2f mm\n", g.Buf, g.Tuf)
	fmt.Fprintf(w, "  Compression face:\t%s\n", beam.CompressionPolicy())
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "SECTION PROPERTIES:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	printProperties(out, p)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Mass:\t%.4f kg\n", summary.Mass)
	fmt.Fprintf(w, "  Cost:\t%.2f €\n", summary.Cost)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "LOAD CASES:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(w, "  F (N)\twmax (mm)\t")
	for _, mode := range cantilever.Modes {
		fmt.Fprintf(w, "%s\t", mode)
	}
	fmt.Fprintln(w)
	for _, f := range set {
		single := beam.AnalyseSingle(f)
		fmt.Fprintf(w, "  %.0f\t%.2f\t", f, single.WMax)
		for _, v := range single.Values() {
			fmt.Fprintf(w, "%s\t", formatRF(v))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "  envelope\t%.2f\t", summary.WMax)
	for _, v := range summary.Values() {
		fmt.Fprintf(w, "%s\t", formatRF(v))
	}
	fmt.Fprintln(w)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "FAILURE MODES:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Mode\tRF\tStatus\n")
	fmt.Fprintf(w, "  ────\t──\t──────\n")
	for i, v := range summary.Values() {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", modeNames[i], formatRF(v), status(v))
	}
	w.Flush()
	fmt.Fprintln(out)

	mode, rf := summary.Governing()
	lines := []string{
		fmt.Sprintf("Governing mode: %s", mode),
		fmt.Sprintf("Reserve factor: %s", formatRF(rf)),
		fmt.Sprintf("Tip deflection: %.2f mm", summary.WMax),
		fmt.Sprintf("Mass: %.4f kg   Cost: %.2f €", summary.Mass, summary.Cost),
	}
	title := "DESIGN IS ADEQUATE"
	if !summary.Feasible() {
		title = "DESIGN IS NOT ADEQUATE"
	}
	fmt.Fprint(out, diagram.DrawSummaryBox(title, lines))
	fmt.Fprintln(out)

	if analyseShowDiagram {
		fmt.Fprint(out, diagram.DrawSection(g, p))
		fmt.Fprintln(out)
		f := governingLoad(set)
		fmt.Fprint(out, diagram.DrawProfile(diagram.StressProfile(beam, f, 40),
			fmt.Sprintf("root stress σx (MPa) from lower to upper fiber, F = %.0f N", f)))
		fmt.Fprintln(out)
		fmt.Fprint(out, diagram.DrawProfile(diagram.MomentProfile(beam, f, 40),
			fmt.Sprintf("bending moment My (N·mm) from clamped end to tip, F = %.0f N", f)))
		fmt.Fprintln(out)
	}
}

func printProperties(out io.Writer, p section.Properties) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Area:\t%.2f mm²\n", p.Area)
	fmt.Fprintf(w, "  Lower flange area:\t%.2f mm²\n", p.ALf)
	fmt.Fprintf(w, "  Upper flange area:\t%.2f mm²\n", p.AUf)
	fmt.Fprintf(w, "  Web area:\t%.2f mm²\n", p.AW)
	fmt.Fprintf(w, "  Clear web height:\t%.2f mm\n", p.WebHeight)
	fmt.Fprintf(w, "  Centroid (from lower fiber):\t%.3f mm\n", p.Cg)
	fmt.Fprintf(w, "  Bending inertia (Iyy):\t%.6g mm⁴\n", p.Iyy)
	fmt.Fprintf(w, "  Torsional inertia (It):\t%.6g mm⁴\n", p.It)
	w.Flush()
}

// modeNames describes cantilever.Modes in the same order
var modeNames = []string{
	"Upper flange tension",
	"Lower flange tension",
	"Upper flange compression",
	"Lower flange compression",
	"Upper flange local buckling",
	"Lower flange local buckling",
	"Web shear",
	"Web buckling",
	"Lateral-torsional buckling",
}

// governingLoad returns the load of largest magnitude
func governingLoad(set []float64) float64 {
	var f float64
	for _, v := range set {
		if math.Abs(v) > math.Abs(f) {
			f = v
		}
	}
	return f
}

type caseJSON struct {
	F    float64        `json:"F"`
	WMax any            `json:"wmax"`
	RF   map[string]any `json:"rf"`
}

type analysisJSON struct {
	Material        string         `json:"matname"`
	L               float64        `json:"L"`
	DStab           float64        `json:"dstab"`
	CompressionFace string         `json:"compression_face"`
	Geometry        any            `json:"geometry"`
	Cases           []caseJSON     `json:"cases"`
	Summary         map[string]any `json:"summary"`
	Governing       string         `json:"governing"`
	Feasible        bool           `json:"feasible"`
}

func writeAnalyseJSON(out io.Writer, beam *cantilever.Cantilever, set []float64) error {
	summary := beam.Analyse(set)
	mode, _ := summary.Governing()

	doc := analysisJSON{
		Material:        beam.Material.Name,
		L:               beam.L,
		DStab:           beam.DStab,
		CompressionFace: beam.CompressionPolicy().String(),
		Geometry:        beam.Section,
		Summary:         study.Record(summary),
		Governing:       mode,
		Feasible:        summary.Feasible(),
	}
	for _, f := range set {
		single := beam.AnalyseSingle(f)
		rf := make(map[string]any, len(cantilever.Modes))
		for i, v := range single.Values() {
			rf[cantilever.Modes[i]] = jsonValue(v)
		}
		doc.Cases = append(doc.Cases, caseJSON{F: f, WMax: jsonValue(single.WMax), RF: rf})
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
