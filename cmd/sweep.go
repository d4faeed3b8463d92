package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/okoham/ibeam/internal/cantilever"
	"github.com/okoham/ibeam/internal/diagram"
	"github.com/okoham/ibeam/internal/study"
	"github.com/spf13/cobra"
)

var (
	// shared by all sweep subcommands
	sweepLoads        string
	sweepOutput       string
	sweepPlotFile     string
	sweepWorkers      int
	sweepFeasibleOnly bool
	sweepStrict       bool
	sweepFace         string
	sweepTop          int

	// grid and random
	sweepSpan      float64
	sweepMaterials []string

	// random
	sweepSamples int
	sweepSeed    uint64
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run a sizing study over many candidate sections",
	Long: `Evaluate many candidate beams against a common load set on a pool of
workers, rank the results by mass and export them.

Subcommands:
  grid    - Full-factorial sweep over discrete dimension sets
  random  - Monte-Carlo sampling of the design space
  import  - Candidates read from an XLSX workbook

Results are written as CSV or XLSX depending on the --output extension;
each row holds the design inputs, the envelope reserve factors, mass and
cost.`,
}

var sweepGridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Full-factorial sweep over discrete dimensions",
	Long: `Sweep every combination of
  h    60 .. 200 mm, step 20
  tw   1 .. 6 mm, step 1
  b    20 .. 80 mm, step 10 (lower and upper flange independently)
  t    0, 3, 6, 9, 12 mm (lower and upper flange independently)
and the selected materials.

Example:
  ibeam sweep grid -m AL7010 --feasible-only -o grid.xlsx --plot grid.png`,
	RunE: func(cmd *cobra.Command, args []string) error {
		space := study.DefaultGrid(sweepMaterialNames())
		space.Span = sweepSpan
		candidates, err := study.Grid(space)
		if err != nil {
			return err
		}
		return runSweep(cmd, candidates)
	},
}

var sweepRandomCmd = &cobra.Command{
	Use:   "random",
	Short: "Monte-Carlo sampling of the design space",
	Long: `Draw candidates uniformly from
  h    10 .. 300 mm
  tw   1.5 .. 6 mm
  b    6 .. 100 mm (lower and upper flange independently)
  t    0 .. 12 mm (lower and upper flange independently)
and a uniformly chosen material. The same seed draws the same candidates.

Example:
  ibeam sweep random -n 100000 --seed 7 --strict -o samples.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := cfg.Seed
		if cmd.Flags().Changed("seed") {
			seed = sweepSeed
		}
		space := study.DefaultRandom(sweepMaterialNames())
		space.Span = sweepSpan
		candidates, err := study.Sample(space, sweepSamples, seed)
		if err != nil {
			return err
		}
		logger.Debug("candidates sampled", "n", len(candidates), "seed", seed)
		return runSweep(cmd, candidates)
	},
}

var sweepImportCmd = &cobra.Command{
	Use:   "import FILE.xlsx",
	Short: "Evaluate candidates read from an XLSX workbook",
	Long: `Evaluate the candidates listed on the first sheet of a workbook. The
first row is a header, every following row holds

  matname, L, h, tw, blf, tlf, buf, tuf [, dstab]

Example:
  ibeam sweep import candidates.xlsx -o results.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		candidates, err := study.ReadCandidatesXLSX(f)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		return runSweep(cmd, candidates)
	},
}

func init() {
	rootCmd.AddCommand(sweepCmd)
	sweepCmd.AddCommand(sweepGridCmd, sweepRandomCmd, sweepImportCmd)

	pf := sweepCmd.PersistentFlags()
	pf.StringVar(&sweepLoads, "loads", "", "Signed tip loads (N), comma separated [default 6000,-10000]")
	pf.StringVarP(&sweepOutput, "output", "o", "", "Write results to a .csv or .xlsx file")
	pf.StringVar(&sweepPlotFile, "plot", "", "Export a mass over reserve factor scatter plot (png, svg, pdf)")
	pf.IntVar(&sweepWorkers, "workers", 0, "Concurrent evaluations [default IBEAM_WORKERS or the number of CPUs]")
	pf.BoolVar(&sweepFeasibleOnly, "feasible-only", false, "Keep only designs with every reserve factor >= 1")
	pf.BoolVar(&sweepStrict, "strict", false, "Skip degenerate sections")
	pf.StringVar(&sweepFace, "compression-face", "max", "Flange compression face stress: max or min")
	pf.IntVar(&sweepTop, "top", 10, "Print the N lightest feasible designs")

	for _, c := range []*cobra.Command{sweepGridCmd, sweepRandomCmd} {
		c.Flags().Float64VarP(&sweepSpan, "length", "L", 2000, "Span (mm)")
		c.Flags().StringSliceVarP(&sweepMaterials, "material", "m", nil, "Materials to sweep [default all]")
	}
	sweepRandomCmd.Flags().IntVarP(&sweepSamples, "samples", "n", 10000, "Number of samples")
	sweepRandomCmd.Flags().Uint64Var(&sweepSeed, "seed", 1, "Random seed [default IBEAM_SEED or 1]")
}

func sweepMaterialNames() []string {
	if len(sweepMaterials) > 0 {
		return sweepMaterials
	}
	return registry.Names()
}

func runSweep(cmd *cobra.Command, candidates []study.Candidate) error {
	set, err := parseLoads(sweepLoads)
	if err != nil {
		return err
	}
	face, err := cantilever.ParseCompressionFace(sweepFace)
	if err != nil {
		return err
	}
	workers := cfg.Workers
	if sweepWorkers > 0 {
		workers = sweepWorkers
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()

	results, stats, err := study.Run(ctx, registry, candidates, study.Options{
		Loads:           set,
		Workers:         workers,
		SkipDegenerate:  sweepStrict,
		FeasibleOnly:    sweepFeasibleOnly,
		CompressionFace: face,
		Logger:          logger,
		ProgressEvery:   max(len(candidates)/10, 1000),
	})
	if err != nil {
		return err
	}
	study.SortByMass(results)

	out := cmd.OutOrStdout()
	printSweep(out, stats, results)

	if sweepOutput != "" {
		if err := writeResults(sweepOutput, results); err != nil {
			return err
		}
		logger.Info("results written", "file", sweepOutput, "rows", len(results))
	}
	if sweepPlotFile != "" {
		if err := diagram.ExportStudyScatter(results, sweepPlotFile); err != nil {
			return fmt.Errorf("export plot: %w", err)
		}
		logger.Info("scatter plot exported", "file", sweepPlotFile)
	}
	return nil
}

func printSweep(out io.Writer, stats study.Stats, results []cantilever.Summary) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "          SIZING STUDY")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Evaluated:\t%d\n", stats.Evaluated)
	fmt.Fprintf(w, "  Skipped (degenerate):\t%d\n", stats.Skipped)
	fmt.Fprintf(w, "  Rejected (infeasible):\t%d\n", stats.Rejected)
	fmt.Fprintf(w, "  Kept:\t%d\n", stats.Kept)
	fmt.Fprintf(w, "  Feasible:\t%d\n", len(study.Feasible(results)))
	fmt.Fprintf(w, "  Elapsed:\t%s\n", stats.Elapsed.Round(time.Millisecond))
	lightest, ok := study.Lightest(results)
	if ok {
		fmt.Fprintf(w, "  Lightest feasible:\t%s, h %.1f, %.4f kg, %.2f €\n",
			lightest.MatName, lightest.H, lightest.Mass, lightest.Cost)
	}
	w.Flush()
	fmt.Fprintln(out)

	if !ok {
		fmt.Fprintln(out, "  No feasible design found.")
		fmt.Fprintln(out)
		return
	}
	if sweepTop <= 0 {
		return
	}
	best := study.Feasible(results)
	best = best[:min(sweepTop, len(best))]

	fmt.Fprintln(out, "LIGHTEST FEASIBLE DESIGNS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  #\tmat\th\ttw\tblf\ttlf\tbuf\ttuf\tmass (kg)\tcost (€)\tgoverning\tRF\t\n")
	for i, s := range best {
		mode, rf := s.Governing()
		fmt.Fprintf(w, "  %d\t%s\t%.1f\t%.2f\t%.1f\t%.2f\t%.1f\t%.2f\t%.4f\t%.2f\t%s\t%s\t\n",
			i+1, s.MatName, s.H, s.Tw, s.Blf, s.Tlf, s.Buf, s.Tuf, s.Mass, s.Cost, mode, formatRF(rf))
	}
	w.Flush()
	fmt.Fprintln(out)
}

func writeResults(path string, results []cantilever.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		err = study.WriteXLSX(f, results)
	default:
		err = study.WriteCSV(f, results)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
