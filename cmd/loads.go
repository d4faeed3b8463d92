package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/okoham/ibeam/internal/loads"
	"github.com/spf13/cobra"
)

var (
	// Unfactored tip forces (N)
	forceDead       float64
	forceLive       float64
	forceRoof       float64
	forceWind       float64
	forceEarthquake float64
	forceRain       float64

	// Options
	loadsGravity bool
)

var loadsCmd = &cobra.Command{
	Use:   "loads",
	Short: "Build a tip load set from factored load combinations",
	Long: `Calculate the factored tip loads of the basic strength design load
combinations and print them as a load set for 'ibeam analyse --loads'.

Provide the unfactored tip force of each load type, signed (N). Wind and
earthquake act in either direction; combinations that include them are
evaluated for both.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  # Gravity loads only
  ibeam loads --dead 2000 --live 3000 --gravity

  # With wind, then analyse against the resulting set
  ibeam loads --dead 2000 --live 3000 --wind 1500
  ibeam analyse --h 100 --tw 2 --blf 40 --tlf 3 --buf 40 --tuf 3 --loads 2800,8400,...`,
	RunE: runLoads,
}

func init() {
	rootCmd.AddCommand(loadsCmd)

	loadsCmd.Flags().Float64VarP(&forceDead, "dead", "d", 0, "Tip force due to dead load (N)")
	loadsCmd.Flags().Float64VarP(&forceLive, "live", "l", 0, "Tip force due to live load (N)")
	loadsCmd.Flags().Float64VarP(&forceRoof, "roof", "r", 0, "Tip force due to roof live load (N)")
	loadsCmd.Flags().Float64VarP(&forceWind, "wind", "w", 0, "Tip force due to wind load (N)")
	loadsCmd.Flags().Float64VarP(&forceEarthquake, "earthquake", "e", 0, "Tip force due to earthquake load (N)")
	loadsCmd.Flags().Float64VarP(&forceRain, "rain", "R", 0, "Tip force due to rain load (N)")

	loadsCmd.Flags().BoolVarP(&loadsGravity, "gravity", "g", false, "Use gravity combinations only (1.4D and 1.2D+1.6L)")
}

func runLoads(cmd *cobra.Command, args []string) error {
	forces := loads.Forces{
		Dead:       forceDead,
		Live:       forceLive,
		Roof:       forceRoof,
		Wind:       forceWind,
		Earthquake: forceEarthquake,
		Rain:       forceRain,
	}
	if forces == (loads.Forces{}) {
		return errors.New("provide at least one unfactored tip force, see 'ibeam loads --help'")
	}

	combinations := loads.Combinations
	if loadsGravity {
		combinations = loads.GravityCombinations
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "          FACTORED TIP LOADS")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "UNFACTORED TIP FORCES (N):")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"Dead Load (D)", forces.Dead},
		{"Live Load (L)", forces.Live},
		{"Roof Live Load (Lr)", forces.Roof},
		{"Wind Load (W)", forces.Wind},
		{"Earthquake Load (E)", forces.Earthquake},
		{"Rain Load (R)", forces.Rain},
	} {
		if f.value != 0 {
			fmt.Fprintf(w, "  %s:\t%.1f\n", f.name, f.value)
		}
	}
	w.Flush()
	fmt.Fprintln(out)

	governing := loads.Governing(forces, combinations)

	fmt.Fprintln(out, "LOAD COMBINATIONS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tCombination\tF (N)\n")
	fmt.Fprintf(w, "  ─\t───────────\t─────\n")
	for _, c := range loads.Cases(forces, combinations) {
		desc := c.Combination.Description
		if c.Reversed {
			desc += " (reversed)"
		}
		marker := ""
		if c == governing {
			marker = " ← GOVERNS"
		}
		fmt.Fprintf(w, "  %s\t%s\t%.1f%s\n", c.Combination.ID, desc, c.F, marker)
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "LOAD SET:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	fmt.Fprintf(out, "  --loads %s\n", loads.Format(loads.Set(forces, combinations)))
	fmt.Fprintln(out)
	return nil
}
