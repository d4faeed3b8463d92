package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the available materials",
	Long: `List the materials of the registry: the built-in alloys, overlaid by
the JSON table named with --materials or IBEAM_MATERIALS.

A material table is a JSON array:
[
  {"name": "AL7075", "E": 71000, "nu": 0.33, "ftu": 540, "fty": 470,
   "fcy": 470, "fsu": 330, "rho": 2.8e-6, "cmat": 10, "cprod": 100}
]
Moduli and allowables are in MPa, density in kg/mm³, costs in €/kg.`,
	RunE: runMaterials,
}

func init() {
	rootCmd.AddCommand(materialsCmd)
}

func runMaterials(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "MATERIALS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  Name\tE\tν\tftu\tfty\tfcy\tfsu\tρ (kg/mm³)\tcmat\tcprod\t\n")
	for _, name := range registry.Names() {
		m, err := registry.Lookup(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s\t%.0f\t%.2f\t%.0f\t%.0f\t%.0f\t%.0f\t%.3g\t%.1f\t%.1f\t\n",
			m.Name, m.E, m.Nu, m.Ftu, m.Fty, m.Fcy, m.Fsu, m.Rho, m.CMat, m.CProd)
	}
	w.Flush()
	fmt.Fprintln(out)
	return nil
}
