package cmd

import (
	"fmt"

	"github.com/okoham/ibeam/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ibeam",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
		fmt.Fprintln(cmd.OutOrStdout(), "Cantilever I-Beam Sizing Tool")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
