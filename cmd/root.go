package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/okoham/ibeam/internal/config"
	"github.com/okoham/ibeam/internal/material"
	"github.com/okoham/ibeam/internal/version"
	"github.com/spf13/cobra"
)

var (
	envFile       string
	logLevel      string
	materialsFile string

	// set up by PersistentPreRunE
	cfg      config.Config
	registry *material.Registry
	logger   *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ibeam",
	Short: "Cantilever I-Beam Sizing Tool",
	Long: `ibeam - Cantilever I-Beam Sizing

A CLI tool for the static strength and stability assessment of thin-walled
I-section cantilevers with a tip load.

For a given section, material, span and set of tip loads it evaluates:
  - Flange tension and compression
  - Local buckling of the flange outstands
  - Web shear and web buckling (shear and bending interaction)
  - Lateral-torsional stability
  - Tip deflection, mass and material cost

and reports the reserve factor of every failure mode. Sizing studies run
many candidate sections in parallel and export the results as CSV or XLSX.

Settings are read from the environment (IBEAM_MATERIALS, IBEAM_WORKERS,
IBEAM_LOG_LEVEL, IBEAM_SEED) and an optional .env file.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(envFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
				return fmt.Errorf("invalid --log-level %q", logLevel)
			}
		}
		if materialsFile != "" {
			cfg.MaterialsFile = materialsFile
		}

		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
		slog.SetDefault(logger)

		registry = material.Default()
		if cfg.MaterialsFile != "" {
			registry, err = material.LoadFile(cfg.MaterialsFile)
			if err != nil {
				return err
			}
			logger.Debug("materials loaded", "file", cfg.MaterialsFile, "count", registry.Len())
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   ibeam v%-49s║\n", version.Version)
		fmt.Println("  ║   Cantilever I-Beam Sizing                                ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Static strength and stability of thin-walled I-section")
		fmt.Println("  cantilevers under a tip load.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Reserve factors for nine failure modes")
		fmt.Println("    • Section properties, mass and billet cost")
		fmt.Println("    • Factored tip loads from load combinations")
		fmt.Println("    • Parallel grid and Monte-Carlo sizing studies")
		fmt.Println()
		fmt.Println("  Use 'ibeam --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "Read settings from this dotenv file if it exists")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&materialsFile, "materials", "", "JSON material table overlaid on the built-in alloys")
}
