// Package main provides the CLI entry point for gearsheet.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"gearsheet/internal/app"
	"gearsheet/pkg/gearsheet"
	"gearsheet/pkg/gearsheet/config"
)

var (
	outputPath string
	configPath string
	logLevel   string
)

func main() {
	app.SetupEnvironment()

	rootCmd := &cobra.Command{
		Use:   "gearsheet [materials.tsv]",
		Short: "Beautify Silent Gear's material export",
		Long: `gearsheet converts Silent Gear's tab-separated material export into a
styled workbook with per-category sheets (general, tools, weapons, armor).`,
		Args:         cobra.ExactArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output workbook path (default: materials.xlsx)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Sheet configuration JSON file (default: built-in)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error, disabled")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if logLevel != "" {
		app.ApplyLogLevel(logLevel)
	}

	inputPath := args[0]

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("configuration failed: %w", err)
		}
		cfg = loaded
		log.Debug().Str("config", configPath).Msg("Loaded sheet configuration")
	}

	opts := gearsheet.Options{
		Output: app.OutputPath(outputPath),
	}

	if err := gearsheet.Convert(inputPath, cfg, opts); err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	fmt.Printf("Wrote %s\n", opts.OutputPath())
	return nil
}
