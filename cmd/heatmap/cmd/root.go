package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jengzang/temperature-heatmap-go/internal/config"
)

var (
	sourceFlag string
	fileFlag   string
)

var rootCmd = &cobra.Command{
	Use:           "heatmap",
	Short:         "Monthly global land-surface temperature heatmap",
	Long:          "Fetch the global temperature dataset and draw it as a heatmap (HTML, SVG or PNG).",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sourceFlag, "source", "", `dataset source: "url", "file" or "archive" (default from DATASET_SOURCE)`)
	rootCmd.PersistentFlags().StringVar(&fileFlag, "file", "", "read the dataset from this file (implies --source=file)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(tokenCmd)
}

// loadConfig reads the environment and applies the persistent flags
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if fileFlag != "" {
		cfg.DatasetFile = fileFlag
		cfg.Source = "file"
	}
	if sourceFlag != "" {
		cfg.Source = sourceFlag
	}
	return cfg, nil
}
