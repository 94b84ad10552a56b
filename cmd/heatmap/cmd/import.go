package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/jengzang/temperature-heatmap-go/internal/database"
	"github.com/jengzang/temperature-heatmap-go/internal/repository"
	"github.com/jengzang/temperature-heatmap-go/internal/service"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Fetch the dataset and archive it into the local database",
	Long: `Fetch the dataset once from the configured URL (or --file) and replace
the snapshot archived in sqlite. "serve --source=archive" then renders from
the archive without network access.`,
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Source == "archive" {
		cfg.Source = "url"
	}

	source, err := newSource(cfg, nil)
	if err != nil {
		return err
	}

	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		return err
	}
	defer db.Close()

	svc := service.NewDatasetService(source, repository.NewDatasetRepository(db))
	summary, err := svc.Import(cmd.Context())
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}
