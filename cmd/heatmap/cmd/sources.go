package cmd

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/jengzang/temperature-heatmap-go/internal/config"
	"github.com/jengzang/temperature-heatmap-go/internal/dataset"
	"github.com/jengzang/temperature-heatmap-go/internal/repository"
)

// newSource picks the dataset source named by cfg.Source. db is only needed
// for the archive source and may be nil otherwise.
func newSource(cfg *config.Config, db *sql.DB) (dataset.Source, error) {
	switch cfg.Source {
	case "", "url":
		return dataset.NewHTTPSource(cfg.DatasetURL, &http.Client{Timeout: cfg.FetchTimeout}), nil
	case "file":
		if cfg.DatasetFile == "" {
			return nil, fmt.Errorf("file source needs DATASET_FILE or --file")
		}
		return dataset.NewFileSource(cfg.DatasetFile), nil
	case "archive":
		if db == nil {
			return nil, fmt.Errorf("archive source needs a database")
		}
		return dataset.NewArchiveSource(repository.NewDatasetRepository(db)), nil
	default:
		return nil, fmt.Errorf("unknown dataset source %q", cfg.Source)
	}
}
