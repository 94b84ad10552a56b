package dataset

import (
	"context"
	"errors"
	"fmt"

	"github.com/jengzang/temperature-heatmap-go/internal/models"
	"github.com/jengzang/temperature-heatmap-go/internal/repository"
)

// ArchiveSource serves the snapshot previously imported into sqlite
type ArchiveSource struct {
	repo *repository.DatasetRepository
}

// NewArchiveSource creates a source backed by the dataset repository
func NewArchiveSource(repo *repository.DatasetRepository) *ArchiveSource {
	return &ArchiveSource{repo: repo}
}

// Name implements Source
func (s *ArchiveSource) Name() string {
	return "archive"
}

// Load implements Source
func (s *ArchiveSource) Load(ctx context.Context) (*models.TemperatureDataset, error) {
	ds, err := s.repo.Load(ctx)
	if errors.Is(err, repository.ErrNoSnapshot) {
		return nil, fmt.Errorf("%w: %v (run the import command first)", ErrFetch, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	return ds, nil
}
