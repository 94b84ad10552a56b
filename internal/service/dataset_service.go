package service

import (
	"context"
	"fmt"
	"log"

	"github.com/jengzang/temperature-heatmap-go/internal/dataset"
	"github.com/jengzang/temperature-heatmap-go/internal/models"
	"github.com/jengzang/temperature-heatmap-go/internal/repository"
)

// DatasetService archives snapshots of a remote dataset into sqlite
type DatasetService struct {
	source dataset.Source
	repo   *repository.DatasetRepository
}

// NewDatasetService creates a new dataset service
func NewDatasetService(source dataset.Source, repo *repository.DatasetRepository) *DatasetService {
	return &DatasetService{
		source: source,
		repo:   repo,
	}
}

// Import fetches the dataset once and replaces the archived snapshot
func (s *DatasetService) Import(ctx context.Context) (*models.DatasetSummary, error) {
	ds, err := s.source.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, ds, s.source.Name()); err != nil {
		return nil, fmt.Errorf("failed to archive dataset: %w", err)
	}
	log.Printf("[DatasetService] Archived %d records from %s", len(ds.MonthlyVariance), s.source.Name())

	return s.repo.Summary(ctx)
}

// Archived describes the archived snapshot
func (s *DatasetService) Archived(ctx context.Context) (*models.DatasetSummary, error) {
	return s.repo.Summary(ctx)
}
