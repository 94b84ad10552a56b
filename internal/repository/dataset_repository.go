package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jengzang/temperature-heatmap-go/internal/database"
	"github.com/jengzang/temperature-heatmap-go/internal/models"
)

// ErrNoSnapshot is returned when nothing has been imported yet
var ErrNoSnapshot = errors.New("no dataset snapshot archived")

// DatasetRepository archives a single snapshot of the temperature dataset
type DatasetRepository struct {
	db *sql.DB
}

// NewDatasetRepository creates a new dataset repository
func NewDatasetRepository(db *sql.DB) *DatasetRepository {
	return &DatasetRepository{db: db}
}

// Save replaces the archived snapshot with ds
func (r *DatasetRepository) Save(ctx context.Context, ds *models.TemperatureDataset, source string) error {
	return database.Transaction(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM monthly_variance"); err != nil {
			return fmt.Errorf("failed to clear monthly variance: %w", err)
		}

		_, err := tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO dataset_snapshot (id, source, base_temperature, imported_at)
			VALUES (1, ?, ?, ?)
		`, source, ds.BaseTemperature, time.Now().UTC().Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx,
			"INSERT INTO monthly_variance (seq, year, month, variance) VALUES (?, ?, ?, ?)")
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for i, rec := range ds.MonthlyVariance {
			if _, err := stmt.ExecContext(ctx, i, rec.Year, rec.Month, rec.Variance); err != nil {
				return fmt.Errorf("failed to insert record %d-%d: %w", rec.Year, rec.Month, err)
			}
		}
		return nil
	})
}

// Load returns the archived snapshot with records in their original order
func (r *DatasetRepository) Load(ctx context.Context) (*models.TemperatureDataset, error) {
	ds := &models.TemperatureDataset{MonthlyVariance: []models.MonthlyRecord{}}

	err := r.db.QueryRowContext(ctx, "SELECT base_temperature FROM dataset_snapshot WHERE id = 1").
		Scan(&ds.BaseTemperature)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, "SELECT year, month, variance FROM monthly_variance ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly variance: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rec models.MonthlyRecord
		if err := rows.Scan(&rec.Year, &rec.Month, &rec.Variance); err != nil {
			return nil, fmt.Errorf("failed to scan monthly variance: %w", err)
		}
		ds.MonthlyVariance = append(ds.MonthlyVariance, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate monthly variance: %w", err)
	}

	return ds, nil
}

// Summary aggregates the archived snapshot without loading every record
func (r *DatasetRepository) Summary(ctx context.Context) (*models.DatasetSummary, error) {
	var s models.DatasetSummary
	var importedAt string

	err := r.db.QueryRowContext(ctx, "SELECT source, base_temperature, imported_at FROM dataset_snapshot WHERE id = 1").
		Scan(&s.Source, &s.BaseTemperature, &importedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}
	if t, ok := parseTimestamp(importedAt); ok {
		s.ImportedAt = &t
	}

	var minYear, maxYear sql.NullInt64
	var minVar, maxVar, meanVar sql.NullFloat64
	err = r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), MIN(year), MAX(year), MIN(variance), MAX(variance), AVG(variance)
		FROM monthly_variance
	`).Scan(&s.RecordCount, &minYear, &maxYear, &minVar, &maxVar, &meanVar)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly variance: %w", err)
	}
	s.MinYear = int(minYear.Int64)
	s.MaxYear = int(maxYear.Int64)
	s.MinVariance = minVar.Float64
	s.MaxVariance = maxVar.Float64
	s.MeanVariance = meanVar.Float64
	s.VarianceRange = s.MaxVariance - s.MinVariance

	return &s, nil
}

// The driver may hand TIMESTAMP columns back either as text or as time.Time
// formatted by database/sql.
func parseTimestamp(v string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
