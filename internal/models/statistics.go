package models

import "time"

// DatasetSummary describes the loaded dataset
type DatasetSummary struct {
	Source          string     `json:"source"`
	BaseTemperature float64    `json:"base_temperature"`
	RecordCount     int        `json:"record_count"`
	MinYear         int        `json:"min_year"`
	MaxYear         int        `json:"max_year"`
	MinVariance     float64    `json:"min_variance"`
	MaxVariance     float64    `json:"max_variance"`
	MeanVariance    float64    `json:"mean_variance"`
	VarianceRange   float64    `json:"variance_range"`
	ImportedAt      *time.Time `json:"imported_at,omitempty"`
}
