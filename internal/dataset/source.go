// Package dataset loads the global temperature resource.
package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jengzang/temperature-heatmap-go/internal/models"
)

// DefaultURL is the published global land-surface temperature dataset
const DefaultURL = "https://raw.githubusercontent.com/freeCodeCamp/ProjectReferenceData/master/global-temperature.json"

var (
	// ErrFetch wraps transport errors and non-2xx responses
	ErrFetch = errors.New("failed to fetch dataset")
	// ErrDecode wraps bodies that are not a temperature dataset
	ErrDecode = errors.New("failed to decode dataset")
)

// Source loads a dataset in one attempt. There is no retry and no partial result.
type Source interface {
	Load(ctx context.Context) (*models.TemperatureDataset, error)
	Name() string
}

// wire mirrors the JSON document; pointers detect missing keys
type wire struct {
	BaseTemperature *float64                `json:"baseTemperature"`
	MonthlyVariance *[]models.MonthlyRecord `json:"monthlyVariance"`
}

// Decode parses a dataset document. Both baseTemperature and monthlyVariance must
// be present and nothing may follow the document.
func Decode(r io.Reader) (*models.TemperatureDataset, error) {
	var w wire
	dec := json.NewDecoder(r)
	if err := dec.Decode(&w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after document", ErrDecode)
	}
	if w.BaseTemperature == nil {
		return nil, fmt.Errorf("%w: missing baseTemperature", ErrDecode)
	}
	if w.MonthlyVariance == nil {
		return nil, fmt.Errorf("%w: missing monthlyVariance", ErrDecode)
	}
	return &models.TemperatureDataset{
		BaseTemperature: *w.BaseTemperature,
		MonthlyVariance: *w.MonthlyVariance,
	}, nil
}
