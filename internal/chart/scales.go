package chart

import (
	"errors"
	"fmt"

	"github.com/jengzang/temperature-heatmap-go/internal/models"
	"github.com/jengzang/temperature-heatmap-go/internal/scale"
	"github.com/jengzang/temperature-heatmap-go/internal/stats"
)

var (
	ErrEmptyDataset       = errors.New("dataset has no records")
	ErrDegenerateYears    = errors.New("dataset spans a single year")
	ErrDegenerateVariance = errors.New("dataset has a single variance value")
	ErrInvalidLayout      = errors.New("layout leaves no room for the plot")
)

// Scales are built once per dataset and shared by every cell
type Scales struct {
	X       scale.Linear
	Y       scale.Linear
	Color   scale.Quantize
	MinYear int
	MaxYear int
}

// BuildScales derives the position and color scales from the full dataset
func BuildScales(ds *models.TemperatureDataset, layout Layout) (*Scales, error) {
	if ds == nil || len(ds.MonthlyVariance) == 0 {
		return nil, ErrEmptyDataset
	}
	if layout.PlotWidth() <= 0 || layout.PlotHeight() <= 0 {
		return nil, ErrInvalidLayout
	}

	minYear, maxYear, ok := stats.Extent(ds.Years())
	if !ok {
		return nil, ErrEmptyDataset
	}
	x, err := scale.NewLinear(minYear, maxYear, layout.Margin.Left, layout.Width-layout.Margin.Right)
	if err != nil {
		return nil, fmt.Errorf("%w (year %.0f)", ErrDegenerateYears, minYear)
	}

	y, err := scale.NewLinear(1, 13, layout.Margin.Top, layout.Height-layout.Margin.Bottom)
	if err != nil {
		return nil, fmt.Errorf("failed to build month scale: %w", err)
	}

	minVar, maxVar, ok := stats.Extent(ds.Variances())
	if !ok {
		return nil, fmt.Errorf("%w: variance is not a number", ErrDegenerateVariance)
	}
	color, err := scale.NewQuantize(minVar, maxVar, scale.Spectral)
	if err != nil {
		return nil, fmt.Errorf("%w (%g)", ErrDegenerateVariance, minVar)
	}

	return &Scales{
		X:       x,
		Y:       y,
		Color:   color,
		MinYear: int(minYear),
		MaxYear: int(maxYear),
	}, nil
}

// YearSpan is the number of years between the first and last record
func (s *Scales) YearSpan() int {
	return s.MaxYear - s.MinYear
}
