package chart

import (
	"fmt"
	"strconv"

	"github.com/jengzang/temperature-heatmap-go/internal/models"
	"github.com/jengzang/temperature-heatmap-go/internal/scale"
)

// Build computes the full scene for a dataset. Scales are derived once from
// the whole dataset before any cell is placed.
func Build(ds *models.TemperatureDataset, layout Layout) (*models.Scene, error) {
	s, err := BuildScales(ds, layout)
	if err != nil {
		return nil, err
	}

	legend, err := buildLegend(s, layout)
	if err != nil {
		return nil, err
	}

	palette := make([]string, len(s.Color.Range))
	copy(palette, s.Color.Range)

	return &models.Scene{
		Width:  layout.Width,
		Height: layout.Height,
		Margin: layout.Margin,
		Title: models.Text{
			ID:    "title",
			X:     layout.Width / 3,
			Y:     layout.Margin.Top / 2,
			Value: Title,
		},
		Subtitle: models.Text{
			ID:    "subtitle",
			X:     layout.Width/3 + 60,
			Y:     layout.Margin.Top / 1.2,
			Value: subtitle(s, ds.BaseTemperature),
		},
		Cells:   buildCells(ds, s, layout),
		XAxis:   buildXAxis(s, layout),
		YAxis:   buildYAxis(s, layout),
		Legend:  legend,
		Tooltip: models.Tooltip{ID: "tooltip", Offset: TooltipOffset},
		Base:    ds.BaseTemperature,
		Palette: palette,
	}, nil
}

func subtitle(s *Scales, base float64) string {
	return fmt.Sprintf("%d-%d: Base Temperature %s℃",
		s.MinYear, s.MaxYear, strconv.FormatFloat(base, 'f', -1, 64))
}

func buildCells(ds *models.TemperatureDataset, s *Scales, layout Layout) []models.Cell {
	width := layout.PlotWidth() / float64(s.YearSpan())
	height := layout.PlotHeight() / 12

	cells := make([]models.Cell, len(ds.MonthlyVariance))
	for i, r := range ds.MonthlyVariance {
		bucket := s.Color.Index(r.Variance)
		cells[i] = models.Cell{
			X:         s.X.Map(float64(r.Year)),
			Y:         s.Y.Map(float64(r.Month)),
			Width:     width,
			Height:    height,
			Fill:      s.Color.Range[bucket],
			Bucket:    bucket,
			Year:      r.Year,
			Month:     r.Month,
			MonthName: scale.MonthName(float64(r.Month)),
			Variance:  r.Variance,
			Tooltip:   TooltipText(r, ds.BaseTemperature),
		}
	}
	return cells
}

func buildXAxis(s *Scales, layout Layout) models.Axis {
	years := scale.DecadeTicks(s.MinYear, s.MaxYear)
	ticks := make([]models.Tick, len(years))
	for i, y := range years {
		ticks[i] = models.Tick{
			Value: float64(y),
			Pos:   s.X.Map(float64(y)),
			Label: strconv.Itoa(y),
		}
	}
	return models.Axis{
		ID:     "x-axis",
		Orient: models.OrientBottom,
		Offset: layout.Height - layout.Margin.Bottom,
		Start:  s.X.Range[0],
		End:    s.X.Range[1],
		Ticks:  ticks,
	}
}

// Month labels sit in the middle of their row.
func buildYAxis(s *Scales, layout Layout) models.Axis {
	ticks := make([]models.Tick, 0, 12)
	for m := 1; m <= 12; m++ {
		ticks = append(ticks, models.Tick{
			Value: float64(m),
			Pos:   s.Y.Map(float64(m) + 0.5),
			Label: scale.MonthName(float64(m)),
		})
	}
	return models.Axis{
		ID:     "y-axis",
		Orient: models.OrientLeft,
		Offset: layout.Margin.Left,
		Start:  s.Y.Range[0],
		End:    s.Y.Range[1],
		Ticks:  ticks,
	}
}

func buildLegend(s *Scales, layout Layout) (models.Legend, error) {
	top := layout.Height - layout.Margin.Bottom/2

	mids := s.Color.Midpoints()
	entries := make([]models.LegendEntry, len(mids))
	for i, v := range mids {
		entries[i] = models.LegendEntry{
			Value:  v,
			Bucket: i,
			Color:  s.Color.Range[i],
			X:      layout.Margin.Left + SwatchSize*float64(i),
			Y:      top,
			Width:  SwatchSize,
			Height: SwatchSize,
		}
	}

	// The tick scale spans the interior boundaries, from the right edge of the
	// first swatch to the left edge of the last one.
	thresholds := s.Color.Thresholds()
	first, last := thresholds[0], thresholds[len(thresholds)-1]
	ls, err := scale.NewLinear(first, last,
		layout.Margin.Left+SwatchSize-1,
		layout.Margin.Left+SwatchSize*float64(len(thresholds))-1)
	if err != nil {
		return models.Legend{}, fmt.Errorf("failed to build legend scale: %w", err)
	}

	ticks := make([]models.Tick, len(thresholds))
	for i, v := range thresholds {
		ticks[i] = models.Tick{
			Value: v,
			Pos:   ls.Map(v),
			Label: FormatSigned(v) + "°",
		}
	}

	return models.Legend{
		ID:      "legend",
		Entries: entries,
		Axis: models.Axis{
			ID:     "legend-axis",
			Orient: models.OrientBottom,
			Offset: top + SwatchSize - 1,
			Start:  ls.Range[0],
			End:    ls.Range[1],
			Ticks:  ticks,
		},
	}, nil
}
