package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/jengzang/temperature-heatmap-go/internal/chart"
	"github.com/jengzang/temperature-heatmap-go/internal/dataset"
	"github.com/jengzang/temperature-heatmap-go/internal/models"
	"github.com/jengzang/temperature-heatmap-go/internal/render"
	"github.com/jengzang/temperature-heatmap-go/internal/stats"
)

// ErrRecordNotFound is returned when no record exists for a (year, month) pair
var ErrRecordNotFound = errors.New("record not found")

// HeatmapService loads the dataset once and serves the scene built from it.
// The outcome of the load, scene or error, is kept until Reset.
type HeatmapService struct {
	source  dataset.Source
	layout  chart.Layout
	timeout time.Duration

	mu      sync.Mutex
	current *loadResult
}

// loadResult is the outcome of one load. It is never mutated once stored.
type loadResult struct {
	ds    *models.TemperatureDataset
	scene *models.Scene
	err   error
}

// NewHeatmapService creates a new heatmap service
func NewHeatmapService(source dataset.Source, layout chart.Layout, timeout time.Duration) *HeatmapService {
	return &HeatmapService{
		source:  source,
		layout:  layout,
		timeout: timeout,
	}
}

// Source returns the dataset source the service loads from
func (s *HeatmapService) Source() dataset.Source {
	return s.source
}

// Load fetches the dataset and builds the scene on first call. Later calls
// return the same result without touching the source. Cancelling ctx does not
// abort a load that other callers may be waiting on; the fetch timeout does.
func (s *HeatmapService) Load(ctx context.Context) error {
	return s.load(ctx).err
}

// Reset drops the memoized result so the next call loads again
func (s *HeatmapService) Reset() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	log.Printf("[HeatmapService] Reset, next request reloads from %s", s.source.Name())
}

func (s *HeatmapService) load(ctx context.Context) *loadResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		s.current = s.fetch(ctx)
	}
	return s.current
}

func (s *HeatmapService) fetch(ctx context.Context) *loadResult {
	loadCtx := context.WithoutCancel(ctx)
	if s.timeout > 0 {
		var cancel context.CancelFunc
		loadCtx, cancel = context.WithTimeout(loadCtx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	ds, err := s.source.Load(loadCtx)
	if err != nil {
		log.Printf("[HeatmapService] Load from %s failed: %v", s.source.Name(), err)
		return &loadResult{err: err}
	}

	scene, err := chart.Build(ds, s.layout)
	if err != nil {
		err = fmt.Errorf("failed to build chart: %w", err)
		log.Printf("[HeatmapService] %v", err)
		return &loadResult{err: err}
	}

	log.Printf("[HeatmapService] Built %d cells from %s in %v",
		len(scene.Cells), s.source.Name(), time.Since(start))
	return &loadResult{ds: ds, scene: scene}
}

// Scene returns the computed scene
func (s *HeatmapService) Scene(ctx context.Context) (*models.Scene, error) {
	res := s.load(ctx)
	if res.err != nil {
		return nil, res.err
	}
	return res.scene, nil
}

// Render draws the scene with r in a single pass
func (s *HeatmapService) Render(ctx context.Context, r render.Renderer, w io.Writer) error {
	scene, err := s.Scene(ctx)
	if err != nil {
		return err
	}
	return r.Render(w, scene)
}

// Tooltip returns the hover text of the record at (year, month)
func (s *HeatmapService) Tooltip(ctx context.Context, year, month int) (*models.TooltipResponse, error) {
	res := s.load(ctx)
	if res.err != nil {
		return nil, res.err
	}

	rec, ok := res.ds.Find(year, month)
	if !ok {
		return nil, fmt.Errorf("%w: %d-%02d", ErrRecordNotFound, year, month)
	}

	return &models.TooltipResponse{
		Year:     rec.Year,
		Month:    rec.Month,
		Variance: rec.Variance,
		Text:     chart.TooltipText(rec, res.ds.BaseTemperature),
	}, nil
}

// Legend returns the legend of the scene
func (s *HeatmapService) Legend(ctx context.Context) (*models.Legend, error) {
	scene, err := s.Scene(ctx)
	if err != nil {
		return nil, err
	}
	return &scene.Legend, nil
}

// Summary describes the loaded dataset
func (s *HeatmapService) Summary(ctx context.Context) (*models.DatasetSummary, error) {
	res := s.load(ctx)
	if res.err != nil {
		return nil, res.err
	}

	years := res.ds.Years()
	variances := res.ds.Variances()
	return &models.DatasetSummary{
		Source:          s.source.Name(),
		BaseTemperature: res.ds.BaseTemperature,
		RecordCount:     len(res.ds.MonthlyVariance),
		MinYear:         int(stats.Min(years)),
		MaxYear:         int(stats.Max(years)),
		MinVariance:     stats.Min(variances),
		MaxVariance:     stats.Max(variances),
		MeanVariance:    stats.Mean(variances),
		VarianceRange:   stats.Range(variances),
	}, nil
}
