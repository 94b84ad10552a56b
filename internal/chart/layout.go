// Package chart turns a temperature dataset into an immutable heatmap scene.
//
// Build is a pure function: the same dataset and layout always give the same
// scene, and nothing in the scene refers back to a drawing surface. Renderers
// in internal/render draw the scene onto SVG, HTML or PNG.
package chart

import "github.com/jengzang/temperature-heatmap-go/internal/models"

const (
	// SwatchSize is the width and height of one legend swatch
	SwatchSize = 40.0

	// Title is the fixed chart title
	Title = "Monthly Global Land-Surface Temperature"
)

// TooltipOffset keeps the tooltip clear of the pointer
var TooltipOffset = models.Point{X: -40, Y: -100}

// Layout fixes the drawing surface size and its margins
type Layout struct {
	Width  float64       `yaml:"width"`
	Height float64       `yaml:"height"`
	Margin models.Margin `yaml:"margin"`
}

// DefaultLayout returns the 1500x600 surface with room for the legend below the plot
func DefaultLayout() Layout {
	return Layout{
		Width:  1500,
		Height: 600,
		Margin: models.Margin{Top: 60, Right: 30, Bottom: 150, Left: 60},
	}
}

// PlotWidth is the horizontal space between the left and right margins
func (l Layout) PlotWidth() float64 {
	return l.Width - l.Margin.Left - l.Margin.Right
}

// PlotHeight is the vertical space between the top and bottom margins
func (l Layout) PlotHeight() float64 {
	return l.Height - l.Margin.Top - l.Margin.Bottom
}
