package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/jengzang/temperature-heatmap-go/internal/models"
)

const tickSize = 6

// PNGRenderer rasterizes the scene with go-chart's drawing backend.
// The raster has no tooltip; everything else in the scene is drawn.
type PNGRenderer struct {
	// Provider creates the drawing surface, chart.PNG unless overridden
	Provider chart.RendererProvider
}

// NewPNGRenderer creates a PNG renderer
func NewPNGRenderer() *PNGRenderer {
	return &PNGRenderer{Provider: chart.PNG}
}

// ContentType implements Renderer
func (p *PNGRenderer) ContentType() string {
	return "image/png"
}

// Render implements Renderer
func (p *PNGRenderer) Render(w io.Writer, scene *models.Scene) error {
	r, err := p.Provider(px(scene.Width), px(scene.Height))
	if err != nil {
		return fmt.Errorf("failed to create raster surface: %w", err)
	}

	font, err := chart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("failed to load default font: %w", err)
	}
	r.SetFont(font)

	fillRect(r, 0, 0, scene.Width, scene.Height, drawing.ColorWhite)

	for _, c := range scene.Cells {
		fillRect(r, c.X, c.Y, c.Width, c.Height, hexColor(c.Fill))
	}

	drawText(r, scene.Title, 20)
	drawText(r, scene.Subtitle, 14)

	drawAxis(r, scene.YAxis)
	drawAxis(r, scene.XAxis)

	for _, e := range scene.Legend.Entries {
		fillRect(r, e.X, e.Y, e.Width, e.Height, hexColor(e.Color))
	}
	drawAxis(r, scene.Legend.Axis)

	if err := r.Save(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

func px(v float64) int {
	return int(math.Round(v))
}

func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

func fillRect(r chart.Renderer, x, y, w, h float64, col drawing.Color) {
	r.SetFillColor(col)
	r.SetStrokeColor(drawing.ColorTransparent)
	r.MoveTo(px(x), px(y))
	r.LineTo(px(x+w), px(y))
	r.LineTo(px(x+w), px(y+h))
	r.LineTo(px(x), px(y+h))
	r.Close()
	r.Fill()
}

func drawLine(r chart.Renderer, x1, y1, x2, y2 float64) {
	r.SetStrokeColor(drawing.ColorBlack)
	r.SetStrokeWidth(1)
	r.MoveTo(px(x1), px(y1))
	r.LineTo(px(x2), px(y2))
	r.Stroke()
}

func drawText(r chart.Renderer, t models.Text, size float64) {
	r.SetFontColor(drawing.ColorBlack)
	r.SetFontSize(size)
	r.Text(t.Value, px(t.X), px(t.Y))
}

func drawAxis(r chart.Renderer, a models.Axis) {
	r.SetFontColor(drawing.ColorBlack)
	r.SetFontSize(8)

	if a.Orient == models.OrientLeft {
		drawLine(r, a.Offset, a.Start, a.Offset, a.End)
		for _, t := range a.Ticks {
			drawLine(r, a.Offset-tickSize, t.Pos, a.Offset, t.Pos)
			box := r.MeasureText(t.Label)
			r.Text(t.Label, px(a.Offset)-tickSize-3-box.Width(), px(t.Pos)+box.Height()/2)
		}
		return
	}

	drawLine(r, a.Start, a.Offset, a.End, a.Offset)
	for _, t := range a.Ticks {
		drawLine(r, t.Pos, a.Offset, t.Pos, a.Offset+tickSize)
		box := r.MeasureText(t.Label)
		r.Text(t.Label, px(t.Pos)-box.Width()/2, px(a.Offset)+tickSize+3+box.Height())
	}
}
