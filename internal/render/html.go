package render

import (
	"fmt"
	"io"

	"github.com/jengzang/temperature-heatmap-go/internal/models"
)

// HTMLRenderer writes an interactive page: the SVG heatmap plus a tooltip
// overlay driven by pointerenter, pointermove and pointerleave.
type HTMLRenderer struct{}

// NewHTMLRenderer creates an HTML renderer
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// ContentType implements Renderer
func (r *HTMLRenderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render implements Renderer
func (r *HTMLRenderer) Render(w io.Writer, scene *models.Scene) error {
	if err := pageTemplate.Execute(w, scene); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

// RenderFailure writes the page shown instead of a blank surface when
// loading or building the chart failed.
func RenderFailure(w io.Writer, cause error) error {
	msg := "unknown error"
	if cause != nil {
		msg = cause.Error()
	}
	if err := failureTemplate.Execute(w, msg); err != nil {
		return fmt.Errorf("failed to render failure page: %w", err)
	}
	return nil
}
