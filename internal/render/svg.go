package render

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/jengzang/temperature-heatmap-go/internal/models"
)

// SVGRenderer writes a standalone SVG document. Each cell carries its source
// record as data attributes and its tooltip as a <title>.
type SVGRenderer struct{}

// NewSVGRenderer creates an SVG renderer
func NewSVGRenderer() *SVGRenderer {
	return &SVGRenderer{}
}

// ContentType implements Renderer
func (r *SVGRenderer) ContentType() string {
	return "image/svg+xml; charset=utf-8"
}

// Render implements Renderer
func (r *SVGRenderer) Render(w io.Writer, scene *models.Scene) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("failed to write svg prolog: %w", err)
	}
	if err := svgTemplate.Execute(w, scene); err != nil {
		return fmt.Errorf("failed to render svg: %w", err)
	}
	return nil
}
