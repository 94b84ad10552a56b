// Package render draws a computed scene onto a concrete surface.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jengzang/temperature-heatmap-go/internal/models"
)

// ErrUnknownFormat is returned by ForFormat for an unsupported output format
var ErrUnknownFormat = errors.New("unknown render format")

// Renderer applies a scene to one kind of output in a single pass
type Renderer interface {
	Render(w io.Writer, scene *models.Scene) error
	ContentType() string
}

// Formats lists the names accepted by ForFormat
var Formats = []string{"html", "svg", "png"}

// ForFormat returns the renderer for "html", "svg" or "png"
func ForFormat(name string) (Renderer, error) {
	switch strings.ToLower(name) {
	case "html", "":
		return NewHTMLRenderer(), nil
	case "svg":
		return NewSVGRenderer(), nil
	case "png":
		return NewPNGRenderer(), nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, name, strings.Join(Formats, ", "))
	}
}
