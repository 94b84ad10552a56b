package render

import (
	"bytes"
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/temperature-heatmap-go/internal/chart"
	"github.com/jengzang/temperature-heatmap-go/internal/models"
)

func testScene(t *testing.T) *models.Scene {
	t.Helper()
	ds := &models.TemperatureDataset{
		BaseTemperature: 8.66,
		MonthlyVariance: []models.MonthlyRecord{
			{Year: 1850, Month: 3, Variance: -0.5},
			{Year: 1850, Month: 4, Variance: 0.2},
			{Year: 1900, Month: 12, Variance: 1.1},
		},
	}
	scene, err := chart.Build(ds, chart.DefaultLayout())
	require.NoError(t, err)
	return scene
}

func TestSVGRenderer(t *testing.T) {
	scene := testScene(t)

	var buf bytes.Buffer
	r := NewSVGRenderer()
	require.NoError(t, r.Render(&buf, scene))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, xml.Header+"<svg "))
	assert.NotContains(t, out, "&lt;?xml")
	assert.Equal(t, "image/svg+xml; charset=utf-8", r.ContentType())
	assert.Equal(t, len(scene.Cells), strings.Count(out, `class="cell"`))
	assert.Equal(t, 11, strings.Count(out, `class="legend-rect"`))
	assert.Contains(t, out, `data-year="1850" data-month="3" data-month-name="March" data-variance="-0.500"`)
	assert.Contains(t, out, "<title>March 1850\n8.2°C\n-0.5°C</title>")
	assert.Contains(t, out, `id="x-axis"`)
	assert.Contains(t, out, `id="y-axis"`)
	assert.Contains(t, out, `id="legend-axis"`)
	assert.Contains(t, out, `id="title"`)
	assert.Contains(t, out, "1850-1900: Base Temperature 8.66℃")
	assert.NotContains(t, out, `id="tooltip"`)
}

func TestHTMLRenderer(t *testing.T) {
	scene := testScene(t)

	var buf bytes.Buffer
	r := NewHTMLRenderer()
	require.NoError(t, r.Render(&buf, scene))
	out := buf.String()

	assert.Equal(t, "text/html; charset=utf-8", r.ContentType())
	assert.Contains(t, out, `<div id="tooltip" data-offset-x="-40" data-offset-y="-100">`)
	assert.Contains(t, out, "pointerenter")
	assert.Contains(t, out, "pointermove")
	assert.Contains(t, out, "pointerleave")
	assert.Equal(t, len(scene.Cells), strings.Count(out, `class="cell"`))
}

func TestRenderFailure(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderFailure(&buf, errors.New("dataset has no records")))
	assert.Contains(t, buf.String(), "Rendering failed")
	assert.Contains(t, buf.String(), "dataset has no records")
}

func TestPNGRenderer(t *testing.T) {
	scene := testScene(t)

	var buf bytes.Buffer
	r := NewPNGRenderer()
	require.NoError(t, r.Render(&buf, scene))

	assert.Equal(t, "image/png", r.ContentType())
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")))
}

func TestForFormat(t *testing.T) {
	for _, name := range Formats {
		r, err := ForFormat(name)
		require.NoError(t, err, name)
		assert.NotNil(t, r)
	}

	r, err := ForFormat("SVG")
	require.NoError(t, err)
	assert.IsType(t, &SVGRenderer{}, r)

	_, err = ForFormat("gif")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
