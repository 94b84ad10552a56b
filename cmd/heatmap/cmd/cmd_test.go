package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/temperature-heatmap-go/internal/auth"
	"github.com/jengzang/temperature-heatmap-go/internal/chart"
	"github.com/jengzang/temperature-heatmap-go/internal/config"
	"github.com/jengzang/temperature-heatmap-go/internal/dataset"
	"github.com/jengzang/temperature-heatmap-go/internal/render"
)

const datasetJSON = `{"baseTemperature": 8.66, "monthlyVariance": [
  {"year": 1800, "month": 1, "variance": -1.0},
  {"year": 1900, "month": 12, "variance": 1.0}
]}`

func writeDataset(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "global-temperature.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRenderOnceWritesFile(t *testing.T) {
	src := dataset.NewFileSource(writeDataset(t, datasetJSON))
	out := filepath.Join(t.TempDir(), "heatmap.svg")

	err := renderOnce(context.Background(), src, chart.DefaultLayout(), render.NewSVGRenderer(), out, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), `class="cell"`))
	assert.NoFileExists(t, out+".tmp")
}

func TestRenderOnceStdout(t *testing.T) {
	src := dataset.NewFileSource(writeDataset(t, datasetJSON))

	var buf bytes.Buffer
	err := renderOnce(context.Background(), src, chart.DefaultLayout(), render.NewHTMLRenderer(), "-", &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<!DOCTYPE html>")
}

func TestRenderOnceKeepsPreviousOutputOnFailure(t *testing.T) {
	out := filepath.Join(t.TempDir(), "heatmap.svg")
	require.NoError(t, os.WriteFile(out, []byte("previous"), 0o644))

	src := dataset.NewFileSource(writeDataset(t, `{"baseTemperature": 8.66, "monthlyVariance": []}`))
	err := renderOnce(context.Background(), src, chart.DefaultLayout(), render.NewSVGRenderer(), out, nil)
	assert.ErrorIs(t, err, chart.ErrEmptyDataset)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))
}

func TestDefaultOutput(t *testing.T) {
	assert.Equal(t, "heatmap.svg", defaultOutput("SVG"))
	assert.Equal(t, "heatmap.png", defaultOutput("png"))
	assert.Equal(t, "heatmap.html", defaultOutput(""))
}

func TestNewSource(t *testing.T) {
	cfg := config.Default()

	src, err := newSource(cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &dataset.HTTPSource{}, src)

	cfg.Source = "file"
	_, err = newSource(cfg, nil)
	assert.Error(t, err)

	cfg.DatasetFile = "/data/global-temperature.json"
	src, err = newSource(cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &dataset.FileSource{}, src)

	cfg.Source = "archive"
	_, err = newSource(cfg, nil)
	assert.Error(t, err)

	cfg.Source = "ftp"
	_, err = newSource(cfg, nil)
	assert.Error(t, err)
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"token", "--subject", "ci"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())

	claims, err := auth.ParseToken("cli-secret", strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "ci", claims.Subject)
}

func TestImportCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DB_PATH", filepath.Join(dir, "heatmap.db"))
	path := writeDataset(t, datasetJSON)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"import", "--file", path})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		fileFlag = ""
	})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), `"record_count": 2`)
}
