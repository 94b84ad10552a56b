package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jengzang/temperature-heatmap-go/internal/chart"
	"github.com/jengzang/temperature-heatmap-go/internal/database"
	"github.com/jengzang/temperature-heatmap-go/internal/dataset"
	"github.com/jengzang/temperature-heatmap-go/internal/render"
	"github.com/jengzang/temperature-heatmap-go/internal/service"
	"github.com/jengzang/temperature-heatmap-go/internal/watch"
)

var (
	renderFormat string
	renderOut    string
	renderWatch  bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the heatmap once to a file",
	Long: `Load the dataset, build the chart and write it as HTML, SVG or PNG.

With --watch and a file source, the chart is rendered again every time the
dataset file changes.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "html", "output format: html, svg or png")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", `output file, "-" for stdout (default heatmap.<format>)`)
	renderCmd.Flags().BoolVarP(&renderWatch, "watch", "w", false, "render again whenever the dataset file changes")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	r, err := render.ForFormat(renderFormat)
	if err != nil {
		return err
	}

	out := renderOut
	if out == "" {
		out = defaultOutput(renderFormat)
	}

	var source dataset.Source
	if cfg.Source == "archive" {
		db, err := database.Open(database.Config{Path: cfg.DBPath})
		if err != nil {
			return err
		}
		defer db.Close()
		source, err = newSource(cfg, db)
		if err != nil {
			return err
		}
	} else {
		source, err = newSource(cfg, nil)
		if err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := renderOnce(ctx, source, cfg.Layout, r, out, cmd.OutOrStdout()); err != nil {
		if !renderWatch {
			return err
		}
		log.Printf("Render failed: %v", err)
	}

	if !renderWatch {
		return nil
	}
	if cfg.Source != "file" {
		return fmt.Errorf("--watch needs a file source")
	}

	w, err := watch.New(cfg.DatasetFile, watch.DefaultDebounce)
	if err != nil {
		return err
	}
	log.Printf("Watching %s", cfg.DatasetFile)
	return w.Run(ctx, func() {
		if err := renderOnce(ctx, source, cfg.Layout, r, out, cmd.OutOrStdout()); err != nil {
			log.Printf("Render failed: %v", err)
		}
	})
}

// defaultOutput names the output file after the format, e.g. "heatmap.svg"
func defaultOutput(format string) string {
	if format == "" {
		format = "html"
	}
	return "heatmap." + strings.ToLower(format)
}

// renderOnce performs one full load, build and draw pass. The output file is
// only replaced when the pass succeeds.
func renderOnce(ctx context.Context, source dataset.Source, layout chart.Layout, r render.Renderer, out string, stdout io.Writer) error {
	svc := service.NewHeatmapService(source, layout, 0)

	var buf bytes.Buffer
	if err := svc.Render(ctx, r, &buf); err != nil {
		return err
	}

	if out == "-" {
		_, err := stdout.Write(buf.Bytes())
		return err
	}

	tmp := out + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, out); err != nil {
		return fmt.Errorf("failed to replace %s: %w", out, err)
	}
	log.Printf("Wrote %s (%d bytes)", out, buf.Len())
	return nil
}
