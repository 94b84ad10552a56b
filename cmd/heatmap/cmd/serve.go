package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/jengzang/temperature-heatmap-go/internal/api"
	"github.com/jengzang/temperature-heatmap-go/internal/database"
	"github.com/jengzang/temperature-heatmap-go/internal/dataset"
	"github.com/jengzang/temperature-heatmap-go/internal/handler"
	"github.com/jengzang/temperature-heatmap-go/internal/repository"
	"github.com/jengzang/temperature-heatmap-go/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive heatmap and its JSON API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// 初始化数据库
	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		return err
	}
	defer database.Close()
	db := database.GetDB()

	source, err := newSource(cfg, db)
	if err != nil {
		return err
	}

	// imports always come from the network or a file, never from the archive itself
	importSource := source
	if cfg.Source == "archive" {
		importSource = dataset.NewHTTPSource(cfg.DatasetURL, &http.Client{Timeout: cfg.FetchTimeout})
	}

	heatmap := service.NewHeatmapService(source, cfg.Layout, cfg.FetchTimeout)
	archive := service.NewDatasetService(importSource, repository.NewDatasetRepository(db))

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load up front so the first visitor does not pay for the fetch. A
	// failure is kept and served as the rendering-failed page.
	if err := heatmap.Load(ctx); err != nil {
		log.Printf("Heatmap unavailable: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := api.SetupRouter(cfg, api.Handlers{
		Heatmap: handler.NewHeatmapHandler(heatmap),
		Dataset: handler.NewDatasetHandler(heatmap, archive),
	})

	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Printf("Server shutting down")
	return srv.Shutdown(shutdownCtx)
}
