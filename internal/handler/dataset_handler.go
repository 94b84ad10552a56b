package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/temperature-heatmap-go/internal/dataset"
	"github.com/jengzang/temperature-heatmap-go/internal/repository"
	"github.com/jengzang/temperature-heatmap-go/internal/service"
	"github.com/jengzang/temperature-heatmap-go/pkg/response"
)

// DatasetHandler handles HTTP requests about the dataset itself
type DatasetHandler struct {
	heatmap *service.HeatmapService
	archive *service.DatasetService
}

// NewDatasetHandler creates a new dataset handler
func NewDatasetHandler(heatmap *service.HeatmapService, archive *service.DatasetService) *DatasetHandler {
	return &DatasetHandler{
		heatmap: heatmap,
		archive: archive,
	}
}

// GetSummary handles GET /api/v1/dataset
func (h *DatasetHandler) GetSummary(c *gin.Context) {
	summary, err := h.heatmap.Summary(c.Request.Context())
	if err != nil {
		response.Unavailable(c, err)
		return
	}
	response.Success(c, summary)
}

// GetArchive handles GET /api/v1/dataset/archive
func (h *DatasetHandler) GetArchive(c *gin.Context) {
	summary, err := h.archive.Archived(c.Request.Context())
	if errors.Is(err, repository.ErrNoSnapshot) {
		response.NotFound(c, err.Error())
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to read archive", err)
		return
	}
	response.Success(c, summary)
}

// Import handles POST /api/v1/dataset/import
func (h *DatasetHandler) Import(c *gin.Context) {
	summary, err := h.archive.Import(c.Request.Context())
	switch {
	case errors.Is(err, dataset.ErrFetch), errors.Is(err, dataset.ErrDecode):
		response.Error(c, http.StatusBadGateway, "Failed to fetch dataset", err)
		return
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "Failed to import dataset", err)
		return
	}

	// A heatmap served from the archive must pick up the new snapshot
	if _, ok := h.heatmap.Source().(*dataset.ArchiveSource); ok {
		h.heatmap.Reset()
	}
	response.Success(c, summary)
}
