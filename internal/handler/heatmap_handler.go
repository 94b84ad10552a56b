package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/temperature-heatmap-go/internal/models"
	"github.com/jengzang/temperature-heatmap-go/internal/render"
	"github.com/jengzang/temperature-heatmap-go/internal/service"
	"github.com/jengzang/temperature-heatmap-go/pkg/response"
)

// HeatmapHandler handles HTTP requests for the heatmap chart
type HeatmapHandler struct {
	service *service.HeatmapService
}

// NewHeatmapHandler creates a new heatmap handler
func NewHeatmapHandler(service *service.HeatmapService) *HeatmapHandler {
	return &HeatmapHandler{service: service}
}

// GetPage handles GET /
func (h *HeatmapHandler) GetPage(c *gin.Context) {
	var buf bytes.Buffer
	r := render.NewHTMLRenderer()
	if err := h.service.Render(c.Request.Context(), r, &buf); err != nil {
		buf.Reset()
		c.Error(err)
		if ferr := render.RenderFailure(&buf, err); ferr != nil {
			response.InternalError(c, ferr.Error())
			return
		}
		c.Data(http.StatusServiceUnavailable, r.ContentType(), buf.Bytes())
		return
	}
	c.Data(http.StatusOK, r.ContentType(), buf.Bytes())
}

// GetSVG handles GET /heatmap.svg
func (h *HeatmapHandler) GetSVG(c *gin.Context) {
	h.renderImage(c, render.NewSVGRenderer())
}

// GetPNG handles GET /heatmap.png
func (h *HeatmapHandler) GetPNG(c *gin.Context) {
	h.renderImage(c, render.NewPNGRenderer())
}

func (h *HeatmapHandler) renderImage(c *gin.Context, r render.Renderer) {
	var buf bytes.Buffer
	if err := h.service.Render(c.Request.Context(), r, &buf); err != nil {
		response.Unavailable(c, err)
		return
	}
	c.Data(http.StatusOK, r.ContentType(), buf.Bytes())
}

// GetScene handles GET /api/v1/heatmap/scene
func (h *HeatmapHandler) GetScene(c *gin.Context) {
	scene, err := h.service.Scene(c.Request.Context())
	if err != nil {
		response.Unavailable(c, err)
		return
	}
	response.Success(c, scene)
}

// GetLegend handles GET /api/v1/heatmap/legend
func (h *HeatmapHandler) GetLegend(c *gin.Context) {
	legend, err := h.service.Legend(c.Request.Context())
	if err != nil {
		response.Unavailable(c, err)
		return
	}
	response.Success(c, legend)
}

// GetTooltip handles GET /api/v1/heatmap/tooltip?year=&month=
func (h *HeatmapHandler) GetTooltip(c *gin.Context) {
	var query models.TooltipQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	tip, err := h.service.Tooltip(c.Request.Context(), query.Year, query.Month)
	if errors.Is(err, service.ErrRecordNotFound) {
		response.NotFound(c, err.Error())
		return
	}
	if err != nil {
		response.Unavailable(c, err)
		return
	}
	response.Success(c, tip)
}
