package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/temperature-heatmap-go/internal/config"
	"github.com/jengzang/temperature-heatmap-go/internal/handler"
	"github.com/jengzang/temperature-heatmap-go/internal/middleware"
)

// Handlers groups the route handlers the router dispatches to
type Handlers struct {
	Heatmap *handler.HeatmapHandler
	Dataset *handler.DatasetHandler
}

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateWindow))

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Temperature heatmap is running",
		})
	})

	r.GET("/", h.Heatmap.GetPage)
	r.GET("/heatmap.svg", h.Heatmap.GetSVG)
	r.GET("/heatmap.png", h.Heatmap.GetPNG)

	api := r.Group("/api/v1")
	{
		heatmap := api.Group("/heatmap")
		{
			heatmap.GET("/scene", h.Heatmap.GetScene)
			heatmap.GET("/legend", h.Heatmap.GetLegend)
			heatmap.GET("/tooltip", h.Heatmap.GetTooltip)
		}

		ds := api.Group("/dataset")
		{
			ds.GET("", h.Dataset.GetSummary)
			ds.GET("/archive", h.Dataset.GetArchive)
			ds.POST("/import", middleware.Auth(cfg.JWTSecret), h.Dataset.Import)
		}
	}

	return r
}
