package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/temperature-heatmap-go/internal/auth"
	"github.com/jengzang/temperature-heatmap-go/internal/config"
	"github.com/jengzang/temperature-heatmap-go/internal/database"
	"github.com/jengzang/temperature-heatmap-go/internal/dataset"
	"github.com/jengzang/temperature-heatmap-go/internal/handler"
	"github.com/jengzang/temperature-heatmap-go/internal/models"
	"github.com/jengzang/temperature-heatmap-go/internal/repository"
	"github.com/jengzang/temperature-heatmap-go/internal/service"
)

const datasetJSON = `{"baseTemperature": 8.66, "monthlyVariance": [
  {"year": 1850, "month": 3, "variance": -0.5},
  {"year": 1850, "month": 4, "variance": 0.3},
  {"year": 1900, "month": 12, "variance": 1.0}
]}`

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, body string) (*gin.Engine, *config.Config) {
	t.Helper()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	t.Cleanup(upstream.Close)

	cfg := config.Default()
	cfg.RateLimit = 0
	cfg.JWTSecret = "test-secret"

	conn, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "heatmap.db")})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	src := dataset.NewHTTPSource(upstream.URL, upstream.Client())
	heatmap := service.NewHeatmapService(src, cfg.Layout, time.Second)
	archive := service.NewDatasetService(src, repository.NewDatasetRepository(conn))

	return SetupRouter(cfg, Handlers{
		Heatmap: handler.NewHeatmapHandler(heatmap),
		Dataset: handler.NewDatasetHandler(heatmap, archive),
	}), cfg
}

func do(r *gin.Engine, method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t, datasetJSON)
	w := do(r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestScene(t *testing.T) {
	r, _ := newTestRouter(t, datasetJSON)

	w := do(r, http.MethodGet, "/api/v1/heatmap/scene", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var scene models.Scene
	env := decode(t, w, &scene)
	assert.Equal(t, 0, env.Code)
	assert.Len(t, scene.Cells, 3)
	assert.Len(t, scene.Legend.Entries, 11)
	assert.Equal(t, "x-axis", scene.XAxis.ID)
}

func TestTooltip(t *testing.T) {
	r, _ := newTestRouter(t, datasetJSON)

	w := do(r, http.MethodGet, "/api/v1/heatmap/tooltip?year=1850&month=3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tip models.TooltipResponse
	decode(t, w, &tip)
	assert.Equal(t, "March 1850\n8.2°C\n-0.5°C", tip.Text)

	w = do(r, http.MethodGet, "/api/v1/heatmap/tooltip?year=1851&month=3", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/api/v1/heatmap/tooltip?year=1850&month=13", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodGet, "/api/v1/heatmap/tooltip?month=3", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRenderedOutputs(t *testing.T) {
	r, _ := newTestRouter(t, datasetJSON)

	w := do(r, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), `id="tooltip"`)

	w = do(r, http.MethodGet, "/heatmap.svg", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "image/svg+xml")
	assert.Equal(t, 3, strings.Count(w.Body.String(), `class="cell"`))

	w = do(r, http.MethodGet, "/heatmap.png", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
}

func TestFailedLoadIsVisible(t *testing.T) {
	r, _ := newTestRouter(t, "this is not json")

	w := do(r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "Rendering failed")

	w = do(r, http.MethodGet, "/api/v1/heatmap/scene", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	env := decode(t, w, nil)
	assert.Contains(t, env.Error, dataset.ErrDecode.Error())

	w = do(r, http.MethodGet, "/heatmap.svg", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestDatasetSummaryAndImport(t *testing.T) {
	r, cfg := newTestRouter(t, datasetJSON)

	w := do(r, http.MethodGet, "/api/v1/dataset", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summary models.DatasetSummary
	decode(t, w, &summary)
	assert.Equal(t, 3, summary.RecordCount)
	assert.Equal(t, 8.66, summary.BaseTemperature)

	w = do(r, http.MethodGet, "/api/v1/dataset/archive", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodPost, "/api/v1/dataset/import", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := auth.IssueToken(cfg.JWTSecret, "test", time.Minute)
	require.NoError(t, err)
	w = do(r, http.MethodPost, "/api/v1/dataset/import", http.Header{"Authorization": {"Bearer " + token}})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/v1/dataset/archive", nil)
	require.Equal(t, http.StatusOK, w.Code)
	summary = models.DatasetSummary{}
	decode(t, w, &summary)
	assert.Equal(t, 3, summary.RecordCount)
	assert.Equal(t, 1850, summary.MinYear)
}

func TestArchiveServedAfterImport(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(datasetJSON))
	}))
	t.Cleanup(upstream.Close)

	cfg := config.Default()
	cfg.RateLimit = 0
	cfg.JWTSecret = "test-secret"

	conn, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "heatmap.db")})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	repo := repository.NewDatasetRepository(conn)
	heatmap := service.NewHeatmapService(dataset.NewArchiveSource(repo), cfg.Layout, time.Second)
	archive := service.NewDatasetService(dataset.NewHTTPSource(upstream.URL, upstream.Client()), repo)
	r := SetupRouter(cfg, Handlers{
		Heatmap: handler.NewHeatmapHandler(heatmap),
		Dataset: handler.NewDatasetHandler(heatmap, archive),
	})

	w := do(r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	token, err := auth.IssueToken(cfg.JWTSecret, "test", time.Minute)
	require.NoError(t, err)
	w = do(r, http.MethodPost, "/api/v1/dataset/import", http.Header{"Authorization": {"Bearer " + token}})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, strings.Count(w.Body.String(), `class="cell"`))

	w = do(r, http.MethodGet, "/api/v1/dataset", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summary models.DatasetSummary
	decode(t, w, &summary)
	assert.Equal(t, "archive", summary.Source)
	assert.Equal(t, 3, summary.RecordCount)
}

func TestOptionsShortCircuits(t *testing.T) {
	r, _ := newTestRouter(t, datasetJSON)
	w := do(r, http.MethodOptions, "/api/v1/heatmap/scene", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
