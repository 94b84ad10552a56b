package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/temperature-heatmap-go/internal/database"
	"github.com/jengzang/temperature-heatmap-go/internal/models"
	"github.com/jengzang/temperature-heatmap-go/internal/repository"
)

const sampleJSON = `{
  "baseTemperature": 8.66,
  "monthlyVariance": [
    {"year": 1753, "month": 1, "variance": -1.366},
    {"year": 1753, "month": 2, "variance": -2.223}
  ]
}`

func TestDecode(t *testing.T) {
	ds, err := Decode(strings.NewReader(sampleJSON))
	require.NoError(t, err)
	assert.Equal(t, 8.66, ds.BaseTemperature)
	assert.Equal(t, []models.MonthlyRecord{
		{Year: 1753, Month: 1, Variance: -1.366},
		{Year: 1753, Month: 2, Variance: -2.223},
	}, ds.MonthlyVariance)
}

func TestDecodeAllowsTrailingWhitespace(t *testing.T) {
	ds, err := Decode(strings.NewReader("{\"baseTemperature\": 8.66, \"monthlyVariance\": []}\n\n"))
	require.NoError(t, err)
	assert.Equal(t, 8.66, ds.BaseTemperature)
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "<html>oops</html>"},
		{"missing base", `{"monthlyVariance": []}`},
		{"missing records", `{"baseTemperature": 8.66}`},
		{"wrong type", `{"baseTemperature": "warm", "monthlyVariance": []}`},
		{"truncated", `{"baseTemperature": 8.66, "monthlyVariance": [`},
		{"trailing garbage", `{"baseTemperature": 8.66, "monthlyVariance": []} oops`},
		{"second document", `{"baseTemperature": 8.66, "monthlyVariance": []}{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.body))
			assert.ErrorIs(t, err, ErrDecode)
		})
	}
}

func TestHTTPSourceMakesOneRequest(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleJSON))
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, srv.Client())
	ds, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, ds.MonthlyVariance, 2)
	assert.Equal(t, 1, hits)
	assert.Equal(t, srv.URL, src.Name())
}

func TestHTTPSourceFailures(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		switch r.URL.Path {
		case "/missing":
			http.NotFound(w, r)
		default:
			w.Write([]byte("not json"))
		}
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.URL+"/missing", srv.Client()).Load(context.Background())
	assert.ErrorIs(t, err, ErrFetch)
	assert.Equal(t, 1, hits, "no retry on failure")

	_, err = NewHTTPSource(srv.URL+"/garbage", srv.Client()).Load(context.Background())
	assert.ErrorIs(t, err, ErrDecode)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewHTTPSource(srv.URL, srv.Client()).Load(ctx)
	assert.ErrorIs(t, err, ErrFetch)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "global-temperature.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o644))

	ds, err := NewFileSource(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8.66, ds.BaseTemperature)

	_, err = NewFileSource(filepath.Join(t.TempDir(), "nope.json")).Load(context.Background())
	assert.ErrorIs(t, err, ErrFetch)
}

func TestArchiveSource(t *testing.T) {
	conn, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "heatmap.db")})
	require.NoError(t, err)
	defer conn.Close()

	repo := repository.NewDatasetRepository(conn)
	src := NewArchiveSource(repo)

	_, err = src.Load(context.Background())
	assert.ErrorIs(t, err, ErrFetch)

	want, err := Decode(strings.NewReader(sampleJSON))
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), want, "test"))

	got, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
