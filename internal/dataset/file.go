package dataset

import (
	"context"
	"fmt"
	"os"

	"github.com/jengzang/temperature-heatmap-go/internal/models"
)

// FileSource reads the dataset document from a local file
type FileSource struct {
	Path string
}

// NewFileSource creates a file source
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Name implements Source
func (s *FileSource) Name() string {
	return "file://" + s.Path
}

// Load implements Source
func (s *FileSource) Load(ctx context.Context) (*models.TemperatureDataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer f.Close()

	return Decode(f)
}
