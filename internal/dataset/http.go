package dataset

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/jengzang/temperature-heatmap-go/internal/models"
)

// HTTPSource fetches the dataset with a single GET
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// NewHTTPSource creates an HTTP source. A nil client means http.DefaultClient.
func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{URL: url, Client: client}
}

// Name implements Source
func (s *HTTPSource) Name() string {
	return s.URL
}

// Load implements Source
func (s *HTTPSource) Load(ctx context.Context) (*models.TemperatureDataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %s", ErrFetch, s.URL, resp.Status)
	}

	ds, err := Decode(resp.Body)
	if err != nil {
		return nil, err
	}

	log.Printf("[HTTPSource] Loaded %d records from %s", len(ds.MonthlyVariance), s.URL)
	return ds, nil
}
