package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jengzang/temperature-heatmap-go/internal/chart"
	"github.com/jengzang/temperature-heatmap-go/internal/dataset"
)

// Config 应用配置
type Config struct {
	Port         string        `yaml:"port"`
	DatasetURL   string        `yaml:"dataset_url"`
	DatasetFile  string        `yaml:"dataset_file"` // read from disk instead of DatasetURL when set
	Source       string        `yaml:"source"`       // "url", "file" or "archive"
	DBPath       string        `yaml:"db_path"`
	JWTSecret    string        `yaml:"jwt_secret"`
	RateLimit    int           `yaml:"rate_limit"` // requests per RateWindow per client IP
	RateWindow   time.Duration `yaml:"rate_window"`
	FetchTimeout time.Duration `yaml:"fetch_timeout"`
	Layout       chart.Layout  `yaml:"layout"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Port:         ":8080",
		DatasetURL:   dataset.DefaultURL,
		Source:       "url",
		DBPath:       "./data/heatmap.db",
		JWTSecret:    "your-secret-key-change-in-production",
		RateLimit:    120,
		RateWindow:   time.Minute,
		FetchTimeout: 30 * time.Second,
		Layout:       chart.DefaultLayout(),
	}
}

// Load 加载配置: defaults, then the optional CONFIG_FILE, then environment variables
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.mergeEnv(); err != nil {
		return nil, err
	}

	if cfg.DatasetFile != "" && cfg.Source == "url" {
		cfg.Source = "file"
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.RateLimit > 0 && c.RateWindow <= 0 {
		return fmt.Errorf("invalid rate window %v: must be positive when RATE_LIMIT is set", c.RateWindow)
	}
	if c.FetchTimeout < 0 {
		return fmt.Errorf("invalid fetch timeout %v: must not be negative", c.FetchTimeout)
	}
	return nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv() error {
	if port := os.Getenv("PORT"); port != "" {
		c.Port = port
	}
	if url := os.Getenv("DATASET_URL"); url != "" {
		c.DatasetURL = url
	}
	if file := os.Getenv("DATASET_FILE"); file != "" {
		c.DatasetFile = file
	}
	if source := os.Getenv("DATASET_SOURCE"); source != "" {
		c.Source = source
	}
	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		c.DBPath = dbPath
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		c.JWTSecret = secret
	}

	if v := os.Getenv("RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT %q: %w", v, err)
		}
		c.RateLimit = n
	}
	if v := os.Getenv("RATE_WINDOW"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_WINDOW %q: %w", v, err)
		}
		c.RateWindow = d
	}
	if v := os.Getenv("FETCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid FETCH_TIMEOUT %q: %w", v, err)
		}
		c.FetchTimeout = d
	}

	return nil
}
