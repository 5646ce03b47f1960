// Package config loads application configuration from YAML with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Tickers []string `yaml:"tickers"`
	Fetch   struct {
		Provider string `yaml:"provider"` // yahoo, rest, or mock
		Range    string `yaml:"range"`
		Interval string `yaml:"interval"`
		PrePost  *bool  `yaml:"include_prepost"`
		BaseURL  string `yaml:"base_url"` // rest provider only
		APIKey   string `yaml:"api_key"`  // rest provider only
	} `yaml:"fetch"`
	Output struct {
		Dir      string `yaml:"dir"`
		Charts   bool   `yaml:"charts"`
		Timezone string `yaml:"timezone"`
	} `yaml:"output"`
	Watch struct {
		Cron         string `yaml:"cron"`
		RunOnStart   bool   `yaml:"run_on_start"`
		ResetOnStart bool   `yaml:"reset_on_start"`
	} `yaml:"watch"`
	Monitor struct {
		Addr string `yaml:"addr"`
	} `yaml:"monitor"`
	Log struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"log"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is fine; defaults carry the day.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TICKERS"); v != "" {
		cfg.Tickers = splitList(v)
	}
	if v := os.Getenv("FETCH_PROVIDER"); v != "" {
		cfg.Fetch.Provider = v
	}
	if v := os.Getenv("FETCH_RANGE"); v != "" {
		cfg.Fetch.Range = v
	}
	if v := os.Getenv("FETCH_INTERVAL"); v != "" {
		cfg.Fetch.Interval = v
	}
	if v := os.Getenv("REST_BASE_URL"); v != "" {
		cfg.Fetch.BaseURL = v
	}
	if v := os.Getenv("REST_API_KEY"); v != "" {
		cfg.Fetch.APIKey = v
	}
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}
	if v := os.Getenv("TIMEZONE"); v != "" {
		cfg.Output.Timezone = v
	}
	if v := os.Getenv("WATCH_CRON"); v != "" {
		cfg.Watch.Cron = v
	}
	if v := os.Getenv("MONITOR_ADDR"); v != "" {
		cfg.Monitor.Addr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if len(cfg.Tickers) == 0 {
		cfg.Tickers = []string{"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA", "NVDA"}
	}
	if cfg.Fetch.Provider == "" {
		cfg.Fetch.Provider = "yahoo"
	}
	if cfg.Fetch.Range == "" {
		cfg.Fetch.Range = "2d"
	}
	if cfg.Fetch.Interval == "" {
		cfg.Fetch.Interval = "5m"
	}
	if cfg.Fetch.PrePost == nil {
		t := true
		cfg.Fetch.PrePost = &t
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "."
	}
	if cfg.Output.Timezone == "" {
		cfg.Output.Timezone = "America/New_York"
	}
	if cfg.Watch.Cron == "" {
		cfg.Watch.Cron = "@every 60s"
	}
	if cfg.Monitor.Addr == "" {
		cfg.Monitor.Addr = ":8080"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// IncludePrePost reports whether pre and post market bars are requested.
func (c *Config) IncludePrePost() bool {
	return c.Fetch.PrePost == nil || *c.Fetch.PrePost
}

// Validate checks that the loaded configuration is usable.
func (c *Config) Validate() error {
	switch c.Fetch.Provider {
	case "yahoo", "rest", "mock":
	default:
		return fmt.Errorf("fetch.provider must be yahoo, rest, or mock, got %q", c.Fetch.Provider)
	}
	if c.Fetch.Provider == "rest" && c.Fetch.BaseURL == "" {
		return fmt.Errorf("fetch.base_url is required for the rest provider")
	}
	if len(c.Tickers) == 0 {
		return fmt.Errorf("tickers must not be empty")
	}
	for _, t := range c.Tickers {
		if strings.TrimSpace(t) == "" {
			return fmt.Errorf("tickers contains a blank entry")
		}
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
