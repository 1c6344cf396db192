package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScraperConfig represents the scraper settings and topic URL list
type ScraperConfig struct {
	Scraper struct {
		BaseURL         string   `yaml:"base_url"`
		UserAgent       string   `yaml:"user_agent"`
		TimeoutSeconds  int      `yaml:"timeout_seconds"`
		DelayMinSeconds float64  `yaml:"delay_min_seconds"`
		DelayMaxSeconds float64  `yaml:"delay_max_seconds"`
		OutputDir       string   `yaml:"output_dir"`
		Fetcher         string   `yaml:"fetcher"` // "colly" or "http"
		URLs            []string `yaml:"urls"`
	} `yaml:"scraper"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   int64  `yaml:"chat_id"`
	} `yaml:"telegram"`
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*ScraperConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg ScraperConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// GetDefaultConfig returns a default configuration covering the major
// algorithm topic pages
func GetDefaultConfig() *ScraperConfig {
	cfg := &ScraperConfig{}
	cfg.applyDefaults()
	cfg.Scraper.URLs = []string{
		"https://www.geeksforgeeks.org/greedy-algorithms/",
		"https://www.geeksforgeeks.org/dynamic-programming/",
		"https://www.geeksforgeeks.org/graph-data-structure-and-algorithms/",
		"https://www.geeksforgeeks.org/pattern-searching/",
		"https://www.geeksforgeeks.org/branch-and-bound-algorithm/",
		"https://www.geeksforgeeks.org/geometric-algorithms/",
		"https://www.geeksforgeeks.org/randomized-algorithms/",
	}
	return cfg
}

// applyDefaults fills in zero-valued settings so a partial YAML file still
// produces a usable configuration
func (cfg *ScraperConfig) applyDefaults() {
	if cfg.Scraper.BaseURL == "" {
		cfg.Scraper.BaseURL = "https://www.geeksforgeeks.org"
	}
	if cfg.Scraper.UserAgent == "" {
		cfg.Scraper.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	}
	if cfg.Scraper.TimeoutSeconds <= 0 {
		cfg.Scraper.TimeoutSeconds = 10
	}
	if cfg.Scraper.DelayMinSeconds <= 0 {
		cfg.Scraper.DelayMinSeconds = 1
	}
	if cfg.Scraper.DelayMaxSeconds <= cfg.Scraper.DelayMinSeconds {
		cfg.Scraper.DelayMaxSeconds = cfg.Scraper.DelayMinSeconds + 2
	}
	if cfg.Scraper.OutputDir == "" {
		cfg.Scraper.OutputDir = "scraped_content"
	}
	if cfg.Scraper.Fetcher == "" {
		cfg.Scraper.Fetcher = "colly"
	}
}
