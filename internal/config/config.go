package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds tool-level settings. It is read from a YAML file, with .env
// and environment variables taking precedence.
type Config struct {
	AI struct {
		Provider     string `yaml:"provider"`
		Model        string `yaml:"model"`         // embedding model
		SummaryModel string `yaml:"summary_model"` // LLM model for refinement
		APIKey       string `yaml:"api_key"`
		Dimension    int    `yaml:"dimension"`
		BaseURL      string `yaml:"base_url"`
	} `yaml:"ai"`
	Cache struct {
		Path string `yaml:"path"`
	} `yaml:"cache"`
}

// LoadConfig reads the tool configuration. A missing file is not an error;
// the defaults plus environment variables still yield a usable config.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	var cfg Config

	// 2. Load YAML config
	if file, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return nil, err
		}
	}

	// 3. Override with environment variables if present
	if apiKey := os.Getenv("DOCSIGHT_API_KEY"); apiKey != "" {
		cfg.AI.APIKey = apiKey
	}
	if provider := os.Getenv("DOCSIGHT_AI_PROVIDER"); provider != "" {
		cfg.AI.Provider = provider
	}
	if baseURL := os.Getenv("DOCSIGHT_BASE_URL"); baseURL != "" {
		cfg.AI.BaseURL = baseURL
	}
	if cache := os.Getenv("DOCSIGHT_CACHE"); cache != "" {
		cfg.Cache.Path = cache
	}

	if cfg.AI.Model == "" {
		cfg.AI.Model = "text-embedding-004"
	}
	if cfg.AI.SummaryModel == "" {
		cfg.AI.SummaryModel = "gemini-2.0-flash"
	}
	if cfg.Cache.Path == "" {
		cfg.Cache.Path = "docsight.db"
	}

	return &cfg, nil
}
