package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds everything tunable without a rebuild: the destination
// catalog, the agent identity and the log level. Secrets stay in the
// environment and are injected separately.
type Config struct {
	Agent struct {
		Name         string  `yaml:"name"`
		Model        string  `yaml:"model"`
		BaseURL      string  `yaml:"base_url"`
		Temperature  float64 `yaml:"temperature"`
		Instructions string  `yaml:"instructions"`
	} `yaml:"agent"`

	Destinations []string `yaml:"destinations"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Default returns the built-in configuration: the sample vacation catalog
// and the TravelAgent identity. The binary runs without any config file.
func Default() *Config {
	cfg := &Config{}
	cfg.Agent.Name = "TravelAgent"
	cfg.Agent.Model = "openai/gpt-4o-mini"
	cfg.Agent.BaseURL = "https://openrouter.ai/api/v1"
	cfg.Agent.Temperature = 0.0
	cfg.Destinations = []string{
		"Barcelona, Spain",
		"Paris, France",
		"Berlin, Germany",
		"Tokyo, Japan",
		"Sydney, Australia",
		"New York, USA",
		"Cairo, Egypt",
		"Cape Town, South Africa",
		"Rio de Janeiro, Brazil",
		"Bali, Indonesia",
	}
	cfg.Log.Level = "info"
	return cfg
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults untouched.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
