package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Agent.Name != "TravelAgent" {
		t.Errorf("Agent.Name = %q", cfg.Agent.Name)
	}
	if len(cfg.Destinations) != 10 {
		t.Errorf("Expected 10 default destinations, got %d", len(cfg.Destinations))
	}
	if cfg.Agent.Temperature != 0.0 {
		t.Errorf("Agent.Temperature = %v", cfg.Agent.Temperature)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Destinations) != 10 {
		t.Errorf("Expected default destinations, got %d", len(cfg.Destinations))
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
agent:
  model: openai/gpt-4o
  temperature: 0.7
destinations:
  - Lisbon, Portugal
  - Oslo, Norway
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Agent.Model != "openai/gpt-4o" {
		t.Errorf("Agent.Model = %q", cfg.Agent.Model)
	}
	if cfg.Agent.Temperature != 0.7 {
		t.Errorf("Agent.Temperature = %v", cfg.Agent.Temperature)
	}
	// Untouched fields keep their defaults.
	if cfg.Agent.Name != "TravelAgent" {
		t.Errorf("Agent.Name = %q", cfg.Agent.Name)
	}
	if len(cfg.Destinations) != 2 || cfg.Destinations[0] != "Lisbon, Portugal" {
		t.Errorf("Destinations = %v", cfg.Destinations)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}
