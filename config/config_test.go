package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	body := `{
  "general": {"debug": true, "log_level": "debug"},
  "server": {"address": ":9090"},
  "telemetry": {"enabled": true, "metrics_path": "/metrics"},
  "assistant": {"default_mode": "business", "max_query_length": 1234}
}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg := LoadConfig(path)
	if !cfg.General.Debug {
		t.Fatalf("expected debug true")
	}
	if cfg.Server.Address != ":9090" {
		t.Fatalf("expected address :9090, got %q", cfg.Server.Address)
	}
	if cfg.Assistant.MaxQueryLength != 1234 {
		t.Fatalf("expected max_query_length 1234, got %d", cfg.Assistant.MaxQueryLength)
	}
	if cfg.Assistant.MaxHistoryTurns != 20 {
		t.Fatalf("expected normalized history turns 20, got %d", cfg.Assistant.MaxHistoryTurns)
	}
}

func TestAssistantConfigNormalize(t *testing.T) {
	a := AssistantConfig{}.Normalize()
	if a.DefaultMode != "business" {
		t.Fatalf("expected business default, got %q", a.DefaultMode)
	}
	if a.MaxQueryLength != 4000 {
		t.Fatalf("expected default query length 4000, got %d", a.MaxQueryLength)
	}
}

func TestAssistantConfigValidate(t *testing.T) {
	for _, mode := range []string{"business", "education", "instructor"} {
		if err := (AssistantConfig{DefaultMode: mode}).Validate(); err != nil {
			t.Fatalf("mode %s should validate: %v", mode, err)
		}
	}
	if err := (AssistantConfig{DefaultMode: "pirate"}).Validate(); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestTelemetryConfigValidate(t *testing.T) {
	if err := (TelemetryConfig{Enabled: true}).Validate(); err == nil {
		t.Fatalf("expected error when metrics path missing")
	}
	if err := (TelemetryConfig{Enabled: true, MetricsPath: "/metrics"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
