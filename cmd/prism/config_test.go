package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.BaseURL != defaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, defaultBaseURL)
	}
	if cfg.Limit != defaultLimit {
		t.Errorf("Limit = %d, want %d", cfg.Limit, defaultLimit)
	}
	if cfg.APIPort != defaultAPIPort {
		t.Errorf("APIPort = %d, want %d", cfg.APIPort, defaultAPIPort)
	}
	if cfg.APIEnabled {
		t.Error("APIEnabled should default to false")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := "base-url: http://logs.internal:9428\nlimit: 500\napi-enabled: true\napi-port: 8080\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.BaseURL != "http://logs.internal:9428" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Limit != 500 {
		t.Errorf("Limit = %d, want 500", cfg.Limit)
	}
	if !cfg.APIEnabled || cfg.APIPort != 8080 {
		t.Errorf("api settings not applied: %+v", cfg)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("PRISM_BASE_URL", "http://env-host:9428")
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.BaseURL != "http://env-host:9428" {
		t.Errorf("BaseURL = %q, env override ignored", cfg.BaseURL)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"bad port", "api-port: 99999\n"},
		{"zero limit", "limit: 0\n"},
		{"empty url", "base-url: \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "bad.yml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := loadConfig(path); err == nil {
				t.Errorf("config %q accepted", tt.content)
			}
		})
	}
}
