// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv(configFileEnv, "")
	t.Setenv(apiKeyEnv, "")

	config, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}

	if config.Defaults.OutputDir != "generated_mcp_servers" {
		t.Errorf("unexpected default output dir: %q", config.Defaults.OutputDir)
	}
	if config.Defaults.MaxMethods != 100 {
		t.Errorf("unexpected default max methods: %d", config.Defaults.MaxMethods)
	}
	if config.Defaults.BatchSize != 3 {
		t.Errorf("unexpected default batch size: %d", config.Defaults.BatchSize)
	}
	if config.Defaults.MaxDepth != 3 {
		t.Errorf("unexpected default max depth: %d", config.Defaults.MaxDepth)
	}
	if config.AI.Model != "gemini-2.0-flash" {
		t.Errorf("unexpected default model: %q", config.AI.Model)
	}
	if config.AI.Timeout != 30 {
		t.Errorf("unexpected default timeout: %d", config.AI.Timeout)
	}
	if config.AI.APIKey != "" {
		t.Errorf("expected empty API key, got %q", config.AI.APIKey)
	}
}

func TestLoadConfigFromJSONFile(t *testing.T) {
	t.Setenv(apiKeyEnv, "")

	configJSON := `{
  "defaults": {
    "outputDir": "custom_out",
    "maxMethods": 25,
    "batchSize": 5,
    "maxDepth": 2
  },
  "ai": {
    "apiKey": "file-key",
    "model": "gemini-2.5-pro",
    "timeout": 60
  }
}`
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(configJSON), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	config, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}

	if config.Defaults.OutputDir != "custom_out" {
		t.Errorf("expected outputDir 'custom_out', got %q", config.Defaults.OutputDir)
	}
	if config.Defaults.MaxMethods != 25 {
		t.Errorf("expected maxMethods 25, got %d", config.Defaults.MaxMethods)
	}
	if config.Defaults.BatchSize != 5 {
		t.Errorf("expected batchSize 5, got %d", config.Defaults.BatchSize)
	}
	if config.AI.APIKey != "file-key" {
		t.Errorf("expected apiKey 'file-key', got %q", config.AI.APIKey)
	}
	if config.AI.Model != "gemini-2.5-pro" {
		t.Errorf("expected model 'gemini-2.5-pro', got %q", config.AI.Model)
	}
	if config.AI.Timeout != 60 {
		t.Errorf("expected timeout 60, got %d", config.AI.Timeout)
	}
}

func TestLoadConfigFromYAMLFile(t *testing.T) {
	t.Setenv(apiKeyEnv, "")

	configYAML := `defaults:
  outputDir: yaml_out
  maxMethods: 10
ai:
  model: gemini-2.5-flash
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(configYAML), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	config, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}

	if config.Defaults.OutputDir != "yaml_out" {
		t.Errorf("expected outputDir 'yaml_out', got %q", config.Defaults.OutputDir)
	}
	if config.Defaults.MaxMethods != 10 {
		t.Errorf("expected maxMethods 10, got %d", config.Defaults.MaxMethods)
	}
	// Values the file left out fall back to defaults
	if config.Defaults.BatchSize != 3 {
		t.Errorf("expected default batchSize 3, got %d", config.Defaults.BatchSize)
	}
	if config.AI.Model != "gemini-2.5-flash" {
		t.Errorf("expected model 'gemini-2.5-flash', got %q", config.AI.Model)
	}
}

func TestLoadConfigInvalidValuesRedefaulted(t *testing.T) {
	t.Setenv(apiKeyEnv, "")

	configJSON := `{
  "defaults": {
    "outputDir": "",
    "maxMethods": -1,
    "batchSize": 0,
    "maxDepth": -5
  },
  "ai": {
    "model": "",
    "timeout": 0
  }
}`
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(configJSON), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	config, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}

	if config.Defaults.OutputDir != "generated_mcp_servers" {
		t.Errorf("expected re-defaulted output dir, got %q", config.Defaults.OutputDir)
	}
	if config.Defaults.MaxMethods != 100 {
		t.Errorf("expected re-defaulted max methods, got %d", config.Defaults.MaxMethods)
	}
	if config.Defaults.BatchSize != 3 {
		t.Errorf("expected re-defaulted batch size, got %d", config.Defaults.BatchSize)
	}
	if config.Defaults.MaxDepth != 3 {
		t.Errorf("expected re-defaulted max depth, got %d", config.Defaults.MaxDepth)
	}
	if config.AI.Model != "gemini-2.0-flash" {
		t.Errorf("expected re-defaulted model, got %q", config.AI.Model)
	}
	if config.AI.Timeout != 30 {
		t.Errorf("expected re-defaulted timeout, got %d", config.AI.Timeout)
	}
}

func TestLoadConfigEnvAPIKeyOverride(t *testing.T) {
	t.Setenv(apiKeyEnv, "env-key")

	config, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if config.AI.APIKey != "env-key" {
		t.Errorf("expected API key from environment, got %q", config.AI.APIKey)
	}
}

func TestLoadConfigFileKeyWinsOverEnv(t *testing.T) {
	t.Setenv(apiKeyEnv, "env-key")

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"ai": {"apiKey": "file-key"}}`), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	config, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if config.AI.APIKey != "file-key" {
		t.Errorf("expected file API key to win, got %q", config.AI.APIKey)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadConfigMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	_, err := loadConfig(path)
	if err == nil {
		t.Error("expected error for malformed JSON config")
	}
}

func TestDetectConfigFormat(t *testing.T) {
	tests := []struct {
		path string
		want configFormat
	}{
		{"config.json", configFormatJSON},
		{"config.yaml", configFormatYAML},
		{"config.yml", configFormatYAML},
		{"config.YAML", configFormatYAML},
		{"config", configFormatJSON},
		{"config.toml", configFormatJSON},
	}

	for _, tt := range tests {
		if got := detectConfigFormat(tt.path); got != tt.want {
			t.Errorf("detectConfigFormat(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
