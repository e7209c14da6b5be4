// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/H0llyW00dzZ/sdk-to-mcp/src/internal/sdk"
	"github.com/H0llyW00dzZ/sdk-to-mcp/src/internal/sdk/analyze"
	"github.com/H0llyW00dzZ/sdk-to-mcp/src/internal/sdk/inspect"
	"gopkg.in/yaml.v3"
)

// configFileEnv names the environment variable pointing at the server
// configuration file, and apiKeyEnv the Gemini credential override.
const (
	configFileEnv = "MCP_SDK2MCP_CONFIG_FILE"
	apiKeyEnv     = "GEMINI_API_KEY"
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config represents the MCP server configuration structure.
// It contains default settings for conversion runs and AI integration
// parameters.
//
// The configuration can be loaded from a JSON or YAML file specified by the
// MCP_SDK2MCP_CONFIG_FILE environment variable, with defaults applied for any
// missing values. Supported file extensions: .json, .yaml, .yml
type Config struct {
	// Defaults: Default settings for conversion runs
	Defaults struct {
		// OutputDir: Directory where generated servers and configs land
		OutputDir string `json:"outputDir" yaml:"outputDir"`
		// MaxMethods: Cap on methods sent to analysis per run
		MaxMethods int `json:"maxMethods" yaml:"maxMethods"`
		// BatchSize: Methods per model request
		BatchSize int `json:"batchSize" yaml:"batchSize"`
		// MaxDepth: Package walk depth below the SDK root
		MaxDepth int `json:"maxDepth" yaml:"maxDepth"`
	} `json:"defaults" yaml:"defaults"`

	// AI: Configuration for sampling/LLM integration
	AI struct {
		// APIKey: Gemini API key (can also be set via GEMINI_API_KEY env var)
		APIKey string `json:"apiKey,omitempty" yaml:"apiKey,omitempty"`
		// Model: Default Gemini model used for method analysis and sampling
		Model string `json:"model,omitempty" yaml:"model,omitempty"`
		// Timeout: API timeout in seconds for AI requests
		Timeout int `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	} `json:"ai" yaml:"ai"`
}

// detectConfigFormat determines the configuration file format based on the
// file extension, case-insensitively.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the detected format.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// loadConfig loads MCP server configuration from a JSON or YAML file or
// applies defaults.
//
// Configuration Priority:
//  1. Default values are set
//  2. MCP_SDK2MCP_CONFIG_FILE environment variable is checked if configPath is empty
//  3. Config file values override defaults (if file exists and is valid)
//  4. GEMINI_API_KEY overrides the AI API key when the file left it empty
func loadConfig(configPath string) (*Config, error) {
	config := &Config{}

	// Set defaults
	config.Defaults.OutputDir = sdk.DefaultOutputDir
	config.Defaults.MaxMethods = analyze.DefaultMaxMethods
	config.Defaults.BatchSize = analyze.DefaultBatchSize
	config.Defaults.MaxDepth = inspect.DefaultMaxDepth

	// Set AI defaults
	config.AI.Model = analyze.DefaultModelName
	config.AI.Timeout = 30

	if configPath == "" {
		configPath = os.Getenv(configFileEnv)
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		format := detectConfigFormat(configPath)
		if err := unmarshalConfig(data, config, format); err != nil {
			return nil, err
		}

		// Validate and set defaults for invalid values
		if config.Defaults.OutputDir == "" {
			config.Defaults.OutputDir = sdk.DefaultOutputDir
		}
		if config.Defaults.MaxMethods <= 0 {
			config.Defaults.MaxMethods = analyze.DefaultMaxMethods
		}
		if config.Defaults.BatchSize <= 0 {
			config.Defaults.BatchSize = analyze.DefaultBatchSize
		}
		if config.Defaults.MaxDepth <= 0 {
			config.Defaults.MaxDepth = inspect.DefaultMaxDepth
		}
		if config.AI.Model == "" {
			config.AI.Model = analyze.DefaultModelName
		}
		if config.AI.Timeout <= 0 {
			config.AI.Timeout = 30
		}
	}

	// Override API key from environment if not set in config
	if config.AI.APIKey == "" {
		config.AI.APIKey = os.Getenv(apiKeyEnv)
	}

	return config, nil
}
