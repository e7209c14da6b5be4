// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/H0llyW00dzZ/sdk-to-mcp/src/mcp-server/templates"
	"github.com/H0llyW00dzZ/sdk-to-mcp/src/version"
	"github.com/mark3labs/mcp-go/mcp"
)

// handleConfigResource serves a JSON template showing the expected
// configuration structure for the MCP server, with the shipped defaults
// filled in.
func handleConfigResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	exampleConfig := map[string]any{
		"defaults": map[string]any{
			"outputDir":  "generated_mcp_servers",
			"maxMethods": 100,
			"batchSize":  3,
			"maxDepth":   3,
		},
		"ai": map[string]any{
			"apiKey":  "",
			"model":   "gemini-2.0-flash",
			"timeout": 30,
		},
	}

	jsonData, err := json.MarshalIndent(exampleConfig, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config template: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "config://template",
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// handleVersionResource serves server metadata: version, registered tool and
// prompt names, and the curated SDK names the converter knows about.
func handleVersionResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	tools, toolsWithConfig := createTools()
	toolNames := make([]string, 0, len(tools)+len(toolsWithConfig))
	for _, t := range tools {
		toolNames = append(toolNames, t.Tool.Name)
	}
	for _, t := range toolsWithConfig {
		toolNames = append(toolNames, t.Tool.Name)
	}
	sort.Strings(toolNames)

	promptNames := make([]string, 0, 2)
	for _, p := range createPrompts() {
		promptNames = append(promptNames, p.Prompt.Name)
	}
	sort.Strings(promptNames)

	knownSDKs := knownSDKNames()
	sort.Strings(knownSDKs)

	versionInfo := map[string]any{
		"name":    serverDisplayName,
		"version": version.Version,
		"type":    "MCP Server",
		"capabilities": map[string]any{
			"tools":   toolNames,
			"prompts": promptNames,
		},
		"knownSDKs": knownSDKs,
	}

	jsonData, err := json.MarshalIndent(versionInfo, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal version info: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "info://version",
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// handleSDKMappingsResource serves the embedded SDK mapping documentation.
func handleSDKMappingsResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	content, err := templates.MagicEmbed.ReadFile("sdk-mappings.md")
	if err != nil {
		return nil, fmt.Errorf("failed to read sdk mappings template: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "docs://sdk-mappings",
			MIMEType: "text/markdown",
			Text:     string(content),
		},
	}, nil
}
