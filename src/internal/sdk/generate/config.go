// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package generate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/H0llyW00dzZ/sdk-to-mcp/src/internal/sdk/analyze"
)

// MCPConfig is the client-side configuration block emitted next to the
// server, in the mcpServers layout Claude Desktop and compatible clients use.
type MCPConfig struct {
	MCPServers map[string]ServerEntry `json:"mcpServers"`
}

// ServerEntry describes how a client launches the generated server and what
// tools it should expect once connected.
type ServerEntry struct {
	Command     string        `json:"command"`
	Args        []string      `json:"args"`
	Description string        `json:"description"`
	Tools       []ToolSummary `json:"tools"`
}

// ToolSummary is the name/description pair listed in the config so a user
// can audit the surface without reading the generated source.
type ToolSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (g *Generator) writeConfig(path, sdkName, serverPath string, tools []analyze.Tool) error {
	absServer, err := filepath.Abs(serverPath)
	if err != nil {
		absServer = serverPath
	}

	summaries := make([]ToolSummary, 0, len(tools))
	for _, t := range tools {
		summaries = append(summaries, ToolSummary{Name: t.Name, Description: t.Description})
	}

	cfg := MCPConfig{
		MCPServers: map[string]ServerEntry{
			sdkName + "-mcp-server": {
				Command:     "go",
				Args:        []string{"run", absServer},
				Description: fmt.Sprintf("MCP server generated from the %s SDK (%d tools)", sdkName, len(tools)),
				Tools:       summaries,
			},
		},
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("generate: encoding config: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("generate: writing %s: %w", path, err)
	}
	return nil
}
