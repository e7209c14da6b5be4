// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// createResources creates the static resources the server exposes:
// a configuration template, version/capability metadata, and the SDK
// mapping reference.
func createResources() []server.ServerResource {
	return []server.ServerResource{
		{
			Resource: mcp.NewResource(
				"config://template",
				"Configuration Template",
				mcp.WithResourceDescription("Example JSON configuration for the converter MCP server"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleConfigResource,
		},
		{
			Resource: mcp.NewResource(
				"info://version",
				"Server Version",
				mcp.WithResourceDescription("Server version and capability metadata"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleVersionResource,
		},
		{
			Resource: mcp.NewResource(
				"docs://sdk-mappings",
				"SDK Mappings",
				mcp.WithResourceDescription("Curated SDK name mappings and source resolution order"),
				mcp.WithMIMEType("text/markdown"),
			),
			Handler: handleSDKMappingsResource,
		},
	}
}

// addResources registers all static resources with the MCP server instance.
func addResources(s *server.MCPServer) {
	for _, r := range createResources() {
		s.AddResource(r.Resource, r.Handler)
	}
}
