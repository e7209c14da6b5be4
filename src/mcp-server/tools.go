// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createTools creates and returns all MCP tool definitions with their
// handlers. Tools that need the server configuration (analysis limits, AI
// key) are returned separately so the builder can bind the Config.
//
// The function defines the following tools:
//   - discover_sdk_methods: walks an SDK's source and lists the useful methods
//   - analyze_sdk_methods: shapes discovered methods into MCP tool definitions
//   - generate_mcp_server: runs the full pipeline and writes the artifacts
//   - convert_sdk: alias workflow for generate with per-phase reporting
//   - get_resource_usage: reports server memory and GC statistics
func createTools() ([]ToolDefinition, []ToolDefinitionWithConfig) {
	// Tools that don't need config
	tools := []ToolDefinition{
		{
			Tool: mcp.NewTool("discover_sdk_methods",
				mcp.WithDescription("Discover the callable surface of an installed Go SDK: exported methods, interface operations, and package functions, filtered and ranked by usefulness"),
				mcp.WithString("sdk",
					mcp.Required(),
					mcp.Description("SDK name (kubernetes, github, azure) or a Go import path"),
				),
				mcp.WithString("source",
					mcp.Description("Explicit SDK source directory (default: vendor/ then the Go module cache)"),
				),
				mcp.WithNumber("max_depth",
					mcp.Description("Package walk depth below the SDK root (default: 3)"),
				),
				mcp.WithNumber("limit",
					mcp.Description("Maximum number of methods to return (default: 50)"),
					mcp.DefaultNumber(50),
				),
			),
			Handler: handleDiscoverSDKMethods,
			Role:    "discovery",
		},
		{
			Tool: mcp.NewTool("get_resource_usage",
				mcp.WithDescription("Get current resource usage statistics including memory, GC, and CPU information"),
				mcp.WithBoolean("detailed",
					mcp.Description("Include detailed memory breakdown (default: false)"),
					mcp.DefaultBool(false),
				),
				mcp.WithString("format",
					mcp.Description("Output format: 'json' or 'markdown' (default: 'json')"),
					mcp.DefaultString("json"),
				),
			),
			Handler: handleGetResourceUsage,
			Role:    "resourceMonitor",
		},
	}

	// Tools that need config
	toolsWithConfig := []ToolDefinitionWithConfig{
		{
			Tool: mcp.NewTool("analyze_sdk_methods",
				mcp.WithDescription("Analyze an SDK's discovered methods into MCP tool definitions without writing anything to disk; uses the configured Gemini model or the heuristic fallback"),
				mcp.WithString("sdk",
					mcp.Required(),
					mcp.Description("SDK name (kubernetes, github, azure) or a Go import path"),
				),
				mcp.WithString("source",
					mcp.Description("Explicit SDK source directory"),
				),
				mcp.WithNumber("max_methods",
					mcp.Description("Cap on methods sent to analysis (default: from server config)"),
				),
				mcp.WithNumber("batch_size",
					mcp.Description("Methods per model request (default: from server config)"),
				),
				mcp.WithBoolean("no_llm",
					mcp.Description("Skip the language model and convert heuristically (default: false)"),
					mcp.DefaultBool(false),
				),
			),
			Handler: handleAnalyzeSDKMethods,
			Role:    "analysis",
		},
		{
			Tool: mcp.NewTool("generate_mcp_server",
				mcp.WithDescription("Run the full conversion pipeline for an SDK and write the generated MCP server source and client config files"),
				mcp.WithString("sdk",
					mcp.Required(),
					mcp.Description("SDK name (kubernetes, github, azure) or a Go import path"),
				),
				mcp.WithString("source",
					mcp.Description("Explicit SDK source directory"),
				),
				mcp.WithString("output_dir",
					mcp.Description("Directory for the generated files (default: from server config)"),
				),
				mcp.WithBoolean("no_llm",
					mcp.Description("Skip the language model and convert heuristically (default: false)"),
					mcp.DefaultBool(false),
				),
			),
			Handler: handleGenerateMCPServer,
			Role:    "generation",
		},
		{
			Tool: mcp.NewTool("convert_sdk",
				mcp.WithDescription("Convert an SDK end to end (discover, analyze, generate) and report per-phase results: method count, tool definitions, and written file paths"),
				mcp.WithString("sdk",
					mcp.Required(),
					mcp.Description("SDK name (kubernetes, github, azure) or a Go import path"),
				),
				mcp.WithString("source",
					mcp.Description("Explicit SDK source directory"),
				),
				mcp.WithString("output_dir",
					mcp.Description("Directory for the generated files (default: from server config)"),
				),
				mcp.WithNumber("max_methods",
					mcp.Description("Cap on methods sent to analysis (default: from server config)"),
				),
				mcp.WithNumber("batch_size",
					mcp.Description("Methods per model request (default: from server config)"),
				),
				mcp.WithNumber("max_depth",
					mcp.Description("Package walk depth below the SDK root (default: from server config)"),
				),
				mcp.WithBoolean("no_llm",
					mcp.Description("Skip the language model and convert heuristically (default: false)"),
					mcp.DefaultBool(false),
				),
			),
			Handler: handleConvertSDK,
			Role:    "pipeline",
		},
	}

	return tools, toolsWithConfig
}
