// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// createPrompts creates and returns all MCP prompt definitions with their handlers
func createPrompts() []server.ServerPrompt {
	return []server.ServerPrompt{
		{
			Prompt: mcp.NewPrompt("sdk-conversion",
				mcp.WithPromptDescription("Guided workflow for converting a Go SDK into an MCP server"),
				mcp.WithArgument("sdk",
					mcp.ArgumentDescription("SDK name (kubernetes, github, azure) or a Go import path"),
				),
				mcp.WithArgument("output_dir",
					mcp.ArgumentDescription("Directory for the generated files (default: generated_mcp_servers)"),
				),
			),
			Handler: handleSDKConversionPrompt,
		},
		{
			Prompt: mcp.NewPrompt("tool-review",
				mcp.WithPromptDescription("Review the tool definitions produced for an SDK before generating the server"),
				mcp.WithArgument("sdk",
					mcp.ArgumentDescription("SDK name (kubernetes, github, azure) or a Go import path"),
				),
			),
			Handler: handleToolReviewPrompt,
		},
		{
			Prompt: mcp.NewPrompt("sdk-troubleshooting",
				mcp.WithPromptDescription("Troubleshoot common conversion issues: missing SDK source, empty discovery, model failures"),
				mcp.WithArgument("issue_type",
					mcp.ArgumentDescription("Type of issue: 'not-found', 'no-methods', 'model', 'output'"),
				),
				mcp.WithArgument("sdk",
					mcp.ArgumentDescription("SDK name or import path involved"),
				),
			),
			Handler: handleSDKTroubleshootingPrompt,
		},
	}
}
