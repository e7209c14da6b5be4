// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// handleSDKConversionPrompt handles the guided end-to-end conversion workflow.
func handleSDKConversionPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	sdkName := request.Params.Arguments["sdk"]
	outputDir := request.Params.Arguments["output_dir"]
	if outputDir == "" {
		outputDir = "generated_mcp_servers"
	}

	messages := []mcp.PromptMessage{
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(fmt.Sprintf(`I'll help you convert the %s SDK into a runnable MCP server. Output will be written under %s.

Let's look at the SDK's surface first:`, sdkName, outputDir)),
		),
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(`1. Use the "discover_sdk_methods" tool to list the useful methods the converter found, ranked by priority.`),
		),
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(`2. Use the "analyze_sdk_methods" tool to preview the MCP tool definitions (names, descriptions, input schemas) before anything touches disk.`),
		),
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(`3. When the definitions look right, use the "convert_sdk" tool to run the full pipeline and write the server file and client config.`),
		),
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(`4. I'll summarize what was generated and point out tools that used the heuristic fallback so you can improve their docstrings and re-run.`),
		),
	}

	return mcp.NewGetPromptResult(
		"SDK Conversion Workflow",
		messages,
	), nil
}

// handleToolReviewPrompt handles the pre-generation tool review workflow.
func handleToolReviewPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	sdkName := request.Params.Arguments["sdk"]

	messages := []mcp.PromptMessage{
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(fmt.Sprintf(`Let's review the tool definitions for %s before generating anything.`, sdkName)),
		),
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(`Use the "analyze_sdk_methods" tool and inspect the result for each tool: is the name a clear snake_case verb phrase, does the description say what an operator gets, and does the input schema require exactly the arguments a caller must supply?`),
		),
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(`Flag tools whose description merely restates the Go signature; those came from the heuristic fallback and usually mean the SDK method had no doc comment.`),
		),
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(`Once the definitions pass review, run "generate_mcp_server" to write the artifacts.`),
		),
	}

	return mcp.NewGetPromptResult(
		"Tool Definition Review",
		messages,
	), nil
}

// handleSDKTroubleshootingPrompt handles the troubleshooting prompt,
// tailoring the guidance to the reported issue type.
func handleSDKTroubleshootingPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	issueType := request.Params.Arguments["issue_type"]
	sdkName := request.Params.Arguments["sdk"]

	var guidance string
	switch issueType {
	case "not-found":
		guidance = fmt.Sprintf(`The converter could not locate source for %s. Check the "docs://sdk-mappings" resource for the resolution order: pass an explicit source argument, vendor the module, or install it with the go get hint from the error message.`, sdkName)
	case "no-methods":
		guidance = fmt.Sprintf(`Discovery found no useful methods in %s. Try raising max_depth (deeply nested clients sit below the default walk), or pass the subpackage that holds the client types as the import path directly.`, sdkName)
	case "model":
		guidance = `Model-backed analysis failed or produced poor definitions. Verify GEMINI_API_KEY (or ai.apiKey in the server config), or set no_llm to true to use the heuristic fallback; it always produces a runnable server.`
	case "output":
		guidance = `Generated files are missing or stale. Output is overwritten per run in the configured output_dir; check write permissions and the serverPath/configPath values in the convert_sdk result.`
	default:
		guidance = `Describe what failed: SDK source resolution ("not-found"), empty discovery ("no-methods"), LLM analysis ("model"), or written artifacts ("output").`
	}

	messages := []mcp.PromptMessage{
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(guidance),
		),
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(`Run "discover_sdk_methods" with the suggested adjustments and compare the method count before converting again.`),
		),
	}

	return mcp.NewGetPromptResult(
		"Conversion Troubleshooting",
		messages,
	), nil
}
