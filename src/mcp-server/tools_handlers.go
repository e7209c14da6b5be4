// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/H0llyW00dzZ/sdk-to-mcp/src/internal/sdk"
	"github.com/H0llyW00dzZ/sdk-to-mcp/src/internal/sdk/analyze"
	"github.com/H0llyW00dzZ/sdk-to-mcp/src/internal/sdk/inspect"
	"github.com/H0llyW00dzZ/sdk-to-mcp/src/logger"
	"github.com/mark3labs/mcp-go/mcp"
)

// mcpLog is the package logger for tool handlers. MCP stdio must stay clean,
// so structured entries go to stderr.
var mcpLog = logger.NewMCPLogger(os.Stderr, false)

// handleDiscoverSDKMethods walks the named SDK and returns the useful methods
// as JSON: qualified name, signature, doc summary, and priority order.
func handleDiscoverSDKMethods(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sdkName, err := request.RequireString("sdk")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid sdk parameter: %v", err)), nil
	}

	methods, err := sdk.Discover(sdk.Options{
		SDKName:   sdkName,
		SourceDir: request.GetString("source", ""),
		MaxDepth:  request.GetInt("max_depth", 0),
		Log:       mcpLog,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Discovery failed: %v", err)), nil
	}

	limit := request.GetInt("limit", 50)
	truncated := false
	if limit > 0 && len(methods) > limit {
		methods = methods[:limit]
		truncated = true
	}

	type methodView struct {
		Signature string `json:"signature"`
		Package   string `json:"package"`
		Summary   string `json:"summary,omitempty"`
	}
	views := make([]methodView, 0, len(methods))
	for _, m := range methods {
		views = append(views, methodView{
			Signature: m.Signature(),
			Package:   m.Package,
			Summary:   m.Summary(),
		})
	}

	payload := map[string]any{
		"sdk":       sdkName,
		"count":     len(views),
		"truncated": truncated,
		"methods":   views,
	}
	return jsonResult(payload)
}

// handleAnalyzeSDKMethods runs discovery plus analysis and returns the tool
// definitions without writing any files.
func handleAnalyzeSDKMethods(ctx context.Context, request mcp.CallToolRequest, config *Config) (*mcp.CallToolResult, error) {
	sdkName, err := request.RequireString("sdk")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid sdk parameter: %v", err)), nil
	}

	opts := optionsFromRequest(ctx, request, config, sdkName)

	methods, err := sdk.Discover(opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Discovery failed: %v", err)), nil
	}

	tools, err := sdk.Analyze(ctx, opts, methods)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Analysis failed: %v", err)), nil
	}

	payload := map[string]any{
		"sdk":         sdkName,
		"methodCount": len(methods),
		"toolCount":   len(tools),
		"tools":       tools,
	}
	return jsonResult(payload)
}

// handleGenerateMCPServer runs the full pipeline and reports the written
// artifact paths.
func handleGenerateMCPServer(ctx context.Context, request mcp.CallToolRequest, config *Config) (*mcp.CallToolResult, error) {
	sdkName, err := request.RequireString("sdk")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid sdk parameter: %v", err)), nil
	}

	outcome, err := sdk.Convert(ctx, optionsFromRequest(ctx, request, config, sdkName))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Conversion failed: %v", err)), nil
	}

	payload := map[string]any{
		"sdk":        sdkName,
		"toolCount":  outcome.Result.ToolCount,
		"serverPath": outcome.Result.ServerPath,
		"configPath": outcome.Result.ConfigPath,
	}
	return jsonResult(payload)
}

// handleConvertSDK runs the full pipeline like generate_mcp_server but
// reports per-phase detail: discovered methods, tool definitions, and the
// written files.
func handleConvertSDK(ctx context.Context, request mcp.CallToolRequest, config *Config) (*mcp.CallToolResult, error) {
	sdkName, err := request.RequireString("sdk")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid sdk parameter: %v", err)), nil
	}

	outcome, err := sdk.Convert(ctx, optionsFromRequest(ctx, request, config, sdkName))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Conversion failed: %v", err)), nil
	}

	signatures := make([]string, 0, len(outcome.Methods))
	for _, m := range outcome.Methods {
		signatures = append(signatures, m.Signature())
	}

	payload := map[string]any{
		"sdk": sdkName,
		"phases": map[string]any{
			"discovery": map[string]any{
				"methodCount": len(outcome.Methods),
				"signatures":  signatures,
			},
			"analysis": map[string]any{
				"toolCount": len(outcome.Tools),
				"tools":     outcome.Tools,
			},
			"generation": outcome.Result,
		},
	}
	return jsonResult(payload)
}

// optionsFromRequest merges request arguments with the server config
// defaults into pipeline options. The model is resolved lazily: no_llm or a
// missing API key selects the heuristic path.
func optionsFromRequest(ctx context.Context, request mcp.CallToolRequest, config *Config, sdkName string) sdk.Options {
	opts := sdk.Options{
		SDKName:   sdkName,
		SourceDir: request.GetString("source", ""),
		Log:       mcpLog,
	}

	if config != nil {
		opts.OutputDir = config.Defaults.OutputDir
		opts.MaxMethods = config.Defaults.MaxMethods
		opts.BatchSize = config.Defaults.BatchSize
		opts.MaxDepth = config.Defaults.MaxDepth
	}
	if dir := request.GetString("output_dir", ""); dir != "" {
		opts.OutputDir = dir
	}
	if n := request.GetInt("max_methods", 0); n > 0 {
		opts.MaxMethods = n
	}
	if n := request.GetInt("batch_size", 0); n > 0 {
		opts.BatchSize = n
	}
	if n := request.GetInt("max_depth", 0); n > 0 {
		opts.MaxDepth = n
	}

	if !request.GetBool("no_llm", false) && config != nil && config.AI.APIKey != "" {
		model, err := analyze.NewGeminiModel(ctx, config.AI.APIKey, config.AI.Model)
		if err != nil {
			mcpLog.Printf("Model setup failed (%v), using heuristic analysis", err)
		} else {
			opts.Model = model
		}
	}
	return opts
}

// jsonResult marshals a payload into an indented text result.
func jsonResult(payload any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// knownSDKNames is re-exported for resources; the inspect package owns the
// mapping table.
func knownSDKNames() []string { return inspect.KnownSDKs() }
