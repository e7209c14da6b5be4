// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/H0llyW00dzZ/sdk-to-mcp/src/internal/sdk/analyze"
	"github.com/H0llyW00dzZ/sdk-to-mcp/src/mcp-server/templates"
	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// serverDisplayName is the name the server reports to MCP clients.
const serverDisplayName = "SDK-to-MCP Converter"

// ToolHandler defines the signature for tool handlers that matches [MCP]
// server expectations.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ToolHandler = func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// ToolHandlerWithConfig defines tool handlers that require access to server
// configuration, such as the AI API key or conversion defaults.
type ToolHandlerWithConfig func(ctx context.Context, request mcp.CallToolRequest, config *Config) (*mcp.CallToolResult, error)

// ResourceHandler defines the signature for resource handlers that provide
// static or dynamic resources.
type ResourceHandler = func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error)

// PromptHandler defines the signature for prompt handlers that provide
// predefined prompts for guided workflows.
type PromptHandler = func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error)

// ToolDefinition holds a tool definition and its handler. Role tags the
// tool's function (discovery, analysis, pipeline, ...) so the instructions
// template can reference tools by purpose instead of hardcoding names.
type ToolDefinition struct {
	Tool    mcp.Tool
	Handler ToolHandler
	Role    string
}

// ToolDefinitionWithConfig holds a tool definition whose handler receives the
// server configuration in addition to the standard request.
type ToolDefinitionWithConfig struct {
	Tool    mcp.Tool
	Handler ToolHandlerWithConfig
	Role    string
}

// ServerDependencies holds all dependencies needed to create the MCP server.
// It consolidates the components the builder assembles; use ServerBuilder
// rather than instantiating this directly.
type ServerDependencies struct {
	Config          *Config
	Embed           templates.EmbedFS
	Version         string
	Instructions    string
	Tools           []ToolDefinition
	ToolsWithConfig []ToolDefinitionWithConfig
	Resources       []server.ServerResource
	Prompts         []server.ServerPrompt
	SamplingHandler client.SamplingHandler
}

// ServerBuilder helps construct the [MCP] server with proper dependencies
// using a fluent interface.
//
// Example:
//
//	s, err := NewServerBuilder().
//	    WithConfig(config).
//	    WithVersion("0.3.1").
//	    WithDefaultTools().
//	    Build()
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ServerBuilder struct{ deps ServerDependencies }

// NewServerBuilder creates a new server builder with empty dependencies.
func NewServerBuilder() *ServerBuilder { return &ServerBuilder{} }

// WithConfig sets the server configuration. A nil config disables
// configuration-dependent features such as model-backed analysis.
func (b *ServerBuilder) WithConfig(config *Config) *ServerBuilder {
	b.deps.Config = config
	return b
}

// WithEmbed sets the embedded filesystem serving templates and documentation.
func (b *ServerBuilder) WithEmbed(embed templates.EmbedFS) *ServerBuilder {
	b.deps.Embed = embed
	return b
}

// WithVersion sets the server version string used for identification.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.deps.Version = version
	return b
}

// WithInstructions sets the instruction text sent to clients at
// initialization.
func (b *ServerBuilder) WithInstructions(instructions string) *ServerBuilder {
	b.deps.Instructions = instructions
	return b
}

// WithTools adds tool definitions that don't require configuration access.
func (b *ServerBuilder) WithTools(tools ...ToolDefinition) *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, tools...)
	return b
}

// WithToolsWithConfig adds tool definitions whose handlers receive the
// server configuration.
func (b *ServerBuilder) WithToolsWithConfig(tools ...ToolDefinitionWithConfig) *ServerBuilder {
	b.deps.ToolsWithConfig = append(b.deps.ToolsWithConfig, tools...)
	return b
}

// WithResources adds static and dynamic resources to the MCP server.
func (b *ServerBuilder) WithResources(resources ...server.ServerResource) *ServerBuilder {
	b.deps.Resources = append(b.deps.Resources, resources...)
	return b
}

// WithPrompts adds predefined prompts for guided workflows.
func (b *ServerBuilder) WithPrompts(prompts ...server.ServerPrompt) *ServerBuilder {
	b.deps.Prompts = append(b.deps.Prompts, prompts...)
	return b
}

// WithSampling adds a sampling handler for bidirectional AI communication.
func (b *ServerBuilder) WithSampling(handler client.SamplingHandler) *ServerBuilder {
	b.deps.SamplingHandler = handler
	return b
}

// WithDefaultTools adds the standard converter tools to the server.
func (b *ServerBuilder) WithDefaultTools() *ServerBuilder {
	tools, toolsWithConfig := createTools()
	b.deps.Tools = append(b.deps.Tools, tools...)
	b.deps.ToolsWithConfig = append(b.deps.ToolsWithConfig, toolsWithConfig...)
	return b
}

// Build creates the [MCP] server with all configured dependencies. Sampling
// is enabled when a handler was provided, and all tools, resources, and
// prompts are registered before the server is returned.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func (b *ServerBuilder) Build() (*server.MCPServer, error) {
	opts := []server.ServerOption{
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
		server.WithPromptCapabilities(true),
	}
	if b.deps.Instructions != "" {
		opts = append(opts, server.WithInstructions(b.deps.Instructions))
	}

	s := server.NewMCPServer(serverDisplayName, b.deps.Version, opts...)

	if b.deps.SamplingHandler != nil {
		s.EnableSampling()
	}

	for _, tool := range b.deps.Tools {
		s.AddTool(tool.Tool, tool.Handler)
	}

	// Tools that need config get the handler wrapped with the bound Config.
	for _, tool := range b.deps.ToolsWithConfig {
		handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return tool.Handler(ctx, request, b.deps.Config)
		}
		s.AddTool(tool.Tool, handler)
	}

	for _, resource := range b.deps.Resources {
		s.AddResource(resource.Resource, resource.Handler)
	}

	for _, prompt := range b.deps.Prompts {
		s.AddPrompt(prompt.Prompt, prompt.Handler)
	}

	return s, nil
}

// GeminiSamplingHandler routes client sampling requests through the same
// Gemini model the analyzer uses. When no API key is configured it returns a
// static guidance message instead of failing the request.
type GeminiSamplingHandler struct {
	apiKey string
	model  string
}

// NewGeminiSamplingHandler creates a sampling handler bound to the config's
// AI settings.
func NewGeminiSamplingHandler(config *Config) *GeminiSamplingHandler {
	h := &GeminiSamplingHandler{}
	if config != nil {
		h.apiKey = config.AI.APIKey
		h.model = config.AI.Model
	}
	return h
}

// CreateMessage handles sampling requests by flattening the conversation into
// a single prompt and calling the Gemini API.
func (h *GeminiSamplingHandler) CreateMessage(ctx context.Context, request mcp.CreateMessageRequest) (*mcp.CreateMessageResult, error) {
	if h.apiKey == "" {
		return h.handleNoAPIKey()
	}

	model, err := analyze.NewGeminiModel(ctx, h.apiKey, h.model)
	if err != nil {
		return nil, fmt.Errorf("sampling: %w", err)
	}

	var prompt strings.Builder
	if request.SystemPrompt != "" {
		prompt.WriteString(request.SystemPrompt)
		prompt.WriteString("\n\n")
	}
	for _, msg := range request.Messages {
		if text, ok := msg.Content.(mcp.TextContent); ok {
			prompt.WriteString(text.Text)
			prompt.WriteByte('\n')
		}
	}

	content, err := model.Generate(ctx, prompt.String())
	if err != nil {
		return nil, fmt.Errorf("sampling: %w", err)
	}

	return &mcp.CreateMessageResult{
		SamplingMessage: mcp.SamplingMessage{
			Role:    mcp.RoleAssistant,
			Content: mcp.NewTextContent(content),
		},
		Model:      h.model,
		StopReason: "end",
	}, nil
}

// handleNoAPIKey returns a helpful message when no API key is configured.
func (h *GeminiSamplingHandler) handleNoAPIKey() (*mcp.CreateMessageResult, error) {
	response := "AI API key not configured. Set GEMINI_API_KEY or the ai.apiKey field in the " +
		"server config file to enable model-backed analysis. Until then, conversions use the " +
		"heuristic fallback only."

	return &mcp.CreateMessageResult{
		SamplingMessage: mcp.SamplingMessage{
			Role:    mcp.RoleAssistant,
			Content: mcp.NewTextContent(response),
		},
		Model:      "not-configured",
		StopReason: "end",
	}, nil
}
