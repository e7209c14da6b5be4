// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	jsonrpcInternal "github.com/H0llyW00dzZ/sdk-to-mcp/src/internal/helper/jsonrpc"
	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/modelcontextprotocol/go-sdk/jsonrpc"
	mcptransport "github.com/modelcontextprotocol/go-sdk/mcp"
)

// jsonRPCError represents a JSON-RPC 2.0 error object
type jsonRPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// jsonRPCResponse represents a JSON-RPC 2.0 response object
type jsonRPCResponse struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      any           `json:"id"`
	Result  any           `json:"result,omitempty"`
	Error   *jsonRPCError `json:"error,omitempty"`
}

// InMemoryTransport implements ADK SDK mcp.Transport interface
// It bridges between [Official MCP SDK] transport expectations and [mark3labs/mcp-go] client,
// letting an agent framework drive the converter tools without a subprocess.
//
// [mark3labs/mcp-go]: https://pkg.go.dev/github.com/mark3labs/mcp-go
// [Official MCP SDK]: https://pkg.go.dev/github.com/modelcontextprotocol/go-sdk
type InMemoryTransport struct {
	client          *client.Client // mark3labs in-process client
	started         bool
	mu              sync.Mutex
	recvCh          chan []byte // channel for receiving messages (ReadMessage)
	sendCh          chan []byte // channel for sending messages (WriteMessage)
	ctx             context.Context
	cancel          context.CancelFunc
	samplingHandler client.SamplingHandler
	sem             chan struct{}  // Semaphore to limit concurrency
	shutdownWg      sync.WaitGroup // WaitGroup for graceful shutdown
	processWg       sync.WaitGroup // WaitGroup for message processing loop
}

// NewInMemoryTransport creates a new in-memory transport that implements mcp.Transport
// This is designed to work with ADK's [mcptoolset.New] expectations
func NewInMemoryTransport(ctx context.Context) *InMemoryTransport {
	ctx, cancel := context.WithCancel(ctx)
	return &InMemoryTransport{
		recvCh: make(chan []byte, 1),
		sendCh: make(chan []byte, 1),
		ctx:    ctx,
		cancel: cancel,
		sem:    make(chan struct{}, 100), // Limit to 100 concurrent requests
	}
}

// SetSamplingHandler sets the sampling handler for the transport.
// SDK analysis tools use sampling to reach the Gemini model, so agents that
// want model-backed conversions must set this before ConnectServer.
func (t *InMemoryTransport) SetSamplingHandler(handler client.SamplingHandler) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.samplingHandler = handler
}

// SendJSONRPCNotification sends a JSON-RPC notification to the receive channel
// This is useful for streaming conversion progress or other server-initiated events
func (t *InMemoryTransport) SendJSONRPCNotification(method string, params any) {
	notification := map[string]any{
		"jsonrpc": mcp.JSONRPC_VERSION,
		"method":  method,
		"params":  params,
	}
	t.sendResponse(notification)
}

// ReadMessage implements [mcp.Transport.ReadMessage]
// Uses channel-based message passing for in-memory communication.
// This method blocks until a message is available or the context is cancelled.
func (t *InMemoryTransport) ReadMessage() ([]byte, error) {
	select {
	case msg := <-t.recvCh:
		return msg, nil
	case <-t.ctx.Done():
		return nil, io.EOF
	}
}

// WriteMessage implements [mcp.Transport.WriteMessage]
func (t *InMemoryTransport) WriteMessage(data []byte) error {
	if err := t.ctx.Err(); err != nil {
		return err
	}
	select {
	case t.sendCh <- data:
		return nil
	case <-t.ctx.Done():
		return t.ctx.Err()
	}
}

// Close implements mcp.Transport.Close()
func (t *InMemoryTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
	}

	// Wait for message processor to stop (no new tasks added)
	t.processWg.Wait()

	// Wait for active goroutines to finish
	t.shutdownWg.Wait()

	// Don't close channels here as they may still be used by goroutines
	// The context cancellation will cause goroutines to exit cleanly
	t.started = false
	return nil
}

// Connect implements ADK SDK mcp.Transport interface
func (t *InMemoryTransport) Connect(ctx context.Context) (mcptransport.Connection, error) {
	return &ADKTransportConnection{
		transport: t,
	}, nil
}

// ConnectServer connects a mark3labs MCP server to this transport using an in-process client.
//
// This enables direct in-memory communication without process overhead, making it ideal
// for embedding the converter in an agent (like Google ADK). It also configures
// notification forwarding to support bidirectional features such as AI sampling.
func (t *InMemoryTransport) ConnectServer(ctx context.Context, srv *server.MCPServer) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return fmt.Errorf("transport already connected")
	}

	// Create mark3labs in-process client
	var err error
	if t.samplingHandler != nil {
		t.client, err = client.NewInProcessClientWithSamplingHandler(srv, t.samplingHandler)
	} else {
		t.client, err = client.NewInProcessClient(srv)
	}
	if err != nil {
		return fmt.Errorf("failed to create in-process client: %w", err)
	}

	// Forward server-initiated notifications to the bridge so streaming
	// works end to end.
	t.client.OnNotification(func(n mcp.JSONRPCNotification) {
		notification := map[string]any{
			"jsonrpc": mcp.JSONRPC_VERSION,
			"method":  n.Method,
			"params":  n.Params,
		}
		t.sendResponse(notification)
	})

	// Start the client
	if err := t.client.Start(t.ctx); err != nil {
		return fmt.Errorf("failed to start client: %w", err)
	}

	// Start message processing goroutine
	t.processWg.Add(1)
	go t.processMessages()

	t.started = true
	return nil
}

// processMessages handles JSON-RPC message processing between ADK and the MCP client
func (t *InMemoryTransport) processMessages() {
	defer t.processWg.Done()

	for {
		select {
		case <-t.ctx.Done():
			return
		case data := <-t.sendCh:
			// Acquire semaphore token (non-blocking check for context)
			select {
			case t.sem <- struct{}{}:
				t.shutdownWg.Add(1)
				// Handle message in a goroutine to avoid blocking the transport loop.
				// Long-running conversions (full SDK walks, LLM batches) must not
				// prevent notifications or concurrent requests from being processed.
				go func(data []byte) {
					defer func() {
						<-t.sem // Release token
						t.shutdownWg.Done()
					}()
					t.handleMessage(data)
				}(data)
			case <-t.ctx.Done():
				return
			}
		}
	}
}

// handleMessage parses, dispatches, and answers a single JSON-RPC message.
func (t *InMemoryTransport) handleMessage(data []byte) {
	var req map[string]any
	if err := json.Unmarshal(data, &req); err != nil {
		t.sendResponse(jsonRPCResponse{
			JSONRPC: mcp.JSONRPC_VERSION,
			ID:      nil,
			Error: &jsonRPCError{
				Code:    -32700,
				Message: "Parse error",
			},
		})
		return
	}

	// Normalize request keys to handle both lowercase and capitalized
	normalizedReq := jsonrpcInternal.Map(req)
	id := normalizedReq["id"]

	method, ok := normalizedReq["method"].(string)
	if !ok {
		// Only send error if it's a request (has ID)
		if id != nil {
			t.sendResponse(jsonRPCResponse{
				JSONRPC: mcp.JSONRPC_VERSION,
				ID:      id,
				Error: &jsonRPCError{
					Code:    -32600,
					Message: fmt.Sprintf("invalid method: expected string, got %T", normalizedReq["method"]),
				},
			})
		}
		return
	}

	// Handled entirely client-side; no bridge action needed
	if method == "notifications/initialized" {
		return
	}

	result, err := t.dispatch(method, normalizedReq)

	// JSON-RPC 2.0: Server MUST NOT reply to a Notification (request without ID)
	if id == nil {
		return
	}

	resp := jsonRPCResponse{
		JSONRPC: mcp.JSONRPC_VERSION,
		ID:      id,
	}
	if err != nil {
		code := -32603
		if strings.Contains(err.Error(), "invalid params") || strings.Contains(err.Error(), "missing params") {
			code = -32602
		}
		resp.Error = &jsonRPCError{
			Code:    code,
			Message: err.Error(),
		}
	} else {
		resp.Result = result
	}
	t.sendResponse(resp)
}

// dispatch routes a normalized JSON-RPC request to the in-process client.
func (t *InMemoryTransport) dispatch(method string, req map[string]any) (any, error) {
	if t.client == nil {
		return nil, fmt.Errorf("transport not connected")
	}

	switch method {
	case string(mcp.MethodInitialize):
		return t.dispatchInitialize(method, req)
	case string(mcp.MethodPing):
		if err := t.client.Ping(t.ctx); err != nil {
			return nil, err
		}
		return map[string]any{}, nil
	case string(mcp.MethodToolsList):
		return t.client.ListTools(t.ctx, mcp.ListToolsRequest{})
	case string(mcp.MethodToolsCall):
		return t.dispatchToolCall(method, req)
	case string(mcp.MethodResourcesList):
		listReq := mcp.ListResourcesRequest{}
		if params, ok := req["params"].(map[string]any); ok {
			if cursor, err := getOptionalStringParam(params, method, "cursor"); err == nil {
				listReq.Params.Cursor = mcp.Cursor(cursor)
			}
		}
		return t.client.ListResources(t.ctx, listReq)
	case string(mcp.MethodResourcesRead):
		params, err := getParams(req, method)
		if err != nil {
			return nil, err
		}
		uri, err := getStringParam(params, method, "uri")
		if err != nil {
			return nil, err
		}
		return t.client.ReadResource(t.ctx, mcp.ReadResourceRequest{
			Params: mcp.ReadResourceParams{URI: uri},
		})
	case string(mcp.MethodPromptsList):
		listReq := mcp.ListPromptsRequest{}
		if params, ok := req["params"].(map[string]any); ok {
			if cursor, err := getOptionalStringParam(params, method, "cursor"); err == nil {
				listReq.Params.Cursor = mcp.Cursor(cursor)
			}
		}
		return t.client.ListPrompts(t.ctx, listReq)
	case string(mcp.MethodPromptsGet):
		return t.dispatchPromptGet(method, req)
	default:
		return nil, fmt.Errorf("method not supported: %s", method)
	}
}

// dispatchInitialize handles the initialize handshake, preserving the caller's
// declared capabilities.
func (t *InMemoryTransport) dispatchInitialize(method string, req map[string]any) (any, error) {
	params, err := getParams(req, method)
	if err != nil {
		return nil, err
	}
	protocolVersion, err := getStringParam(params, method, "protocolVersion")
	if err != nil {
		return nil, err
	}

	var capabilities mcp.ClientCapabilities
	if caps, ok := params["capabilities"]; ok {
		// Use helper for safe conversion
		_ = jsonrpcInternal.UnmarshalFromMap(caps, &capabilities)
	}

	resp, err := t.client.Initialize(t.ctx, mcp.InitializeRequest{
		Params: mcp.InitializeParams{
			ProtocolVersion: protocolVersion,
			Capabilities:    capabilities,
		},
	})
	if err != nil {
		if mcp.IsUnsupportedProtocolVersion(err) {
			return nil, fmt.Errorf("unsupported protocol version: %w", err)
		}
		return nil, err
	}
	return resp, nil
}

// dispatchToolCall handles tools/call requests.
func (t *InMemoryTransport) dispatchToolCall(method string, req map[string]any) (any, error) {
	params, err := getParams(req, method)
	if err != nil {
		return nil, err
	}
	name, err := getStringParam(params, method, "name")
	if err != nil {
		return nil, err
	}
	args, err := getMapParam(params, method, "arguments")
	if err != nil {
		return nil, err
	}

	return t.client.CallTool(t.ctx, mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	})
}

// dispatchPromptGet handles prompts/get requests, coercing argument values to
// the string map the prompt API expects.
func (t *InMemoryTransport) dispatchPromptGet(method string, req map[string]any) (any, error) {
	params, err := getParams(req, method)
	if err != nil {
		return nil, err
	}
	name, err := getStringParam(params, method, "name")
	if err != nil {
		return nil, err
	}

	var arguments map[string]string
	if args, ok := params["arguments"].(map[string]any); ok {
		arguments = make(map[string]string)
		for k, v := range args {
			arguments[k] = fmt.Sprint(v)
		}
	}

	return t.client.GetPrompt(t.ctx, mcp.GetPromptRequest{
		Params: mcp.GetPromptParams{
			Name:      name,
			Arguments: arguments,
		},
	})
}

// sendResponse sends a JSON-RPC response to the receive channel
func (t *InMemoryTransport) sendResponse(resp any) {
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	select {
	case t.recvCh <- data:
	case <-t.ctx.Done():
		// Context cancelled, drop response
	}
}

// ADKTransportConnection wraps InMemoryTransport for ADK SDK
type ADKTransportConnection struct {
	transport *InMemoryTransport
}

// Read implements [mcptransport.Connection.Read]
func (c *ADKTransportConnection) Read(ctx context.Context) (jsonrpc.Message, error) {
	data, err := c.transport.ReadMessage()
	if err != nil {
		return nil, err
	}

	msg, err := jsonrpc.DecodeMessage(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode JSON-RPC message: %w", err)
	}

	return msg, nil
}

// Write implements mcptransport.Connection.Write
func (c *ADKTransportConnection) Write(ctx context.Context, msg jsonrpc.Message) error {
	data, err := jsonrpc.EncodeMessage(msg)
	if err != nil {
		return err
	}

	return c.transport.WriteMessage(data)
}

// Close implements mcptransport.Connection.Close
func (c *ADKTransportConnection) Close() error {
	return c.transport.Close()
}

// SessionID implements mcptransport.Connection.SessionID
func (c *ADKTransportConnection) SessionID() string {
	return "in-memory-transport"
}

// TransportBuilder helps construct MCP transports for different integration scenarios
//
// This builder provides transport creation utilities that can be used by different
// integration layers (ADK, CLI, etc.) to create appropriate transport mechanisms.
type TransportBuilder struct {
	serverBuilder *ServerBuilder
}

// NewTransportBuilder creates a new transport builder
func NewTransportBuilder() *TransportBuilder {
	return &TransportBuilder{
		serverBuilder: NewServerBuilder(),
	}
}

// WithConfig sets the server configuration
func (tb *TransportBuilder) WithConfig(config *Config) *TransportBuilder {
	tb.serverBuilder.WithConfig(config)
	return tb
}

// WithVersion sets the server version
func (tb *TransportBuilder) WithVersion(version string) *TransportBuilder {
	tb.serverBuilder.WithVersion(version)
	return tb
}

// WithDefaultTools adds the default SDK conversion tools
func (tb *TransportBuilder) WithDefaultTools() *TransportBuilder {
	tb.serverBuilder.WithDefaultTools()
	return tb
}

// BuildInMemoryTransport creates an in-memory MCP transport for ADK integration
//
// This follows the ADK pattern where [mcp.NewInMemoryTransports] creates paired
// client and server transports, the server connects to the server transport, and
// the client transport is returned for use with [mcptoolset.New].
//
// For our implementation using [mark3labs/mcp-go], we create the server using
// ServerBuilder, then return a transport that can communicate with it.
//
// [mark3labs/mcp-go]: https://pkg.go.dev/github.com/mark3labs/mcp-go
func (tb *TransportBuilder) BuildInMemoryTransport(ctx context.Context) (any, error) {
	srv, err := tb.serverBuilder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build server: %w", err)
	}

	transport := NewInMemoryTransport(ctx)
	if err := transport.ConnectServer(ctx, srv); err != nil {
		return nil, fmt.Errorf("failed to connect server to transport: %w", err)
	}

	return transport, nil
}
