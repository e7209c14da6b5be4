// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// newConnectedTransport builds a converter server and wires it to an
// in-memory transport ready for JSON-RPC traffic.
func newConnectedTransport(t *testing.T) *InMemoryTransport {
	t.Helper()
	t.Setenv(apiKeyEnv, "")

	config, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}

	srv, err := NewServerBuilder().
		WithConfig(config).
		WithVersion("test-version").
		WithDefaultTools().
		WithResources(createResources()...).
		WithPrompts(createPrompts()...).
		Build()
	if err != nil {
		t.Fatalf("failed to build server: %v", err)
	}

	transport := NewInMemoryTransport(context.Background())
	if err := transport.ConnectServer(context.Background(), srv); err != nil {
		t.Fatalf("ConnectServer failed: %v", err)
	}
	t.Cleanup(func() { transport.Close() })

	return transport
}

// roundTrip writes a JSON-RPC request and reads messages until the response
// with the matching id arrives, skipping notifications.
func roundTrip(t *testing.T, transport *InMemoryTransport, req map[string]any) map[string]any {
	t.Helper()

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}
	if err := transport.WriteMessage(data); err != nil {
		t.Fatalf("WriteMessage failed: %v", err)
	}

	deadline := time.After(10 * time.Second)
	for {
		select {
		case <-deadline:
			t.Fatal("timed out waiting for response")
		default:
		}

		raw, err := transport.ReadMessage()
		if err != nil {
			t.Fatalf("ReadMessage failed: %v", err)
		}

		var msg map[string]any
		if err := json.Unmarshal(raw, &msg); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		// Skip notifications while waiting for the response
		if msg["id"] == nil {
			continue
		}
		return msg
	}
}

// initializeTransport performs the MCP handshake over the transport.
func initializeTransport(t *testing.T, transport *InMemoryTransport) {
	t.Helper()

	resp := roundTrip(t, transport, map[string]any{
		"jsonrpc": mcp.JSONRPC_VERSION,
		"id":      1,
		"method":  string(mcp.MethodInitialize),
		"params": map[string]any{
			"protocolVersion": mcp.LATEST_PROTOCOL_VERSION,
			"capabilities":    map[string]any{},
		},
	})
	if resp["error"] != nil {
		t.Fatalf("initialize failed: %v", resp["error"])
	}
}

func TestInMemoryTransportToolsList(t *testing.T) {
	transport := newConnectedTransport(t)
	initializeTransport(t, transport)

	resp := roundTrip(t, transport, map[string]any{
		"jsonrpc": mcp.JSONRPC_VERSION,
		"id":      2,
		"method":  string(mcp.MethodToolsList),
	})
	if resp["error"] != nil {
		t.Fatalf("tools/list failed: %v", resp["error"])
	}

	data, _ := json.Marshal(resp["result"])
	listing := string(data)
	for _, expected := range []string{
		"discover_sdk_methods",
		"analyze_sdk_methods",
		"generate_mcp_server",
		"convert_sdk",
		"get_resource_usage",
	} {
		if !strings.Contains(listing, expected) {
			t.Errorf("expected tools/list to include %q. Got: %s", expected, listing)
		}
	}
}

func TestInMemoryTransportToolCall(t *testing.T) {
	transport := newConnectedTransport(t)
	initializeTransport(t, transport)

	sdkDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(sdkDir, "fleet.go"), []byte(fleetSDKSource), 0o644); err != nil {
		t.Fatalf("failed to write fake SDK: %v", err)
	}

	resp := roundTrip(t, transport, map[string]any{
		"jsonrpc": mcp.JSONRPC_VERSION,
		"id":      3,
		"method":  string(mcp.MethodToolsCall),
		"params": map[string]any{
			"name": "discover_sdk_methods",
			"arguments": map[string]any{
				"sdk":    "example.com/fleet",
				"source": sdkDir,
			},
		},
	})
	if resp["error"] != nil {
		t.Fatalf("tools/call failed: %v", resp["error"])
	}

	data, _ := json.Marshal(resp["result"])
	if !strings.Contains(string(data), "CreateFleet") {
		t.Errorf("expected discovery result to mention CreateFleet. Got: %s", string(data))
	}
}

func TestInMemoryTransportResourcesAndPrompts(t *testing.T) {
	transport := newConnectedTransport(t)
	initializeTransport(t, transport)

	resp := roundTrip(t, transport, map[string]any{
		"jsonrpc": mcp.JSONRPC_VERSION,
		"id":      4,
		"method":  string(mcp.MethodResourcesRead),
		"params":  map[string]any{"uri": "info://version"},
	})
	if resp["error"] != nil {
		t.Fatalf("resources/read failed: %v", resp["error"])
	}
	data, _ := json.Marshal(resp["result"])
	if !strings.Contains(string(data), "test-version") {
		t.Errorf("expected version resource to carry the server version. Got: %s", string(data))
	}

	resp = roundTrip(t, transport, map[string]any{
		"jsonrpc": mcp.JSONRPC_VERSION,
		"id":      5,
		"method":  string(mcp.MethodPromptsGet),
		"params": map[string]any{
			"name":      "sdk-conversion",
			"arguments": map[string]any{"sdk": "kubernetes"},
		},
	})
	if resp["error"] != nil {
		t.Fatalf("prompts/get failed: %v", resp["error"])
	}
	data, _ = json.Marshal(resp["result"])
	if !strings.Contains(string(data), "kubernetes") {
		t.Errorf("expected prompt to mention the requested SDK. Got: %s", string(data))
	}
}

func TestInMemoryTransportErrors(t *testing.T) {
	transport := newConnectedTransport(t)
	initializeTransport(t, transport)

	t.Run("parse error", func(t *testing.T) {
		if err := transport.WriteMessage([]byte("{broken")); err != nil {
			t.Fatalf("WriteMessage failed: %v", err)
		}
		raw, err := transport.ReadMessage()
		if err != nil {
			t.Fatalf("ReadMessage failed: %v", err)
		}
		if !strings.Contains(string(raw), "-32700") {
			t.Errorf("expected parse error code, got: %s", string(raw))
		}
	})

	t.Run("unknown method", func(t *testing.T) {
		resp := roundTrip(t, transport, map[string]any{
			"jsonrpc": mcp.JSONRPC_VERSION,
			"id":      6,
			"method":  "bogus/method",
		})
		if resp["error"] == nil {
			t.Fatal("expected error for unsupported method")
		}
	})

	t.Run("missing tool name", func(t *testing.T) {
		resp := roundTrip(t, transport, map[string]any{
			"jsonrpc": mcp.JSONRPC_VERSION,
			"id":      7,
			"method":  string(mcp.MethodToolsCall),
			"params":  map[string]any{},
		})
		if resp["error"] == nil {
			t.Fatal("expected error for missing tool name")
		}
	})
}

func TestInMemoryTransportDoubleConnect(t *testing.T) {
	transport := newConnectedTransport(t)

	config, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	srv, err := NewServerBuilder().WithConfig(config).WithVersion("test-version").Build()
	if err != nil {
		t.Fatalf("failed to build server: %v", err)
	}

	if err := transport.ConnectServer(context.Background(), srv); err == nil {
		t.Error("expected error when connecting an already connected transport")
	}
}

func TestInMemoryTransportCloseUnblocksRead(t *testing.T) {
	transport := NewInMemoryTransport(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := transport.ReadMessage()
		done <- err
	}()

	if err := transport.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	select {
	case err := <-done:
		if err == nil {
			t.Error("expected EOF after close")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ReadMessage did not unblock after Close")
	}
}

func TestTransportBuilderBuildInMemory(t *testing.T) {
	t.Setenv(apiKeyEnv, "")

	config, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}

	built, err := NewTransportBuilder().
		WithConfig(config).
		WithVersion("test-version").
		WithDefaultTools().
		BuildInMemoryTransport(context.Background())
	if err != nil {
		t.Fatalf("BuildInMemoryTransport failed: %v", err)
	}

	transport, ok := built.(*InMemoryTransport)
	if !ok {
		t.Fatalf("expected *InMemoryTransport, got %T", built)
	}
	defer transport.Close()

	initializeTransport(t, transport)
}

func TestADKTransportBuilder(t *testing.T) {
	t.Setenv(configFileEnv, "")
	t.Setenv(apiKeyEnv, "")

	builder := NewADKTransportBuilder().WithInMemoryTransport().WithVersion("test-version")
	if err := builder.ValidateConfig(); err != nil {
		t.Fatalf("ValidateConfig failed: %v", err)
	}

	built, err := builder.BuildTransport(context.Background())
	if err != nil {
		t.Fatalf("BuildTransport failed: %v", err)
	}
	transport, ok := built.(*InMemoryTransport)
	if !ok {
		t.Fatalf("expected *InMemoryTransport, got %T", built)
	}
	defer transport.Close()

	conn, err := transport.Connect(context.Background())
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	if conn.SessionID() != "in-memory-transport" {
		t.Errorf("unexpected session id: %q", conn.SessionID())
	}
}

func TestADKTransportBuilderRejectsUnknownType(t *testing.T) {
	builder := NewADKTransportBuilder()
	builder.config.TransportType = "tcp"

	if err := builder.ValidateConfig(); err == nil {
		t.Error("expected validation error for unknown transport type")
	}
	if _, err := builder.BuildTransport(context.Background()); err == nil {
		t.Error("expected build error for unknown transport type")
	}
}
