// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package jsonrpc normalizes JSON-RPC 2.0 payloads exchanged between the
// in-memory MCP transport and clients that use mixed-case keys or omit the
// protocol version. The converter's transport bridge relies on this so that
// the official MCP SDK and mark3labs/mcp-go agree on message shape.
package jsonrpc
