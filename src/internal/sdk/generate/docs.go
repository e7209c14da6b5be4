// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package generate renders analyzed tool definitions into runnable artifacts:
// a standalone Go MCP server file built on mark3labs/mcp-go, and a JSON
// configuration block ready to paste into an MCP client's settings. Output
// files are named after the SDK and overwritten on every run so repeated
// conversions stay idempotent. Tool schemas are validated as JSON Schema
// before they reach the template; a tool with a broken schema is demoted to a
// permissive one rather than producing a server that rejects every call.
package generate
