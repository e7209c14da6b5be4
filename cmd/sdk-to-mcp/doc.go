// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// sdk-to-mcp is a command-line tool that converts an installed Go SDK into
// a runnable MCP (Model Context Protocol) server.
//
// It discovers the SDK's callable surface via go/ast introspection, shapes
// each useful method into an MCP tool definition (with Gemini when an API key
// is available, heuristically otherwise), and writes a standalone server
// source file plus a client configuration block.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/sdk-to-mcp/cmd/sdk-to-mcp@latest
//
// # Usage
//
//	sdk-to-mcp <sdk-name> [FLAGS]
//
// # Flags
//
//	-o, --output-dir   Directory for the generated server and config (default: generated_mcp_servers)
//	-s, --source       Explicit SDK source directory (skips vendor/module cache lookup)
//	    --max-methods  Cap on methods sent to analysis (default: 100)
//	    --batch-size   Methods per model request (default: 3)
//	    --max-depth    Package walk depth below the SDK root
//	    --no-llm       Skip the language model and convert heuristically
//	-t, --table        Display discovered methods as markdown table
//	    --model        Gemini model used for analysis (default: gemini-2.0-flash)
//
// # Examples
//
// Convert the kubernetes client-go SDK:
//
//	export GEMINI_API_KEY=...
//	sdk-to-mcp kubernetes
//
// Convert an arbitrary import path without a model:
//
//	sdk-to-mcp github.com/google/go-github/v68/github --no-llm
//
// Inspect what discovery found before converting:
//
//	sdk-to-mcp azure --table
//
// Run the generated server:
//
//	go run generated_mcp_servers/kubernetes_mcp_server.go
package main
