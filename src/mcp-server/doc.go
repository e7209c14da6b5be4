// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver provides the [MCP] server framework for the SDK-to-MCP
// converter. It exposes the conversion pipeline itself over the Model Context
// Protocol: tools for discovering an SDK's methods, analyzing them into tool
// definitions, generating runnable servers, and running the full pipeline in
// one call, plus static resources and guided prompts. The package uses a
// builder pattern for server construction and supports bidirectional AI
// communication through sampling.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
