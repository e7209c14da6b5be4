// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package sdk orchestrates the three conversion phases: inspect discovers an
// SDK's methods, analyze turns them into MCP tool definitions, and generate
// writes the runnable server and its client configuration. The CLI and the
// MCP server mode both drive the pipeline through Convert so their behavior
// never drifts apart.
package sdk
