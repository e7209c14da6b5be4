// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the SDK-to-MCP
// converter. It implements a Cobra-based CLI that runs the full conversion
// pipeline (discover an SDK's methods, analyze them into MCP tool
// definitions, generate a runnable server and client config), with flags for
// source resolution, analysis limits, offline operation, and a markdown
// summary table of the discovered surface. The package integrates with the
// logger package for progress output and reports failures as wrapped errors.
package cli
