// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package analyze turns discovered SDK methods into MCP tool definitions.
//
// The analyzer batches method signatures and doc comments into prompts for a
// language model (Gemini by default) and expects a JSON array of tool
// definitions back. Every failure mode degrades gracefully: a missing API key,
// a refused request, or an unparseable response all fall back to a heuristic
// conversion that derives tool names, descriptions, and input schemas directly
// from the Go signatures. The converter therefore always produces a server,
// just a better-described one when the model cooperates.
package analyze
