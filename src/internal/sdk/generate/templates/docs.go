// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package templates embeds the text/template sources the generator renders
// into standalone MCP server files. Keeping the templates as real files makes
// the emitted Go code reviewable without running the converter.
package templates
