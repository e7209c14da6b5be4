// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package templates embeds the markdown templates the MCP server renders at
// startup: client-facing instructions describing the converter's tools, and
// the SDK mapping reference served as a static resource.
package templates
