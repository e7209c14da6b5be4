// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package inspect discovers the callable surface of an installed Go SDK.
//
// It walks the SDK's source from the module cache (or a vendor directory, or an
// explicit path), enumerates exported methods, interface operations, and
// package-level functions together with their signatures and doc comments, and
// filters the result down to methods that are worth exposing as MCP tools.
// Well-known SDK names (kubernetes, github, azure) map to curated import paths
// and client types; any other name is treated as an import path directly.
package inspect
