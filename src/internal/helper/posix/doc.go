// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides cross-platform helpers for resolving the running
// executable's display name. The CLI uses it for usage strings and the
// generator embeds it in emitted MCP configuration files so the "command"
// entry matches the binary the user actually invoked.
package posix
