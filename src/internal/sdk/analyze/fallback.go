// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package analyze

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/H0llyW00dzZ/sdk-to-mcp/src/internal/sdk/inspect"
)

// FallbackTool converts a method to a tool without model help. The name is
// the snake_cased receiver and method, the description comes from the doc
// comment when one exists, and the schema is inferred from the Go parameter
// types. Context parameters never surface as arguments; variadic and
// pointer-to-options parameters surface but are not required.
func FallbackTool(sdkName string, m inspect.Method) Tool {
	name := m.Name
	if m.Receiver != "" {
		name = m.Receiver + "_" + m.Name
	}

	desc := m.Summary()
	if desc == "" {
		desc = fmt.Sprintf("Calls %s from the %s SDK.", m.Signature(), sdkName)
	}

	properties := make(map[string]any)
	var required []string
	for i, p := range m.Params {
		if p.Type == "context.Context" {
			continue
		}
		argName := p.Name
		if argName == "" {
			argName = fmt.Sprintf("arg%d", i)
		}
		argName = SnakeCase(argName)
		properties[argName] = map[string]any{
			"type":        jsonType(p.Type),
			"description": fmt.Sprintf("Go parameter %s of type %s", p.Name, p.Type),
		}
		if !isOptionalParam(p) {
			required = append(required, argName)
		}
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}

	toolName := SnakeCase(name)
	return Tool{
		Name:        toolName,
		Description: desc,
		InputSchema: schema,
		Category:    Categorize(toolName),
		SDKMethod:   m.Name,
		SDKReceiver: m.Receiver,
	}
}

// Categorize buckets a tool by the verb its name starts with, so clients can
// group the surface into read, write, and exec operations.
func Categorize(toolName string) string {
	name := strings.ToLower(toolName)
	if i := strings.LastIndexByte(name, '_'); i >= 0 {
		// Receiver-prefixed fallback names keep the verb in the last segment
		// only when the receiver came first; check both ends.
		for _, segment := range strings.Split(name, "_") {
			if c := verbCategory(segment); c != "other" {
				return c
			}
		}
		return "other"
	}
	return verbCategory(name)
}

func verbCategory(word string) string {
	switch {
	case hasAnyPrefix(word, "get", "list", "read", "watch", "fetch", "describe"):
		return "read"
	case hasAnyPrefix(word, "create", "delete", "update", "patch", "replace", "apply", "scale", "set", "add", "remove", "push", "deploy"):
		return "write"
	case hasAnyPrefix(word, "exec", "logs", "run", "restart", "start", "stop"):
		return "exec"
	}
	return "other"
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// isOptionalParam treats variadic parameters and pointer-to-options structs
// as optional. SDK clients use both shapes for call options.
func isOptionalParam(p inspect.Param) bool {
	if strings.HasPrefix(p.Type, "...") {
		return true
	}
	return strings.HasPrefix(p.Type, "*") && strings.Contains(strings.ToLower(p.Type), "option")
}

// jsonType maps a Go type expression to the closest JSON Schema type.
func jsonType(goType string) string {
	t := strings.TrimPrefix(goType, "...")
	t = strings.TrimPrefix(t, "*")
	if t == "" {
		return "string"
	}

	switch {
	case t == "bool":
		return "boolean"
	case t == "string":
		return "string"
	case strings.HasPrefix(t, "int"), strings.HasPrefix(t, "uint"),
		strings.HasPrefix(t, "float"), t == "byte", t == "rune":
		return "number"
	case strings.HasPrefix(t, "[]"):
		return "array"
	case strings.HasPrefix(t, "map["):
		return "object"
	}
	// Named struct types (Pod specs, request bodies) arrive as JSON objects.
	if strings.Contains(t, ".") || unicode.IsUpper(rune(t[0])) {
		return "object"
	}
	return "string"
}

// SnakeCase converts Go identifiers to snake_case tool names, keeping
// acronym runs intact: CreatePodHTTP becomes create_pod_http.
func SnakeCase(s string) string {
	var sb strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '-' || r == ' ' || r == '.':
			sb.WriteByte('_')
			continue
		case unicode.IsUpper(r):
			if i > 0 && runes[i-1] != '_' &&
				(!unicode.IsUpper(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				sb.WriteByte('_')
			}
			sb.WriteRune(unicode.ToLower(r))
		default:
			sb.WriteRune(r)
		}
	}
	return strings.Trim(sb.String(), "_")
}
