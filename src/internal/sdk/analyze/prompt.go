// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package analyze

import (
	"fmt"

	"github.com/H0llyW00dzZ/sdk-to-mcp/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/sdk-to-mcp/src/internal/sdk/inspect"
)

// BuildPrompt renders the analysis prompt for one batch of methods. The
// contract with the model is strict: a bare JSON array, one object per
// method, with name, description, and inputSchema keys. ParseTools tolerates
// deviations, but the tighter the ask the less often the fallback fires.
func BuildPrompt(sdkName string, batch []inspect.Method) string {
	buf := gc.Default.Get()
	defer gc.Default.Put(buf)

	fmt.Fprintf(buf, "You are an expert in API design and the Model Context Protocol (MCP).\n")
	fmt.Fprintf(buf, "Convert the following %s SDK methods into MCP tool definitions.\n\n", sdkName)
	buf.WriteString("For each method, produce one JSON object with exactly these keys:\n")
	buf.WriteString("  \"name\": a short snake_case tool name derived from the method\n")
	buf.WriteString("  \"description\": one or two sentences describing what the tool does for an operator\n")
	buf.WriteString("  \"inputSchema\": a JSON Schema object for the arguments a caller must supply\n")
	buf.WriteString("    (type \"object\", a \"properties\" map, and a \"required\" array; omit context\n")
	buf.WriteString("    parameters and optional Go option structs from required)\n\n")
	buf.WriteString("Methods:\n\n")

	for i, m := range batch {
		fmt.Fprintf(buf, "%d. %s\n", i+1, m.Signature())
		fmt.Fprintf(buf, "   package: %s\n", m.Package)
		if docText := m.Doc; docText != "" {
			fmt.Fprintf(buf, "   doc: %s\n", docText)
		}
		buf.WriteByte('\n')
	}

	buf.WriteString("Respond with ONLY a JSON array containing one object per method, in the same\n")
	buf.WriteString("order as listed. No markdown fences, no commentary.\n")
	return buf.String()
}
