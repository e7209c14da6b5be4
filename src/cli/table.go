// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"strings"

	"github.com/H0llyW00dzZ/sdk-to-mcp/src/internal/sdk/inspect"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// RenderMethodTable renders the discovered methods as a markdown table:
// ordinal, receiver, signature, and the doc summary, truncated so the table
// stays readable in a terminal.
func RenderMethodTable(methods []inspect.Method) string {
	if len(methods) == 0 {
		return "No methods to display"
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	headers := []string{"🔢 #", "🏷️ Receiver", "📛 Method", "📝 Summary"}
	table.Header(headers)

	var rows [][]string
	for i, m := range methods {
		receiver := m.Receiver
		if receiver == "" {
			receiver = "(package)"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			receiver,
			truncate(m.Signature(), 72),
			truncate(m.Summary(), 60),
		})
	}
	table.Bulk(rows)
	table.Render()
	return buf.String()
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit-1] + "…"
}
