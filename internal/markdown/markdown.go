// Package markdown renders the small set of Markdown shapes the CLI emits.
package markdown

import (
	"fmt"
	"strings"
)

// Table renders a Markdown table. Rows must already be sorted if
// deterministic output is required.
func Table(headers []string, rows [][]string) string {
	var b strings.Builder

	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")

	b.WriteString("|")
	for range headers {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")

	for _, row := range rows {
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}

	return b.String()
}

// Header renders a Markdown header at the given level.
func Header(level int, text string) string {
	return fmt.Sprintf("%s %s\n\n", strings.Repeat("#", level), text)
}

// List renders a simple unordered Markdown list.
func List(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(fmt.Sprintf("- %s\n", item))
	}
	return b.String()
}
