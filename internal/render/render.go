// Package render is the downstream consumer of the resolution engine: it
// loads the resolved prompt template, substitutes the variable table into it
// and writes the result to the resolved destination. Path existence
// validation lives here, not in the resolvers.
package render

import (
	"fmt"
	"os"
	"strings"

	"promptpath/internal/resolve"
)

// Render reads the prompt template named by the path set and substitutes
// every {name} occurrence from the table. Placeholders without a table entry
// are left untouched. A missing template, or a missing input file when one
// was resolved, is an error.
func Render(paths resolve.ResolvedPathSet, table map[string]string) (string, error) {
	if paths.InputPath != "" {
		if _, err := os.Stat(paths.InputPath); err != nil {
			return "", fmt.Errorf("input file %s: %w", paths.InputPath, err)
		}
	}

	data, err := os.ReadFile(paths.PromptPath)
	if err != nil {
		return "", fmt.Errorf("prompt template %s: %w", paths.PromptPath, err)
	}

	return Substitute(string(data), table), nil
}

// Substitute replaces {name} placeholders in text from the table.
func Substitute(text string, table map[string]string) string {
	if len(table) == 0 {
		return text
	}
	pairs := make([]string, 0, len(table)*2)
	for name, value := range table {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}
