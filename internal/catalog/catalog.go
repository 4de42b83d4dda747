// Package catalog enumerates the prompt templates available under the
// configured prompt base directory.
package catalog

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry is one available prompt template, decomposed from its path:
// {directive}/{layer}/f_{inputLayer}[_{adaptation}].md.
type Entry struct {
	Directive  string
	Layer      string
	InputLayer string
	Adaptation string
	Path       string
}

// Scan walks baseDir and collects every template file matching the layout.
// Files outside the directive/layer/f_*.md shape are skipped silently. A
// missing base directory yields an empty catalog, not an error. Results are
// sorted by path for deterministic output.
func Scan(baseDir string) ([]Entry, error) {
	var entries []Entry

	err := filepath.WalkDir(baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(baseDir, path)
		if err != nil {
			return err
		}
		parts := strings.Split(filepath.ToSlash(rel), "/")
		if len(parts) != 3 {
			return nil
		}

		name := parts[2]
		if !strings.HasPrefix(name, "f_") || !strings.HasSuffix(name, ".md") {
			return nil
		}
		stem := strings.TrimSuffix(strings.TrimPrefix(name, "f_"), ".md")
		if stem == "" {
			return nil
		}

		entry := Entry{
			Directive:  parts[0],
			Layer:      parts[1],
			InputLayer: stem,
			Path:       path,
		}
		if i := strings.IndexByte(stem, '_'); i >= 0 {
			entry.InputLayer = stem[:i]
			entry.Adaptation = stem[i+1:]
		}

		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries, nil
}
