package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemplate(t *testing.T, base string, parts ...string) {
	t.Helper()
	path := filepath.Join(append([]string{base}, parts...)...)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestScan(t *testing.T) {
	base := t.TempDir()
	writeTemplate(t, base, "to", "issue", "f_issue.md")
	writeTemplate(t, base, "to", "issue", "f_issue_strict.md")
	writeTemplate(t, base, "summary", "task", "f_task.md")
	writeTemplate(t, base, "to", "issue", "README.md")      // not a template
	writeTemplate(t, base, "stray.md")                      // wrong depth
	writeTemplate(t, base, "to", "issue", "deep", "f_x.md") // wrong depth

	entries, err := Scan(base)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3: %+v", len(entries), entries)
	}

	// Sorted by path: summary before to.
	first := entries[0]
	if first.Directive != "summary" || first.Layer != "task" || first.InputLayer != "task" {
		t.Errorf("unexpected first entry: %+v", first)
	}

	var strict *Entry
	for i := range entries {
		if entries[i].Adaptation == "strict" {
			strict = &entries[i]
		}
	}
	if strict == nil {
		t.Fatal("adaptation variant not found")
	}
	if strict.InputLayer != "issue" {
		t.Errorf("adaptation entry input layer = %q, want issue", strict.InputLayer)
	}
}

func TestScanMissingBaseDir(t *testing.T) {
	entries, err := Scan(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("a missing base dir should not be an error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want none", len(entries))
	}
}
