package resolve

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

var autoNamePattern = regexp.MustCompile(`^\d{8}_[A-Za-z0-9]{10,16}\.md$`)

func TestOutputPathDestinationAbsent(t *testing.T) {
	r, params := testResolver(t)

	out, err := r.OutputPath(params.Layer, Options{})
	if err != nil {
		t.Fatalf("OutputPath failed: %v", err)
	}
	if out.Dir != "issue" {
		t.Errorf("Dir = %q, want layer name", out.Dir)
	}
	if !autoNamePattern.MatchString(out.Filename) {
		t.Errorf("Filename = %q, want auto-generated form", out.Filename)
	}
}

func TestOutputPathBareFilename(t *testing.T) {
	r, params := testResolver(t)

	out, err := r.OutputPath(params.Layer, Options{Destination: "report.md"})
	if err != nil {
		t.Fatalf("OutputPath failed: %v", err)
	}
	if out.Dir != "issue" || out.Filename != "report.md" {
		t.Errorf("got %q/%q, want issue/report.md", out.Dir, out.Filename)
	}
}

func TestOutputPathBareNameWithoutExtension(t *testing.T) {
	r, params := testResolver(t)

	// No separator means filename, dots or not.
	out, err := r.OutputPath(params.Layer, Options{Destination: "report"})
	if err != nil {
		t.Fatalf("OutputPath failed: %v", err)
	}
	if out.Dir != "issue" || out.Filename != "report" {
		t.Errorf("got %q/%q, want issue/report", out.Dir, out.Filename)
	}
}

func TestOutputPathLiteralFilePath(t *testing.T) {
	r, params := testResolver(t)
	dest := filepath.Join(t.TempDir(), "out", "report.md")

	out, err := r.OutputPath(params.Layer, Options{Destination: dest})
	if err != nil {
		t.Fatalf("OutputPath failed: %v", err)
	}
	if out.Dir != filepath.Dir(dest) || out.Filename != "report.md" {
		t.Errorf("got %q/%q, want literal split of %q", out.Dir, out.Filename, dest)
	}
}

func TestOutputPathSeparatorWithoutDot(t *testing.T) {
	r, params := testResolver(t)
	dest := filepath.Join(t.TempDir(), "reports")

	out, err := r.OutputPath(params.Layer, Options{Destination: dest})
	if err != nil {
		t.Fatalf("OutputPath failed: %v", err)
	}
	if out.Dir != dest {
		t.Errorf("Dir = %q, want %q", out.Dir, dest)
	}
	if !autoNamePattern.MatchString(out.Filename) {
		t.Errorf("Filename = %q, want auto-generated form", out.Filename)
	}
}

func TestOutputPathExistingDirectoryWinsOverExtension(t *testing.T) {
	r, params := testResolver(t)

	// A directory whose name looks like a file: the existence check runs
	// first, so it is still treated as a directory.
	base := t.TempDir()
	dest := filepath.Join(base, "archive.md")
	if err := os.MkdirAll(dest, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	out, err := r.OutputPath(params.Layer, Options{Destination: dest})
	if err != nil {
		t.Fatalf("OutputPath failed: %v", err)
	}
	if out.Dir != dest {
		t.Errorf("Dir = %q, want the existing directory %q", out.Dir, dest)
	}
	if !autoNamePattern.MatchString(out.Filename) {
		t.Errorf("Filename = %q, want auto-generated form", out.Filename)
	}
}

func TestOutputPathDotRelative(t *testing.T) {
	r, params := testResolver(t)

	out, err := r.OutputPath(params.Layer, Options{Destination: "./reports"})
	if err != nil {
		t.Fatalf("OutputPath failed: %v", err)
	}
	if out.Dir != "reports" {
		t.Errorf("Dir = %q, want cleaned %q", out.Dir, "reports")
	}
	if !autoNamePattern.MatchString(out.Filename) {
		t.Errorf("Filename = %q, want auto-generated form", out.Filename)
	}
}

func TestOutputPathDirectoryCreationDeferred(t *testing.T) {
	r, params := testResolver(t)
	dest := filepath.Join(t.TempDir(), "not", "yet", "made")

	out, err := r.OutputPath(params.Layer, Options{Destination: dest})
	if err != nil {
		t.Fatalf("OutputPath failed: %v", err)
	}
	if _, statErr := os.Stat(out.Dir); !os.IsNotExist(statErr) {
		t.Errorf("resolution must not create directories, stat err = %v", statErr)
	}
}

func TestOutputPathTraversalRejected(t *testing.T) {
	r, params := testResolver(t)

	_, err := r.OutputPath(params.Layer, Options{Destination: "../escape/report.md"})
	if err == nil {
		t.Fatal("destination escaping the root should be rejected")
	}
}
