package profile

import (
	"errors"
	"strings"
	"testing"
)

func TestNewDefaultStates(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n"} {
		n, err := New(raw)
		if err != nil {
			t.Fatalf("New(%q) returned error: %v", raw, err)
		}
		if !n.IsDefault() {
			t.Errorf("New(%q) should resolve to the default profile", raw)
		}
		if n.FilePrefix() != "" {
			t.Errorf("default profile should have empty file prefix, got %q", n.FilePrefix())
		}
	}
}

func TestNewValidNames(t *testing.T) {
	cases := []string{"dev", "staging-2", "team_a", "a", strings.Repeat("x", 50), "  prod  "}
	for _, raw := range cases {
		n, err := New(raw)
		if err != nil {
			t.Fatalf("New(%q) returned error: %v", raw, err)
		}
		if n.IsDefault() {
			t.Errorf("New(%q) should not be the default profile", raw)
		}
		if got, want := n.String(), strings.TrimSpace(raw); got != want {
			t.Errorf("New(%q).String() = %q, want trimmed input %q", raw, got, want)
		}
	}
}

func TestNewInvalidNames(t *testing.T) {
	cases := []string{
		"Prod",                   // uppercase
		"my profile",             // inner whitespace
		"dév",                    // non-ASCII
		"dev!",                   // punctuation
		strings.Repeat("x", 51),  // too long
		"a.b",                    // dot
	}
	for _, raw := range cases {
		_, err := New(raw)
		if err == nil {
			t.Errorf("New(%q) should fail", raw)
			continue
		}
		var invalid *InvalidProfileNameError
		if !errors.As(err, &invalid) {
			t.Errorf("New(%q) error should be InvalidProfileNameError, got %T", raw, err)
		}
	}
}

func TestNameEquality(t *testing.T) {
	a, _ := New("dev")
	b, _ := New(" dev ")
	if a != b {
		t.Errorf("equal trimmed names should compare equal")
	}
}

func TestFilePrefix(t *testing.T) {
	n, _ := New("search")
	if got := n.FilePrefix(); got != "search-" {
		t.Errorf("FilePrefix() = %q, want %q", got, "search-")
	}
}
