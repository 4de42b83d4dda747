// Package profile validates the configuration profile selector passed via -c/--config.
package profile

import (
	"fmt"
	"regexp"
	"strings"
)

// namePattern constrains custom profile names: lowercase letters, digits,
// hyphen and underscore, 1 to 50 characters.
var namePattern = regexp.MustCompile(`^[a-z0-9_-]{1,50}$`)

// InvalidProfileNameError reports a profile selector that does not satisfy
// the name pattern. It is reported to the caller, never fatal on its own.
type InvalidProfileNameError struct {
	Value string
}

func (e *InvalidProfileNameError) Error() string {
	return fmt.Sprintf("invalid profile name %q: must match %s", e.Value, namePattern.String())
}

// Name is a validated configuration profile selector. The zero value is the
// default profile. Construct custom names through New only.
type Name struct {
	value string
}

// Default returns the default-profile Name.
func Default() Name {
	return Name{}
}

// New validates a raw profile selector. Absent or whitespace-only input
// resolves to the default profile rather than an error.
func New(raw string) (Name, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Default(), nil
	}
	if !namePattern.MatchString(trimmed) {
		return Default(), &InvalidProfileNameError{Value: trimmed}
	}
	return Name{value: trimmed}, nil
}

// IsDefault reports whether this is the default (unnamed) profile.
func (n Name) IsDefault() bool {
	return n.value == ""
}

// String returns the profile name, or the empty string for the default profile.
func (n Name) String() string {
	return n.value
}

// FilePrefix returns the prefix applied to config file names for this
// profile: "p-app.yml" for profile p, plain "app.yml" for the default.
func (n Name) FilePrefix() string {
	if n.value == "" {
		return ""
	}
	return n.value + "-"
}
