package types

import "fmt"

// ParamKind names which of the two positional parameters an error concerns.
type ParamKind string

const (
	KindDirective ParamKind = "directive"
	KindLayer     ParamKind = "layer"
)

// PatternNotFoundError indicates the active profile has no usable validation
// pattern configured for the parameter kind. This is a configuration defect,
// distinct from a value failing to match an existing pattern.
type PatternNotFoundError struct {
	Kind ParamKind
}

func (e *PatternNotFoundError) Error() string {
	return fmt.Sprintf("no %s pattern configured for the active profile", e.Kind)
}

// PatternValidationError indicates a raw value did not satisfy the active
// pattern. Both sides are carried so the failure can be reported precisely.
type PatternValidationError struct {
	Kind    ParamKind
	Value   string
	Pattern string
}

func (e *PatternValidationError) Error() string {
	return fmt.Sprintf("%s %q does not match pattern %s", e.Kind, e.Value, e.Pattern)
}
