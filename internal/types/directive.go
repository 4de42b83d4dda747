// Package types holds the validated two-parameter values. DirectiveType and
// LayerType can only be constructed through their validating factories, so a
// value in hand is always known to satisfy the active profile's pattern.
package types

// DirectiveType is a validated processing directive such as "to", "summary"
// or "defect". Immutable after construction.
type DirectiveType struct {
	value string
}

// NewDirective validates raw against the provider's directive pattern.
func NewDirective(raw string, provider PatternProvider) (DirectiveType, error) {
	pattern, err := provider.DirectivePattern()
	if err != nil {
		return DirectiveType{}, err
	}
	if !fullMatch(pattern, raw) {
		return DirectiveType{}, &PatternValidationError{
			Kind:    KindDirective,
			Value:   raw,
			Pattern: pattern.String(),
		}
	}
	return DirectiveType{value: raw}, nil
}

// String returns the validated directive value.
func (d DirectiveType) String() string {
	return d.value
}
