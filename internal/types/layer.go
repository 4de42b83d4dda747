package types

// LayerType is a validated hierarchy layer such as "project", "issue" or
// "task". Immutable after construction.
type LayerType struct {
	value string
	level int
}

// Hierarchy levels for the standard layers. Custom layers get level 0. The
// level orders layers for display only; path construction never reads it.
var standardLevels = map[string]int{
	"project": 1,
	"issue":   2,
	"task":    3,
}

// NewLayer validates raw against the provider's layer pattern.
func NewLayer(raw string, provider PatternProvider) (LayerType, error) {
	pattern, err := provider.LayerPattern()
	if err != nil {
		return LayerType{}, err
	}
	if !fullMatch(pattern, raw) {
		return LayerType{}, &PatternValidationError{
			Kind:    KindLayer,
			Value:   raw,
			Pattern: pattern.String(),
		}
	}
	return LayerType{value: raw, level: standardLevels[raw]}, nil
}

// String returns the validated layer value.
func (l LayerType) String() string {
	return l.value
}

// HierarchyLevel returns the layer's position in the standard hierarchy,
// or 0 for a non-standard layer.
func (l LayerType) HierarchyLevel() int {
	return l.level
}
