package types

// TwoParams bundles the validated positional parameters of one invocation.
type TwoParams struct {
	Directive DirectiveType
	Layer     LayerType
}

// CreateBoth validates the directive and the layer together. The check is
// deliberately fail-fast, directive first, because the layer is meaningless
// without a valid directive; it never returns a partial result.
func CreateBoth(rawDirective, rawLayer string, provider PatternProvider) (TwoParams, error) {
	directive, err := NewDirective(rawDirective, provider)
	if err != nil {
		return TwoParams{}, err
	}
	layer, err := NewLayer(rawLayer, provider)
	if err != nil {
		return TwoParams{}, err
	}
	return TwoParams{Directive: directive, Layer: layer}, nil
}
