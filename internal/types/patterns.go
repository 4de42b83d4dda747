package types

import (
	"fmt"
	"regexp"

	"promptpath/internal/config"
)

// PatternProvider supplies the active profile's validation vocabulary. It is
// an injected capability so a deployment can redefine its directive and layer
// vocabulary purely through configuration.
type PatternProvider interface {
	// DirectivePattern returns the compiled directive pattern, or a
	// PatternNotFoundError when the profile configures none.
	DirectivePattern() (*regexp.Regexp, error)
	// LayerPattern returns the compiled layer pattern, or a
	// PatternNotFoundError when the profile configures none.
	LayerPattern() (*regexp.Regexp, error)
	// LayerTokens returns the literal layer vocabulary used for inference.
	LayerTokens() []string
}

// ConfigProvider is the configuration-backed PatternProvider. Patterns are
// compiled once at construction.
type ConfigProvider struct {
	directive *regexp.Regexp
	layer     *regexp.Regexp
	tokens    []string
}

var _ PatternProvider = (*ConfigProvider)(nil)

// NewConfigProvider compiles the two-parameter patterns from the merged
// configuration. An empty pattern string is left nil and surfaces later as
// PatternNotFoundError; a present but uncompilable pattern fails here.
func NewConfigProvider(cfg config.Config) (*ConfigProvider, error) {
	p := &ConfigProvider{tokens: cfg.Params.Two.LayerType.Tokens}
	if len(p.tokens) == 0 {
		p.tokens = config.DefaultLayerTokens()
	}

	var err error
	if raw := cfg.Params.Two.DirectiveType.Pattern; raw != "" {
		if p.directive, err = regexp.Compile(raw); err != nil {
			return nil, fmt.Errorf("compile directive pattern %q: %w", raw, err)
		}
	}
	if raw := cfg.Params.Two.LayerType.Pattern; raw != "" {
		if p.layer, err = regexp.Compile(raw); err != nil {
			return nil, fmt.Errorf("compile layer pattern %q: %w", raw, err)
		}
	}
	return p, nil
}

func (p *ConfigProvider) DirectivePattern() (*regexp.Regexp, error) {
	if p.directive == nil {
		return nil, &PatternNotFoundError{Kind: KindDirective}
	}
	return p.directive, nil
}

func (p *ConfigProvider) LayerPattern() (*regexp.Regexp, error) {
	if p.layer == nil {
		return nil, &PatternNotFoundError{Kind: KindLayer}
	}
	return p.layer, nil
}

func (p *ConfigProvider) LayerTokens() []string {
	return p.tokens
}

// fullMatch reports whether the pattern matches the whole value, not a
// substring. Patterns are not required to carry their own anchors.
func fullMatch(pattern *regexp.Regexp, value string) bool {
	loc := pattern.FindStringIndex(value)
	return loc != nil && loc[0] == 0 && loc[1] == len(value)
}
