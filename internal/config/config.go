// Package config loads and merges the promptpath YAML configuration pair.
//
// Each profile owns two files under <root>/.promptpath/config/: an app file
// with deployment defaults and a user file with local overrides. The default
// profile reads app.yml/user.yml; a named profile p reads p-app.yml/p-user.yml.
// Missing files are not errors; the merge order is defaults, then app, then user.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"promptpath/internal/profile"
)

// ConfigDirName is the directory under the workspace root that holds the
// profile config pairs.
const ConfigDirName = ".promptpath/config"

// Config is the merged runtime configuration consumed by the resolution engine.
type Config struct {
	// WorkingDir is reserved for collaborators that resolve non-prompt,
	// non-schema files. The resolution engine itself never reads it.
	WorkingDir string       `yaml:"working_dir"`
	AppPrompt  PromptConfig `yaml:"app_prompt"`
	AppSchema  SchemaConfig `yaml:"app_schema"`
	Params     ParamsConfig `yaml:"params"`
}

// PromptConfig locates the prompt template tree.
type PromptConfig struct {
	BaseDir string `yaml:"base_dir"`
}

// SchemaConfig locates the schema tree.
type SchemaConfig struct {
	BaseDir string `yaml:"base_dir"`
}

// ParamsConfig carries the two-parameter validation settings.
type ParamsConfig struct {
	Two TwoParamsConfig `yaml:"two"`
}

// TwoParamsConfig holds the directive and layer vocabularies for the
// two-positional-parameter form.
type TwoParamsConfig struct {
	DirectiveType TypeConfig `yaml:"directiveType"`
	LayerType     TypeConfig `yaml:"layerType"`
}

// TypeConfig defines one parameter vocabulary. Pattern is a full-match
// regular expression; Tokens is the literal vocabulary used for layer
// inference and may be omitted.
type TypeConfig struct {
	Pattern string   `yaml:"pattern"`
	Tokens  []string `yaml:"tokens"`
}

// Default patterns for the two-parameter vocabularies.
const (
	DefaultDirectivePattern = "^(to|summary|defect)$"
	DefaultLayerPattern     = "^(project|issue|task)$"
)

// DefaultLayerTokens is the inference vocabulary used when a profile does
// not configure its own.
func DefaultLayerTokens() []string {
	return []string{"project", "issue", "task"}
}

// DefaultConfig returns a Config with the built-in defaults applied.
func DefaultConfig() Config {
	return Config{
		WorkingDir: ".promptpath/work",
		AppPrompt:  PromptConfig{BaseDir: "prompts"},
		AppSchema:  SchemaConfig{BaseDir: "schema"},
		Params: ParamsConfig{
			Two: TwoParamsConfig{
				DirectiveType: TypeConfig{Pattern: DefaultDirectivePattern},
				LayerType: TypeConfig{
					Pattern: DefaultLayerPattern,
					Tokens:  DefaultLayerTokens(),
				},
			},
		},
	}
}

// Load reads the profile's config pair from the config directory under root
// and merges it over the defaults. Absent files are skipped silently;
// unparseable YAML is an error.
func Load(root string, name profile.Name) (Config, error) {
	cfg := DefaultConfig()

	dir := filepath.Join(root, filepath.FromSlash(ConfigDirName))
	for _, file := range []string{
		name.FilePrefix() + "app.yml",
		name.FilePrefix() + "user.yml",
	} {
		if err := mergeFile(&cfg, filepath.Join(dir, file)); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// mergeFile unmarshals one YAML file over cfg in place. Keys absent from the
// file keep their current values, which is what makes app-then-user layering
// work without an explicit merge step.
func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
