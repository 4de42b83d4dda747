// Package resolve derives the prompt, schema, input and output paths for one
// invocation from the merged configuration and the validated two-parameter
// pair. Resolution is pure string work except for two local filesystem reads:
// the directory-existence probe that disambiguates the destination option and
// the collision probe for auto-generated filenames. Whether the resolved
// artifacts exist is the renderer's concern, not this package's.
package resolve

import (
	"fmt"
	"path/filepath"
	"strings"

	"promptpath/internal/config"
	"promptpath/internal/types"
)

// Options carries the CLI option values the resolvers consume.
type Options struct {
	FromFile    string // -f/--from
	Destination string // -o/--destination
	InputLayer  string // -i/--input
	Adaptation  string // -a/--adaptation
}

// ResolvedPathSet is the engine's output bundle, handed to the renderer.
// InputPath is empty when no source was given; every other field is non-empty
// and free of path-traversal segments.
type ResolvedPathSet struct {
	PromptPath     string
	SchemaPath     string
	InputPath      string
	OutputDir      string
	OutputFilename string
}

// OutputPath returns the joined destination path.
func (s ResolvedPathSet) OutputPath() string {
	return filepath.Join(s.OutputDir, s.OutputFilename)
}

// InvalidPathError reports a path that is empty where a value is required,
// or that escapes the project root through a ".." segment.
type InvalidPathError struct {
	Path   string
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid path %q: %s", e.Path, e.Reason)
}

// Resolver derives the full path set. Base directories are taken from the
// configuration and resolved relative to the process working directory, never
// relative to the configured working_dir.
type Resolver struct {
	cfg    config.Config
	tokens []string
	hashes *HashGenerator
}

// New builds a Resolver over the merged configuration. The provider supplies
// the layer vocabulary used for inference.
func New(cfg config.Config, provider types.PatternProvider) *Resolver {
	return &Resolver{
		cfg:    cfg,
		tokens: provider.LayerTokens(),
		hashes: NewHashGenerator(),
	}
}

// Resolve produces the complete path set for one invocation.
func (r *Resolver) Resolve(params types.TwoParams, opts Options) (ResolvedPathSet, error) {
	promptPath, err := r.PromptPath(params, opts)
	if err != nil {
		return ResolvedPathSet{}, err
	}
	schemaPath, err := r.SchemaPath(params)
	if err != nil {
		return ResolvedPathSet{}, err
	}
	inputPath, err := r.InputPath(opts)
	if err != nil {
		return ResolvedPathSet{}, err
	}
	out, err := r.OutputPath(params.Layer, opts)
	if err != nil {
		return ResolvedPathSet{}, err
	}
	return ResolvedPathSet{
		PromptPath:     promptPath,
		SchemaPath:     schemaPath,
		InputPath:      inputPath,
		OutputDir:      out.Dir,
		OutputFilename: out.Filename,
	}, nil
}

// checkTraversal rejects paths that still contain a ".." segment after
// cleaning, which is the point where a relative path would escape the root.
func checkTraversal(path string) error {
	for _, seg := range strings.Split(filepath.ToSlash(path), "/") {
		if seg == ".." {
			return &InvalidPathError{Path: path, Reason: "path-traversal segment"}
		}
	}
	return nil
}
