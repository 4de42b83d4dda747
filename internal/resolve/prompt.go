package resolve

import (
	"fmt"
	"path/filepath"

	"promptpath/internal/types"
)

// PromptPath resolves the prompt template location:
//
//	{promptBaseDir}/{directive}/{layer}/f_{effectiveLayer}.md
//
// The effective layer is the explicit --input option when present, otherwise
// inferred from the --from path, otherwise the resolved layer itself. An
// --adaptation token becomes a filename suffix before the extension.
func (r *Resolver) PromptPath(params types.TwoParams, opts Options) (string, error) {
	base := r.cfg.AppPrompt.BaseDir
	if base == "" {
		return "", &InvalidPathError{Path: base, Reason: "empty prompt base directory"}
	}

	effective := opts.InputLayer
	if effective == "" {
		effective = InferLayer(opts.FromFile, r.tokens, params.Layer.String())
	}

	name := fmt.Sprintf("f_%s.md", effective)
	if opts.Adaptation != "" {
		name = fmt.Sprintf("f_%s_%s.md", effective, opts.Adaptation)
	}

	path := filepath.Join(base, params.Directive.String(), params.Layer.String(), name)
	if err := checkTraversal(path); err != nil {
		return "", err
	}
	return path, nil
}
