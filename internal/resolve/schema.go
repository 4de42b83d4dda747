package resolve

import (
	"path/filepath"

	"promptpath/internal/types"
)

// schemaFilename is fixed; only the directory varies with the parameters.
const schemaFilename = "base.schema.md"

// SchemaPath resolves {schemaBaseDir}/{directive}/{layer}/base.schema.md.
func (r *Resolver) SchemaPath(params types.TwoParams) (string, error) {
	base := r.cfg.AppSchema.BaseDir
	if base == "" {
		return "", &InvalidPathError{Path: base, Reason: "empty schema base directory"}
	}

	path := filepath.Join(base, params.Directive.String(), params.Layer.String(), schemaFilename)
	if err := checkTraversal(path); err != nil {
		return "", err
	}
	return path, nil
}
