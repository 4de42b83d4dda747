package resolve

import (
	"os"
	"path/filepath"
	"strings"

	"promptpath/internal/types"
)

// OutputPath is the resolved destination, kept as a directory/filename pair
// so the writer can create the directory at write time.
type OutputPath struct {
	Dir      string
	Filename string
}

// OutputPath disambiguates the --destination option:
//
//  1. absent: directory is the layer name, filename auto-generated;
//  2. a directory reference (existing directory, or separator/dot-relative
//     form without a dotted last segment): auto-generated filename inside it;
//  3. separator plus dotted last segment, no such directory: a literal file
//     path used unmodified;
//  4. no separator at all: a filename placed under the layer-named directory.
//
// The directory-existence probe runs before the extension check because an
// extant directory wins regardless of dots in its name. Nothing is created
// here; directory creation is deferred to write time.
func (r *Resolver) OutputPath(layer types.LayerType, opts Options) (OutputPath, error) {
	dest := opts.Destination

	if dest == "" {
		return r.autoNamed(layer.String())
	}

	if !isDirectoryish(dest) {
		// Bare filename, taken verbatim under the layer directory.
		return r.finish(OutputPath{Dir: layer.String(), Filename: dest})
	}

	cleaned := filepath.Clean(dest)

	if info, err := os.Stat(cleaned); err == nil && info.IsDir() {
		return r.autoNamed(cleaned)
	}
	if strings.Contains(filepath.Base(cleaned), ".") {
		return r.finish(OutputPath{
			Dir:      filepath.Dir(cleaned),
			Filename: filepath.Base(cleaned),
		})
	}
	return r.autoNamed(cleaned)
}

// isDirectoryish reports whether dest is eligible for directory treatment:
// it contains a path separator or is a dot-relative reference. A value
// without either is always a bare filename.
func isDirectoryish(dest string) bool {
	if strings.ContainsRune(dest, '/') || strings.ContainsRune(dest, filepath.Separator) {
		return true
	}
	return dest == "." || dest == ".."
}

// autoNamed generates a collision-free filename inside dir.
func (r *Resolver) autoNamed(dir string) (OutputPath, error) {
	name, err := r.hashes.Generate(dir)
	if err != nil {
		return OutputPath{}, err
	}
	return r.finish(OutputPath{Dir: dir, Filename: name})
}

func (r *Resolver) finish(out OutputPath) (OutputPath, error) {
	if out.Filename == "" {
		return OutputPath{}, &InvalidPathError{Path: out.Dir, Reason: "empty output filename"}
	}
	if err := checkTraversal(filepath.Join(out.Dir, out.Filename)); err != nil {
		return OutputPath{}, err
	}
	return out, nil
}
