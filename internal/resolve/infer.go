package resolve

import "strings"

// InferLayer scans the input file path for a layer vocabulary token and
// returns the earliest match, anywhere in the string, directory segments
// included. Ties at the same byte index go to the earlier token in the
// vocabulary. With no match, or no input path at all, fallback is returned.
// This is a pure string scan; the filesystem is never consulted.
func InferLayer(fromFile string, tokens []string, fallback string) string {
	if fromFile == "" {
		return fallback
	}

	best := -1
	found := ""
	for _, token := range tokens {
		if token == "" {
			continue
		}
		idx := strings.Index(fromFile, token)
		if idx < 0 {
			continue
		}
		if best < 0 || idx < best {
			best = idx
			found = token
		}
	}

	if best < 0 {
		return fallback
	}
	return found
}
