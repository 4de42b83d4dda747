package resolve

// InputPath resolves the input source. The --from value wins and is used
// verbatim, absolute or relative, with no directory completion even for a
// bare filename. Without --from the path is empty and the input is expected
// on stdin instead.
func (r *Resolver) InputPath(opts Options) (string, error) {
	if opts.FromFile == "" {
		return "", nil
	}
	if err := checkTraversal(opts.FromFile); err != nil {
		return "", err
	}
	return opts.FromFile, nil
}
