package check

import "strings"

// PathSpec is a single configured check target.
type PathSpec struct {
	// Path is the filesystem path to check.
	Path string

	// Alias replaces the path in the output when HasAlias is set, even if it
	// is empty. Otherwise the normalized path is shown.
	Alias string

	// HasAlias is set when the token carried an "=" alias part.
	HasAlias bool

	// Optional paths are skipped silently when they are not mounted.
	Optional bool
}

// ParsePathSpec parses a token of the form "<path>[?][=<alias>]". Only the
// first "=" separates the alias, and a single trailing "?" on the path part
// marks the path as optional.
func ParsePathSpec(token string) PathSpec {
	spec := PathSpec{Path: token}

	if path, alias, found := strings.Cut(token, "="); found {
		spec.Path = path
		spec.Alias = alias
		spec.HasAlias = true
	}

	if p, ok := strings.CutSuffix(spec.Path, "?"); ok {
		spec.Path = p
		spec.Optional = true
	}

	return spec
}

// ParsePathSpecs parses a list of tokens with [ParsePathSpec], keeping their
// order.
func ParsePathSpecs(tokens []string) []PathSpec {
	specs := make([]PathSpec, 0, len(tokens))
	for _, token := range tokens {
		specs = append(specs, ParsePathSpec(token))
	}

	return specs
}
