package parsernode

import "github.com/specialistvlad/parsernode/internal/nodeargs"

// Option sets one construction parameter. Options only fill the parameter
// bag; the node contracts decide which of them are accepted.
type Option func(nodeargs.Params)

func collect(opts []Option) nodeargs.Params {
	params := make(nodeargs.Params, len(opts))
	for _, opt := range opts {
		opt(params)
	}
	return params
}

// WithAncestor sets the owning node. Pass nil for a root node.
func WithAncestor(ancestor Node) Option {
	return func(p nodeargs.Params) {
		p[nodeargs.Ancestor] = ancestor
	}
}

func WithDirty(dirty bool) Option {
	return func(p nodeargs.Params) { p[nodeargs.Dirty] = dirty }
}

func WithFilepath(path string) Option {
	return func(p nodeargs.Params) { p[nodeargs.Filepath] = path }
}

// WithMetadata sets the metadata map and switches the call into
// metadata-only mode.
func WithMetadata(metadata map[string]any) Option {
	return func(p nodeargs.Params) { p[nodeargs.Metadata] = metadata }
}

func WithComment(comment string) Option {
	return func(p nodeargs.Params) { p[nodeargs.Comment] = comment }
}

func WithName(name string) Option {
	return func(p nodeargs.Params) { p[nodeargs.Name] = name }
}

func WithParameters(parameters ...string) Option {
	return func(p nodeargs.Params) { p[nodeargs.Parameters] = append([]string{}, parameters...) }
}

func WithEnabled(enabled bool) Option {
	return func(p nodeargs.Params) { p[nodeargs.Enabled] = enabled }
}
