// This file defines the three node construction contracts layered on top of
// Validate.
//
// Why metadata-only mode?
//
// A node can be built from metadata alone, as a placeholder whose descriptive
// fields are not known yet. Supplying "metadata" therefore relaxes filepath,
// name and comment to optional for that call. It never relaxes ancestor.
package nodeargs

// Required-name lists per contract. Their order is the output order.
var (
	parserNodeNames    = []string{Ancestor, Dirty, Filepath, Metadata}
	commentNodeNames   = []string{Ancestor, Dirty, Filepath, Comment, Metadata}
	directiveNodeNames = []string{Ancestor, Dirty, Filepath, Name, Parameters, Enabled, Metadata}
)

// ParserNodeArgs are the validated parameters of the generic node contract.
type ParserNodeArgs struct {
	Ancestor any
	Dirty    bool
	// Filepath is nil when the node has no known source file.
	Filepath *string
	Metadata map[string]any
}

// CommentNodeArgs are the validated parameters of the comment node contract.
// Node holds the residual generic node parameters, ready for
// NormalizeParserNode.
type CommentNodeArgs struct {
	Comment *string
	Node    Params
}

// DirectiveNodeArgs are the validated parameters of the directive and block
// node contract. Node holds the residual generic node parameters, ready for
// NormalizeParserNode.
type DirectiveNodeArgs struct {
	Name       *string
	Parameters []string
	Enabled    bool
	Node       Params
}

// NormalizeParserNode validates params against the generic node contract:
// ancestor is required, dirty defaults to false, metadata defaults to an
// empty map, and filepath is required unless metadata was supplied.
func NormalizeParserNode(params Params) (ParserNodeArgs, error) {
	p := params.Clone()
	if p.Has(Metadata) {
		p.setDefault(Filepath, nil)
	}
	p.setDefault(Dirty, false)
	p.setDefault(Metadata, map[string]any{})

	v, err := Validate(p, parserNodeNames)
	if err != nil {
		return ParserNodeArgs{}, err
	}

	args := ParserNodeArgs{Ancestor: v[Ancestor]}
	if args.Dirty, err = asBool(Dirty, v[Dirty]); err != nil {
		return ParserNodeArgs{}, err
	}
	if args.Filepath, err = asOptionalString(Filepath, v[Filepath]); err != nil {
		return ParserNodeArgs{}, err
	}
	if args.Metadata, err = asMetadata(Metadata, v[Metadata]); err != nil {
		return ParserNodeArgs{}, err
	}
	return args, nil
}

// NormalizeCommentNode validates params against the comment node contract,
// which is the generic contract plus comment. comment is required unless
// metadata was supplied.
func NormalizeCommentNode(params Params) (CommentNodeArgs, error) {
	p := params.Clone()
	if p.Has(Metadata) {
		p.setDefault(Comment, nil)
		p.setDefault(Filepath, nil)
	}
	p.setDefault(Dirty, false)
	p.setDefault(Metadata, map[string]any{})

	v, err := Validate(p, commentNodeNames)
	if err != nil {
		return CommentNodeArgs{}, err
	}

	comment, err := asOptionalString(Comment, v[Comment])
	if err != nil {
		return CommentNodeArgs{}, err
	}
	delete(v, Comment)
	return CommentNodeArgs{Comment: comment, Node: v}, nil
}

// NormalizeDirectiveNode validates params against the directive and block
// node contract, which is the generic contract plus name, parameters and
// enabled. enabled defaults to true and parameters to an empty sequence;
// name is required unless metadata was supplied.
func NormalizeDirectiveNode(params Params) (DirectiveNodeArgs, error) {
	p := params.Clone()
	if p.Has(Metadata) {
		p.setDefault(Name, nil)
		p.setDefault(Filepath, nil)
	}
	p.setDefault(Dirty, false)
	p.setDefault(Enabled, true)
	p.setDefault(Parameters, []string{})
	p.setDefault(Metadata, map[string]any{})

	v, err := Validate(p, directiveNodeNames)
	if err != nil {
		return DirectiveNodeArgs{}, err
	}

	var args DirectiveNodeArgs
	if args.Name, err = asOptionalString(Name, v[Name]); err != nil {
		return DirectiveNodeArgs{}, err
	}
	if args.Parameters, err = asStrings(Parameters, v[Parameters]); err != nil {
		return DirectiveNodeArgs{}, err
	}
	if args.Enabled, err = asBool(Enabled, v[Enabled]); err != nil {
		return DirectiveNodeArgs{}, err
	}
	delete(v, Name)
	delete(v, Parameters)
	delete(v, Enabled)
	args.Node = v
	return args, nil
}
