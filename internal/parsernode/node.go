// Package parsernode defines the configuration-tree node kinds and their
// constructors. Every constructor routes its parameters through the matching
// nodeargs contract, so a node is only ever built from a complete, validated
// parameter set.
package parsernode

import (
	"fmt"
	"maps"
	"reflect"

	"github.com/specialistvlad/parsernode/internal/nodeargs"
)

// Kind distinguishes the node kinds of the configuration tree.
type Kind int

const (
	// KindNode is a generic node with no content of its own.
	KindNode Kind = iota
	// KindComment is a comment line.
	KindComment
	// KindDirective is a single directive with its parameters.
	KindDirective
	// KindBlock is a directive that opens a nested section.
	KindBlock
)

var kindNames = map[Kind]string{
	KindNode:      "node",
	KindComment:   "comment",
	KindDirective: "directive",
	KindBlock:     "block",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind returns the Kind named by s.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown node kind %q", s)
}

// Node is the behavior shared by every node in the tree.
type Node interface {
	Kind() Kind
	// Ancestor is the owning node, or nil for a root.
	Ancestor() Node
	Dirty() bool
	// Filepath reports the source file, if one is known.
	Filepath() (string, bool)
	Metadata() map[string]any
}

// ParserNode is the generic node and the base of every other kind.
type ParserNode struct {
	ancestor Node
	dirty    bool
	filepath *string
	metadata map[string]any
}

// NewParserNode builds a generic node.
func NewParserNode(opts ...Option) (*ParserNode, error) {
	return newParserNode(collect(opts))
}

func newParserNode(params nodeargs.Params) (*ParserNode, error) {
	args, err := nodeargs.NormalizeParserNode(params)
	if err != nil {
		return nil, err
	}

	var ancestor Node
	if args.Ancestor != nil {
		a, ok := args.Ancestor.(Node)
		if !ok || isNilPointer(a) {
			return nil, &nodeargs.InvalidParameterTypeError{Name: nodeargs.Ancestor, Want: "a non-nil Node or nil", Got: args.Ancestor}
		}
		ancestor = a
	}

	return &ParserNode{
		ancestor: ancestor,
		dirty:    args.Dirty,
		filepath: args.Filepath,
		metadata: maps.Clone(args.Metadata),
	}, nil
}

// isNilPointer reports whether n holds a nil pointer.
func isNilPointer(n Node) bool {
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func (n *ParserNode) Kind() Kind               { return KindNode }
func (n *ParserNode) Ancestor() Node           { return n.ancestor }
func (n *ParserNode) Dirty() bool              { return n.dirty }
func (n *ParserNode) Metadata() map[string]any { return n.metadata }

func (n *ParserNode) Filepath() (string, bool) {
	if n.filepath == nil {
		return "", false
	}
	return *n.filepath, true
}

// CommentNode holds a single comment.
type CommentNode struct {
	ParserNode
	comment *string
}

// NewCommentNode builds a comment node.
func NewCommentNode(opts ...Option) (*CommentNode, error) {
	return newCommentNode(collect(opts))
}

func newCommentNode(params nodeargs.Params) (*CommentNode, error) {
	args, err := nodeargs.NormalizeCommentNode(params)
	if err != nil {
		return nil, err
	}
	base, err := newParserNode(args.Node)
	if err != nil {
		return nil, err
	}
	return &CommentNode{ParserNode: *base, comment: args.Comment}, nil
}

func (n *CommentNode) Kind() Kind { return KindComment }

// Comment returns the comment text, if known.
func (n *CommentNode) Comment() (string, bool) {
	if n.comment == nil {
		return "", false
	}
	return *n.comment, true
}

// DirectiveNode holds a directive name and its parameters.
type DirectiveNode struct {
	ParserNode
	name       *string
	parameters []string
	enabled    bool
}

// NewDirectiveNode builds a directive node.
func NewDirectiveNode(opts ...Option) (*DirectiveNode, error) {
	return newDirectiveNode(collect(opts))
}

func newDirectiveNode(params nodeargs.Params) (*DirectiveNode, error) {
	args, err := nodeargs.NormalizeDirectiveNode(params)
	if err != nil {
		return nil, err
	}
	base, err := newParserNode(args.Node)
	if err != nil {
		return nil, err
	}
	return &DirectiveNode{
		ParserNode: *base,
		name:       args.Name,
		parameters: args.Parameters,
		enabled:    args.Enabled,
	}, nil
}

func (n *DirectiveNode) Kind() Kind { return KindDirective }

// Name returns the directive name, if known.
func (n *DirectiveNode) Name() (string, bool) {
	if n.name == nil {
		return "", false
	}
	return *n.name, true
}

// Parameters returns a copy of the directive parameters.
func (n *DirectiveNode) Parameters() []string {
	return append([]string(nil), n.parameters...)
}

// Enabled reports whether the directive is active.
func (n *DirectiveNode) Enabled() bool { return n.enabled }

// BlockNode is a directive that opens a nested section. It accepts the same
// parameters as DirectiveNode.
type BlockNode struct {
	DirectiveNode
}

// NewBlockNode builds a block node.
func NewBlockNode(opts ...Option) (*BlockNode, error) {
	return newBlockNode(collect(opts))
}

func newBlockNode(params nodeargs.Params) (*BlockNode, error) {
	d, err := newDirectiveNode(params)
	if err != nil {
		return nil, err
	}
	return &BlockNode{DirectiveNode: *d}, nil
}

func (n *BlockNode) Kind() Kind { return KindBlock }

// FromParams builds a node of the given kind from a raw parameter bag.
func FromParams(kind Kind, params nodeargs.Params) (Node, error) {
	var (
		n   Node
		err error
	)
	switch kind {
	case KindNode:
		n, err = newParserNode(params)
	case KindComment:
		n, err = newCommentNode(params)
	case KindDirective:
		n, err = newDirectiveNode(params)
	case KindBlock:
		n, err = newBlockNode(params)
	default:
		return nil, fmt.Errorf("unknown node kind %v", kind)
	}
	if err != nil {
		return nil, err
	}
	return n, nil
}
