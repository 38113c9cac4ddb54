package hclparams

import (
	"fmt"
	"maps"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/parsernode/internal/nodeargs"
	"github.com/specialistvlad/parsernode/internal/parsernode"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Spec is one node block decoded from a document.
type Spec struct {
	Kind     parsernode.Kind
	Params   nodeargs.Params
	Children []*Spec
	// Range is the block header range, used as the subject of diagnostics.
	Range hcl.Range
}

var nodeBlocksSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: parsernode.KindNode.String()},
		{Type: parsernode.KindComment.String()},
		{Type: parsernode.KindDirective.String()},
		{Type: parsernode.KindBlock.String()},
	},
}

// Decode parses src as an HCL document and decodes its node blocks.
func Decode(filename string, src []byte) ([]*Spec, hcl.Diagnostics) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, diags
	}
	return decodeBody(file.Body)
}

// LoadFile parses the file at path with parser and decodes its node blocks.
func LoadFile(parser *hclparse.Parser, path string) ([]*Spec, hcl.Diagnostics) {
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, diags
	}
	return decodeBody(file.Body)
}

func decodeBody(body hcl.Body) ([]*Spec, hcl.Diagnostics) {
	content, diags := body.Content(nodeBlocksSchema)
	if diags.HasErrors() {
		return nil, diags
	}
	return decodeBlocks(content.Blocks)
}

func decodeBlocks(blocks hcl.Blocks) ([]*Spec, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	specs := make([]*Spec, 0, len(blocks))
	for _, block := range blocks {
		spec, blockDiags := decodeBlock(block)
		diags = append(diags, blockDiags...)
		if spec != nil {
			specs = append(specs, spec)
		}
	}
	if diags.HasErrors() {
		return nil, diags
	}
	return specs, diags
}

func decodeBlock(block *hcl.Block) (*Spec, hcl.Diagnostics) {
	kind, err := parsernode.ParseKind(block.Type)
	if err != nil {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Unsupported block type",
			Detail:   err.Error(),
			Subject:  &block.DefRange,
		}}
	}

	// Unknown attribute names must reach the node contract unfiltered, so the
	// native body is read directly instead of through a schema.
	body, ok := block.Body.(*hclsyntax.Body)
	if !ok {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Unsupported body",
			Detail:   "Node blocks must be written in native HCL syntax.",
			Subject:  &block.DefRange,
		}}
	}

	var diags hcl.Diagnostics
	var nested hcl.Blocks
	for _, child := range body.Blocks {
		if kind != parsernode.KindBlock {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  fmt.Sprintf("Unexpected %q block", child.Type),
				Detail:   fmt.Sprintf("Only %q blocks may contain other blocks.", parsernode.KindBlock),
				Subject:  &child.TypeRange,
			})
			continue
		}
		nested = append(nested, child.AsHCLBlock())
	}

	attrs := make(hcl.Attributes, len(body.Attributes))
	for name, attr := range body.Attributes {
		attrs[name] = attr.AsHCLAttribute()
	}
	params, attrDiags := decodeAttributes(attrs)
	diags = append(diags, attrDiags...)

	children, childDiags := decodeBlocks(nested)
	diags = append(diags, childDiags...)

	if diags.HasErrors() {
		return nil, diags
	}
	return &Spec{Kind: kind, Params: params, Children: children, Range: block.DefRange}, diags
}

func decodeAttributes(attrs hcl.Attributes) (nodeargs.Params, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	params := make(nodeargs.Params, len(attrs))
	for _, name := range slices.Sorted(maps.Keys(attrs)) {
		attr := attrs[name]
		if name == nodeargs.Ancestor {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unsupported argument",
				Detail:   "The ancestor of a node is given by the block that encloses it and cannot be set directly.",
				Subject:  &attr.NameRange,
			})
			continue
		}

		val, valDiags := attr.Expr.Value(nil)
		diags = append(diags, valDiags...)
		if valDiags.HasErrors() {
			continue
		}

		if name == nodeargs.Parameters && !val.IsNull() {
			converted, err := convert.Convert(val, cty.List(cty.String))
			if err != nil {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid parameters",
					Detail:   fmt.Sprintf("Directive parameters must be a list of strings: %s.", err),
					Subject:  attr.Expr.Range().Ptr(),
				})
				continue
			}
			val = converted
		}

		native, err := paramValue(name, val)
		if err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid value",
				Detail:   fmt.Sprintf("Invalid %s.", err),
				Subject:  attr.Expr.Range().Ptr(),
			})
			continue
		}
		params[name] = native
	}

	return params, diags
}
