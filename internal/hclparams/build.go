package hclparams

import (
	"errors"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/parsernode/internal/nodeargs"
	"github.com/specialistvlad/parsernode/internal/parsernode"
)

// Build constructs a node for every spec, depth first. Top-level specs get a
// nil ancestor; nested specs get the node built from their enclosing block.
// The children of a spec that fails to build are skipped, since they have no
// ancestor to attach to. Every rejected spec produces one error diagnostic.
func Build(specs []*Spec) ([]parsernode.Node, hcl.Diagnostics) {
	var nodes []parsernode.Node
	var diags hcl.Diagnostics
	for _, spec := range specs {
		built, specDiags := build(spec, nil)
		nodes = append(nodes, built...)
		diags = append(diags, specDiags...)
	}
	return nodes, diags
}

func build(spec *Spec, ancestor parsernode.Node) ([]parsernode.Node, hcl.Diagnostics) {
	params := spec.Params.Clone()
	params[nodeargs.Ancestor] = ancestor

	node, err := parsernode.FromParams(spec.Kind, params)
	if err != nil {
		rng := spec.Range
		return nil, hcl.Diagnostics{Diagnostic(err, &rng)}
	}

	nodes := []parsernode.Node{node}
	var diags hcl.Diagnostics
	for _, child := range spec.Children {
		built, childDiags := build(child, node)
		nodes = append(nodes, built...)
		diags = append(diags, childDiags...)
	}
	return nodes, diags
}

// Diagnostic describes a node construction error as an HCL diagnostic
// pointing at subject.
func Diagnostic(err error, subject *hcl.Range) *hcl.Diagnostic {
	summary := "Invalid node parameters"
	switch {
	case errors.Is(err, nodeargs.ErrMissingRequiredParameter):
		summary = "Missing required argument"
	case errors.Is(err, nodeargs.ErrUnrecognizedParameter):
		summary = "Unsupported argument"
	case errors.Is(err, nodeargs.ErrInvalidParameterType):
		summary = "Incorrect argument type"
	}
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   err.Error() + ".",
		Subject:  subject,
	}
}
