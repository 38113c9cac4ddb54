// Package nodeargs validates and normalizes the named parameters used to
// construct configuration-tree nodes.
//
// A caller assembles a loosely-typed Params bag and hands it to one of the
// contract normalizers (NormalizeParserNode, NormalizeCommentNode,
// NormalizeDirectiveNode). The normalizer applies the contract's defaults,
// checks that exactly the contract's parameters are present, and returns them
// in a typed, fixed shape.
//
// Supplying "metadata" switches a call into metadata-only mode, in which the
// descriptive fields (filepath, name, comment) become optional and default to
// nil. "ancestor" is never optional.
//
// The caller's Params is never modified.
package nodeargs
