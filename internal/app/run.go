package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/parsernode/internal/ctxlog"
	"github.com/specialistvlad/parsernode/internal/fsutil"
	"github.com/specialistvlad/parsernode/internal/hclparams"
	"github.com/specialistvlad/parsernode/internal/parsernode"
)

// Report is the outcome of checking every document under the configured path.
type Report struct {
	Files       []string
	Nodes       []parsernode.Node
	Diagnostics hcl.Diagnostics
}

// Rejected reports how many error diagnostics were produced.
func (r *Report) Rejected() int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Severity == hcl.DiagError {
			n++
		}
	}
	return n
}

// Check loads every .hcl document under the configured path and builds a
// node from each parameter block. Problems with individual blocks are
// collected in the report; only a failure to find the documents is returned
// as an error.
func (a *App) Check(ctx context.Context) (*Report, error) {
	ctx = a.withLogger(ctx)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading parameter documents.", "path", a.config.Path)

	files, err := fsutil.FindFiles(a.config.Path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to find parameter documents in %s: %w", a.config.Path, err)
	}

	report := &Report{Files: files}
	if len(files) == 0 {
		logger.Warn("No .hcl documents found in path.", "path", a.config.Path)
		return report, nil
	}

	for _, file := range files {
		specs, diags := hclparams.LoadFile(a.parser, file)
		report.Diagnostics = append(report.Diagnostics, diags...)
		if diags.HasErrors() {
			logger.Debug("Document could not be decoded.", "file", file, "errors", len(diags.Errs()))
			continue
		}

		nodes, buildDiags := hclparams.Build(specs)
		report.Diagnostics = append(report.Diagnostics, buildDiags...)
		for _, n := range nodes {
			logNode(ctx, file, n)
		}
		report.Nodes = append(report.Nodes, nodes...)
	}

	return report, nil
}

// Run performs a check, writes diagnostics and a summary to the output, and
// returns an error when any parameter block was rejected.
func (a *App) Run(ctx context.Context) error {
	a.logger.Debug("App.Run method started.")

	report, err := a.Check(ctx)
	if err != nil {
		return err
	}

	if len(report.Diagnostics) > 0 {
		wr := hcl.NewDiagnosticTextWriter(a.outW, a.parser.Files(), 78, false)
		if err := wr.WriteDiagnostics(report.Diagnostics); err != nil {
			return fmt.Errorf("failed to write diagnostics: %w", err)
		}
	}

	rejected := report.Rejected()
	fmt.Fprintf(a.outW, "%d document(s), %d node(s) built, %d rejected\n", len(report.Files), len(report.Nodes), rejected)
	a.logger.Debug("App.Run method finished.")

	if rejected > 0 {
		return errors.New("one or more node parameter sets were rejected")
	}
	return nil
}

func logNode(ctx context.Context, file string, n parsernode.Node) {
	logger := ctxlog.FromContext(ctx)
	attrs := []any{"file", file, "kind", n.Kind().String(), "dirty", n.Dirty()}
	if path, ok := n.Filepath(); ok {
		attrs = append(attrs, "filepath", path)
	}
	switch v := n.(type) {
	case *parsernode.CommentNode:
		if text, ok := v.Comment(); ok {
			attrs = append(attrs, "comment", text)
		}
	case *parsernode.BlockNode:
		attrs = appendDirective(attrs, &v.DirectiveNode)
	case *parsernode.DirectiveNode:
		attrs = appendDirective(attrs, v)
	}
	logger.Debug("Node built.", attrs...)
}

func appendDirective(attrs []any, d *parsernode.DirectiveNode) []any {
	if name, ok := d.Name(); ok {
		attrs = append(attrs, "name", name)
	}
	return append(attrs, "parameters", d.Parameters(), "enabled", d.Enabled())
}
