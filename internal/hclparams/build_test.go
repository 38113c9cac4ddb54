package hclparams

import (
	"errors"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/parsernode/internal/nodeargs"
	"github.com/specialistvlad/parsernode/internal/parsernode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_AssignsAncestorsFromNesting(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	src := `
block {
  name       = "VirtualHost"
  parameters = ["*:443"]
  filepath   = "/etc/apache2/sites-enabled/ssl.conf"

  directive {
    name       = "SSLEngine"
    parameters = ["on"]
    filepath   = "/etc/apache2/sites-enabled/ssl.conf"
  }

  comment {
    metadata = {}
  }
}
`
	specs, diags := Decode("ssl.hcl", []byte(src))
	require.False(t, diags.HasErrors(), diags.Error())

	// --- Act ---
	nodes, diags := Build(specs)

	// --- Assert ---
	require.False(t, diags.HasErrors(), diags.Error())
	require.Len(t, nodes, 3)

	vhost, ok := nodes[0].(*parsernode.BlockNode)
	require.True(t, ok)
	assert.Nil(t, vhost.Ancestor())

	engine, ok := nodes[1].(*parsernode.DirectiveNode)
	require.True(t, ok)
	assert.Same(t, vhost, engine.Ancestor())
	assert.Equal(t, []string{"on"}, engine.Parameters())

	placeholder, ok := nodes[2].(*parsernode.CommentNode)
	require.True(t, ok)
	_, known := placeholder.Comment()
	assert.False(t, known)
}

func TestBuild_ReportsContractErrors(t *testing.T) {
	t.Parallel()

	src := `
directive {
  name = "Listen"
}

comment {
  filepath = "/etc/f"
  comment  = "hi"
  extra    = 1
}

block {
  name     = "IfModule"
  filepath = "/etc/f"
  enabled  = "yes"

  directive {
    name     = "Skipped"
    filepath = "/etc/f"
  }
}
`
	specs, diags := Decode("bad.hcl", []byte(src))
	require.False(t, diags.HasErrors(), diags.Error())

	nodes, diags := Build(specs)

	assert.Empty(t, nodes)
	require.Len(t, diags, 3)
	assert.Equal(t, "Missing required argument", diags[0].Summary)
	assert.Contains(t, diags[0].Detail, nodeargs.Filepath)
	assert.Equal(t, "Unsupported argument", diags[1].Summary)
	assert.Contains(t, diags[1].Detail, "extra")
	assert.Equal(t, "Incorrect argument type", diags[2].Summary)
	assert.Equal(t, 12, diags[2].Subject.Start.Line)
}

func TestDiagnostic_FallbackSummary(t *testing.T) {
	t.Parallel()

	rng := hcl.Range{Filename: "x.hcl"}
	d := Diagnostic(errors.New("boom"), &rng)

	assert.Equal(t, hcl.DiagError, d.Severity)
	assert.Equal(t, "Invalid node parameters", d.Summary)
	assert.Equal(t, "boom.", d.Detail)
	assert.Equal(t, "x.hcl", d.Subject.Filename)
}
