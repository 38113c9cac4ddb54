package parsernode

import (
	"errors"
	"testing"

	"github.com/specialistvlad/parsernode/internal/nodeargs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDirectiveNode_AppliesDefaults(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root, err := NewParserNode(WithAncestor(nil), WithFilepath("/etc/apache2/apache2.conf"))
	require.NoError(t, err)

	// --- Act ---
	d, err := NewDirectiveNode(
		WithAncestor(root),
		WithName("Listen"),
		WithParameters("80"),
		WithFilepath("/etc/apache2/ports.conf"),
	)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, KindDirective, d.Kind())
	assert.Same(t, root, d.Ancestor())
	name, ok := d.Name()
	assert.True(t, ok)
	assert.Equal(t, "Listen", name)
	assert.Equal(t, []string{"80"}, d.Parameters())
	assert.True(t, d.Enabled())
	assert.False(t, d.Dirty())
	path, ok := d.Filepath()
	assert.True(t, ok)
	assert.Equal(t, "/etc/apache2/ports.conf", path)
	assert.Empty(t, d.Metadata())
}

func TestNewBlockNode_MetadataOnlyPlaceholder(t *testing.T) {
	t.Parallel()

	b, err := NewBlockNode(WithAncestor(nil), WithMetadata(map[string]any{"augeaspath": "/files/etc/apache2"}))

	require.NoError(t, err)
	assert.Equal(t, KindBlock, b.Kind())
	_, ok := b.Name()
	assert.False(t, ok)
	_, ok = b.Filepath()
	assert.False(t, ok)
	assert.Equal(t, "/files/etc/apache2", b.Metadata()["augeaspath"])
}

func TestNewCommentNode(t *testing.T) {
	t.Parallel()

	c, err := NewCommentNode(WithAncestor(nil), WithFilepath("/etc/f"), WithComment("managed by certbot"), WithDirty(true))

	require.NoError(t, err)
	assert.Equal(t, KindComment, c.Kind())
	text, ok := c.Comment()
	assert.True(t, ok)
	assert.Equal(t, "managed by certbot", text)
	assert.True(t, c.Dirty())
}

func TestConstructors_PropagateContractErrors(t *testing.T) {
	t.Parallel()

	_, err := NewParserNode(WithFilepath("/f"))
	require.ErrorIs(t, err, nodeargs.ErrMissingRequiredParameter)

	_, err = NewParserNode(WithAncestor(nil), WithFilepath("/f"), WithName("Listen"))
	require.ErrorIs(t, err, nodeargs.ErrUnrecognizedParameter)

	_, err = NewCommentNode(WithAncestor(nil), WithFilepath("/f"), WithComment("c"), WithEnabled(false))
	require.ErrorIs(t, err, nodeargs.ErrUnrecognizedParameter)
}

func TestFromParams_RejectsForeignAncestor(t *testing.T) {
	t.Parallel()

	_, err := FromParams(KindNode, nodeargs.Params{nodeargs.Ancestor: "not a node", nodeargs.Filepath: "/f"})

	var invalid *nodeargs.InvalidParameterTypeError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, nodeargs.Ancestor, invalid.Name)
}

func TestNewParserNode_RejectsNilPointerAncestor(t *testing.T) {
	t.Parallel()

	var missing *ParserNode
	_, err := NewDirectiveNode(WithAncestor(missing), WithName("Listen"), WithFilepath("/f"))

	var invalid *nodeargs.InvalidParameterTypeError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, nodeargs.Ancestor, invalid.Name)
}

func TestFromParams_Kinds(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		kind   Kind
		params nodeargs.Params
	}{
		{KindNode, nodeargs.Params{nodeargs.Ancestor: nil, nodeargs.Filepath: "/f"}},
		{KindComment, nodeargs.Params{nodeargs.Ancestor: nil, nodeargs.Filepath: "/f", nodeargs.Comment: "c"}},
		{KindDirective, nodeargs.Params{nodeargs.Ancestor: nil, nodeargs.Filepath: "/f", nodeargs.Name: "Include"}},
		{KindBlock, nodeargs.Params{nodeargs.Ancestor: nil, nodeargs.Filepath: "/f", nodeargs.Name: "VirtualHost", nodeargs.Parameters: []string{"*:80"}}},
	}

	for _, tc := range testCases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			t.Parallel()

			n, err := FromParams(tc.kind, tc.params)

			require.NoError(t, err)
			assert.Equal(t, tc.kind, n.Kind())
		})
	}

	_, err := FromParams(Kind(99), nodeargs.Params{})
	require.Error(t, err)
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, k := range []Kind{KindNode, KindComment, KindDirective, KindBlock} {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseKind("section")
	require.Error(t, err)
	assert.Equal(t, "Kind(7)", Kind(7).String())
}
