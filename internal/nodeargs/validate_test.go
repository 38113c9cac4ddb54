package nodeargs

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_CompleteParams(t *testing.T) {
	t.Parallel()

	params := Params{"a": 1, "b": "two", "c": nil}
	got, err := Validate(params, []string{"a", "b", "c"})

	require.NoError(t, err)
	if diff := cmp.Diff(Params{"a": 1, "b": "two", "c": nil}, got); diff != "" {
		t.Errorf("validated params mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_EmptyRequiredAndEmptyParams(t *testing.T) {
	t.Parallel()

	got, err := Validate(Params{}, nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = Validate(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestValidate_ReportsFirstMissingName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		params   Params
		required []string
		want     string
	}{
		{name: "only first missing", params: Params{"b": 1, "c": 1}, required: []string{"a", "b", "c"}, want: "a"},
		{name: "middle missing", params: Params{"a": 1, "c": 1}, required: []string{"a", "b", "c"}, want: "b"},
		{name: "several missing", params: Params{"a": 1}, required: []string{"a", "b", "c"}, want: "b"},
		{name: "missing wins over extra", params: Params{"x": 1}, required: []string{"a"}, want: "a"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Validate(tc.params, tc.required)

			require.ErrorIs(t, err, ErrMissingRequiredParameter)
			var missing *MissingRequiredParameterError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, tc.want, missing.Name)
		})
	}
}

func TestValidate_ReportsEveryExtraName(t *testing.T) {
	t.Parallel()

	params := Params{"a": 1, "x": 2, "y": 3}
	_, err := Validate(params, []string{"a"})

	require.ErrorIs(t, err, ErrUnrecognizedParameter)
	var unknown *UnrecognizedParameterError
	require.True(t, errors.As(err, &unknown))
	assert.ElementsMatch(t, []string{"x", "y"}, unknown.Names)
	assert.Contains(t, err.Error(), "x")
	assert.Contains(t, err.Error(), "y")
}

func TestValidate_LeavesInputUntouched(t *testing.T) {
	t.Parallel()

	params := Params{"a": 1, "b": 2}
	_, err := Validate(params, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, Params{"a": 1, "b": 2}, params)

	_, err = Validate(params, []string{"a"})
	require.Error(t, err)
	assert.Equal(t, Params{"a": 1, "b": 2}, params)
}

func TestParams_CloneAndHas(t *testing.T) {
	t.Parallel()

	var empty Params
	assert.NotNil(t, empty.Clone())

	p := Params{"a": nil}
	assert.True(t, p.Has("a"), "a nil value is still present")
	assert.False(t, p.Has("b"))

	c := p.Clone()
	c["b"] = 1
	assert.False(t, p.Has("b"), "clone must not alias the original")
}
