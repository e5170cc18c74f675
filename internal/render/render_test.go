package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	stencilerrors "github.com/stencildev/stencil/pkg/errors"
)

func TestRender(t *testing.T) {
	t.Parallel()

	ctx := Context{"name": "noe-crm", "port": "8080"}

	cases := []struct {
		name   string
		body   string
		assert func(t *testing.T, out string, err error)
	}{
		{
			name: "substitutes a single placeholder",
			body: "Project: {{name}}",
			assert: func(t *testing.T, out string, err error) {
				require.NoError(t, err)
				require.Equal(t, "Project: noe-crm", out)
			},
		},
		{
			name: "substitutes repeated and mixed placeholders",
			body: "{{name}} listens on {{port}}; again: {{name}}",
			assert: func(t *testing.T, out string, err error) {
				require.NoError(t, err)
				require.Equal(t, "noe-crm listens on 8080; again: noe-crm", out)
			},
		},
		{
			name: "accepts interior padding",
			body: "{{ name }} and {{  port  }}",
			assert: func(t *testing.T, out string, err error) {
				require.NoError(t, err)
				require.Equal(t, "noe-crm and 8080", out)
			},
		},
		{
			name: "leaves non-placeholder braces untouched",
			body: "css { color: red; } and {{not-a-var}} and {{{name}}}",
			assert: func(t *testing.T, out string, err error) {
				require.NoError(t, err)
				require.Equal(t, "css { color: red; } and {{not-a-var}} and {noe-crm}", out)
			},
		},
		{
			name: "empty body renders empty",
			body: "",
			assert: func(t *testing.T, out string, err error) {
				require.NoError(t, err)
				require.Empty(t, out)
			},
		},
		{
			name: "missing variable fails with its name",
			body: "hello {{undeclared}}",
			assert: func(t *testing.T, out string, err error) {
				var undefined *stencilerrors.UndefinedVariableError
				require.ErrorAs(t, err, &undefined)
				require.Equal(t, "undeclared", undefined.Variable)
				require.Equal(t, "greeting.txt", undefined.Path)
				require.Empty(t, out)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out, err := Render(tc.body, "greeting.txt", ctx)
			tc.assert(t, out, err)
		})
	}
}

func TestVariables(t *testing.T) {
	t.Parallel()

	names := Variables("{{b}} {{a}} {{b}} {{ c }}")
	require.Equal(t, []string{"b", "a", "c"}, names)

	require.Nil(t, Variables("no placeholders here"))
}

func TestValidName(t *testing.T) {
	t.Parallel()

	for _, ok := range []string{"name", "project_name", "a1", "x"} {
		require.True(t, ValidName(ok), ok)
	}
	for _, bad := range []string{"", "Name", "1a", "a-b", "a b", "_a"} {
		require.False(t, ValidName(bad), bad)
	}
}
