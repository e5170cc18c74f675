package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	stencilerrors "github.com/stencildev/stencil/pkg/errors"
)

func TestValidateCmd(t *testing.T) {
	t.Parallel()

	t.Run("valid manifest prints a summary", func(t *testing.T) {
		t.Parallel()

		out := &bytes.Buffer{}
		cmd := newRootCmd()
		cmd.SetOut(out)
		cmd.SetErr(out)
		cmd.SetArgs([]string{"validate", "-m", writeSampleManifest(t)})

		require.NoError(t, cmd.Execute())
		require.Contains(t, out.String(), "sample-crm")
		require.Contains(t, out.String(), "3 entries")
		require.Contains(t, out.String(), "variables: project_name, port")
	})

	t.Run("duplicate entries fail validation", func(t *testing.T) {
		t.Parallel()

		manifest := `version: "1.0"
name: dupes
entries:
  - path: same.txt
    type: file
    content: a
  - path: same.txt
    type: file
    content: b
`
		path := filepath.Join(t.TempDir(), "stencil.yaml")
		require.NoError(t, os.WriteFile(path, []byte(manifest), 0o644))

		cmd := newRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"validate", "-m", path})

		err := cmd.Execute()
		var dup *stencilerrors.DuplicatePathError
		require.ErrorAs(t, err, &dup)
	})

	t.Run("traversal entries fail validation", func(t *testing.T) {
		t.Parallel()

		manifest := `version: "1.0"
name: escape
entries:
  - path: ../escape.txt
    type: file
    content: x
`
		path := filepath.Join(t.TempDir(), "stencil.yaml")
		require.NoError(t, os.WriteFile(path, []byte(manifest), 0o644))

		cmd := newRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"validate", "-m", path})

		err := cmd.Execute()
		var invalid *stencilerrors.InvalidPathError
		require.ErrorAs(t, err, &invalid)
	})
}
