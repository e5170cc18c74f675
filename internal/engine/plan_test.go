package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stencildev/stencil/internal/config"
	"github.com/stencildev/stencil/internal/model"
	"github.com/stencildev/stencil/internal/render"
	stencilerrors "github.com/stencildev/stencil/pkg/errors"
)

func TestPlan(t *testing.T) {
	t.Parallel()

	vars := render.Context{"project_name": "noe-crm"}

	t.Run("reports every entry without writing", func(t *testing.T) {
		t.Parallel()

		root := filepath.Join(t.TempDir(), "proj")
		m := sampleManifest()

		eng := New(nil)
		plan, err := eng.Plan(context.Background(), root, m, vars)
		require.NoError(t, err)
		require.Len(t, plan.Entries, len(m.Entries))
		require.False(t, plan.RootExists)

		_, statErr := os.Stat(root)
		require.True(t, os.IsNotExist(statErr), "plan must not create the root")
	})

	t.Run("computes rendered sizes for file entries", func(t *testing.T) {
		t.Parallel()

		root := filepath.Join(t.TempDir(), "proj")
		m := &config.Manifest{Entries: []config.Entry{fileEntry("info.txt", "Project: {{project_name}}")}}

		eng := New(nil)
		plan, err := eng.Plan(context.Background(), root, m, vars)
		require.NoError(t, err)
		require.Equal(t, model.KindFile, plan.Entries[0].Kind)
		require.Equal(t, len("Project: noe-crm"), plan.Entries[0].Size)
		require.Equal(t, model.StatusWouldCreate, plan.Entries[0].Status)
	})

	t.Run("marks occupied paths under an existing root", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "taken.txt"), []byte("old"), 0o644))

		m := &config.Manifest{Entries: []config.Entry{
			fileEntry("taken.txt", "new"),
			fileEntry("free.txt", "new"),
		}}

		eng := New(nil)
		plan, err := eng.Plan(context.Background(), root, m, render.Context{})
		require.NoError(t, err)
		require.True(t, plan.RootExists)
		require.Equal(t, model.StatusWouldReplace, plan.Entries[0].Status)
		require.Equal(t, model.StatusWouldCreate, plan.Entries[1].Status)
	})

	t.Run("surfaces undefined variables without writes", func(t *testing.T) {
		t.Parallel()

		root := filepath.Join(t.TempDir(), "proj")
		m := &config.Manifest{Entries: []config.Entry{fileEntry("bad.txt", "{{missing}}")}}

		eng := New(nil)
		_, err := eng.Plan(context.Background(), root, m, render.Context{})

		var undefined *stencilerrors.UndefinedVariableError
		require.ErrorAs(t, err, &undefined)
		require.Equal(t, "missing", undefined.Variable)

		_, statErr := os.Stat(root)
		require.True(t, os.IsNotExist(statErr))
	})

	t.Run("rejects invalid manifests", func(t *testing.T) {
		t.Parallel()

		m := &config.Manifest{Entries: []config.Entry{fileEntry("../out.txt", "x")}}

		eng := New(nil)
		_, err := eng.Plan(context.Background(), filepath.Join(t.TempDir(), "proj"), m, render.Context{})

		var invalid *stencilerrors.InvalidPathError
		require.ErrorAs(t, err, &invalid)
	})
}
