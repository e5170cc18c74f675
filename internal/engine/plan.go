package engine

import (
	"context"
	"os"
	"path/filepath"

	"github.com/stencildev/stencil/internal/config"
	"github.com/stencildev/stencil/internal/model"
	"github.com/stencildev/stencil/internal/render"
	stencilerrors "github.com/stencildev/stencil/pkg/errors"
)

// Plan runs the full validation and render pipeline without touching the
// filesystem and reports what a scaffold run would create. Undefined
// variables surface here, before any write is possible.
func (e *Engine) Plan(ctx context.Context, root string, m *config.Manifest, vars render.Context) (*model.Plan, error) {
	if err := ValidateEntries(m); err != nil {
		return nil, err
	}

	plan := &model.Plan{Root: root}

	if _, err := os.Stat(root); err == nil {
		plan.RootExists = true
	} else if !os.IsNotExist(err) {
		return nil, stencilerrors.NewIOError("stat root", root, err)
	}

	for i := range m.Entries {
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		entry := &m.Entries[i]
		rel := normalize(entry.Path)

		planned := model.PlannedEntry{
			Path:   rel,
			Status: model.StatusWouldCreate,
		}
		if plan.RootExists {
			if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel))); err == nil {
				planned.Status = model.StatusWouldReplace
			}
		}

		switch entry.Type {
		case "directory":
			mode, err := entry.Directory.FileMode()
			if err != nil {
				return nil, stencilerrors.NewValidationError(entry.Path, "invalid mode", err)
			}
			planned.Kind = model.KindDirectory
			planned.Mode = mode

		case "file":
			data, mode, err := renderEntry(entry, rel, vars)
			if err != nil {
				return nil, err
			}
			planned.Kind = model.KindFile
			planned.Mode = mode
			planned.Size = len(data)
		}

		plan.Entries = append(plan.Entries, planned)
	}

	return plan, nil
}
