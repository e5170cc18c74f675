// Package engine materializes a validated manifest onto a filesystem root.
package engine

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/stencildev/stencil/internal/config"
	"github.com/stencildev/stencil/internal/encoding"
	"github.com/stencildev/stencil/internal/logger"
	"github.com/stencildev/stencil/internal/model"
	"github.com/stencildev/stencil/internal/render"
	stencilerrors "github.com/stencildev/stencil/pkg/errors"
)

// Options controls scaffold behavior for one run.
type Options struct {
	// Overwrite removes an existing root before scaffolding. This is
	// destructive and must be an explicit caller decision; the engine never
	// prompts.
	Overwrite bool
}

// Engine resolves manifests against an output root. It holds no state
// between runs; each Scaffold call is independent.
type Engine struct {
	log *logger.Logger
}

// New creates an Engine that logs through log.
func New(log *logger.Logger) *Engine {
	return &Engine{log: log}
}

// Scaffold materializes the manifest under root, substituting placeholders
// from vars. Entries are processed in manifest order and the first failure
// aborts the run. The returned result is non-nil once writing has begun, so
// a caller receiving an error alongside it knows exactly which paths were
// completed. No automatic rollback is performed.
func (e *Engine) Scaffold(ctx context.Context, root string, m *config.Manifest, vars render.Context, opts Options) (*model.ScaffoldResult, error) {
	start := time.Now()

	if err := ValidateEntries(m); err != nil {
		return nil, err
	}

	if err := e.prepareRoot(root, opts.Overwrite); err != nil {
		return nil, err
	}

	result := &model.ScaffoldResult{Root: root}

	for i := range m.Entries {
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				result.Duration = time.Since(start)
				return result, err
			}
		}

		entry := &m.Entries[i]
		rel := normalize(entry.Path)
		target := filepath.Join(root, filepath.FromSlash(rel))

		switch entry.Type {
		case "directory":
			mode, err := entry.Directory.FileMode()
			if err != nil {
				result.Duration = time.Since(start)
				return result, stencilerrors.NewValidationError(entry.Path, "invalid mode", err)
			}
			if err := os.MkdirAll(target, mode); err != nil {
				result.Duration = time.Since(start)
				return result, stencilerrors.NewIOError("create directory", rel, err)
			}
			e.log.With("path", rel).Debug("created directory")
			result.Created = append(result.Created, model.CreatedPath{Path: rel, Kind: model.KindDirectory})

		case "file":
			data, mode, err := renderEntry(entry, rel, vars)
			if err != nil {
				result.Duration = time.Since(start)
				return result, err
			}
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				result.Duration = time.Since(start)
				return result, stencilerrors.NewIOError("create parent directory", rel, err)
			}
			if err := os.WriteFile(target, data, mode); err != nil {
				result.Duration = time.Since(start)
				return result, stencilerrors.NewIOError("write file", rel, err)
			}
			e.log.With("path", rel).Debug("wrote file")
			result.Created = append(result.Created, model.CreatedPath{Path: rel, Kind: model.KindFile})
		}
	}

	result.Duration = time.Since(start)
	e.log.With("root", root).With("entries", len(result.Created)).Info("scaffold complete")
	return result, nil
}

// renderEntry produces the encoded bytes and mode for a file entry.
func renderEntry(entry *config.Entry, rel string, vars render.Context) ([]byte, os.FileMode, error) {
	rendered, err := render.Render(entry.File.Body(), rel, vars)
	if err != nil {
		return nil, 0, err
	}

	data, err := encoding.Encode(entry.File.Encoding, rendered)
	if err != nil {
		return nil, 0, stencilerrors.NewValidationError(rel, "invalid encoding", err)
	}

	mode, err := entry.File.FileMode()
	if err != nil {
		return nil, 0, stencilerrors.NewValidationError(rel, "invalid mode", err)
	}

	return data, mode, nil
}

// prepareRoot enforces the overwrite contract and creates a fresh root.
func (e *Engine) prepareRoot(root string, overwrite bool) error {
	if _, err := os.Stat(root); err == nil {
		if !overwrite {
			return stencilerrors.NewAlreadyExistsError(root)
		}
		e.log.With("root", root).Warn("removing existing root")
		if err := os.RemoveAll(root); err != nil {
			return stencilerrors.NewIOError("remove existing root", root, err)
		}
	} else if !os.IsNotExist(err) {
		return stencilerrors.NewIOError("stat root", root, err)
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return stencilerrors.NewIOError("create root", root, err)
	}
	return nil
}

// ValidateEntries checks every entry path for normalization, traversal and
// duplicate violations. It runs before any write; a failure here leaves the
// filesystem untouched.
func ValidateEntries(m *config.Manifest) error {
	if m == nil {
		return stencilerrors.NewValidationError("manifest", "manifest is nil", nil)
	}

	seen := make(map[string]struct{}, len(m.Entries))
	for i := range m.Entries {
		entry := &m.Entries[i]

		switch entry.Type {
		case "directory":
			if entry.Directory == nil {
				return stencilerrors.NewValidationError(entry.Path, "directory configuration is required", nil)
			}
		case "file":
			if entry.File == nil {
				return stencilerrors.NewValidationError(entry.Path, "file configuration is required", nil)
			}
		default:
			return stencilerrors.NewValidationError(entry.Path, fmt.Sprintf("unknown entry type %q", entry.Type), nil)
		}

		if err := validatePath(entry.Path); err != nil {
			return err
		}

		rel := normalize(entry.Path)
		if _, dup := seen[rel]; dup {
			return stencilerrors.NewDuplicatePathError(rel)
		}
		seen[rel] = struct{}{}
	}

	return nil
}

func validatePath(p string) error {
	if p == "" {
		return stencilerrors.NewInvalidPathError(p, "path is empty")
	}
	if filepath.IsAbs(p) || strings.HasPrefix(p, "/") || strings.HasPrefix(p, "\\") {
		return stencilerrors.NewInvalidPathError(p, "path must be relative")
	}

	slashed := filepath.ToSlash(p)
	if path.Clean(slashed) != slashed {
		return stencilerrors.NewInvalidPathError(p, "path is not in normalized form")
	}
	if slashed == "." {
		return stencilerrors.NewInvalidPathError(p, "path resolves to the root itself")
	}
	for _, segment := range strings.Split(slashed, "/") {
		if segment == ".." {
			return stencilerrors.NewInvalidPathError(p, "parent-directory traversal is not allowed")
		}
	}

	return nil
}

func normalize(p string) string {
	return path.Clean(filepath.ToSlash(p))
}
