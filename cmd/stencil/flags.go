package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stencildev/stencil/internal/config"
	"github.com/stencildev/stencil/internal/render"
)

func validateManifestPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("manifest file is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve manifest path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("manifest file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("manifest path %s is a directory", abs)
	}

	return nil
}

func validateDestination(dest string) error {
	if strings.TrimSpace(dest) == "" {
		return fmt.Errorf("destination is required")
	}
	return nil
}

// buildContext merges manifest defaults with --var overrides. The reserved
// project_name variable falls back to the destination basename so simple
// manifests work without any flags.
func buildContext(m *config.Manifest, overrides []string, dest string) (render.Context, error) {
	ctx := make(render.Context, len(m.Vars)+len(overrides)+1)
	for name, value := range m.Vars {
		ctx[name] = value
	}

	for _, raw := range overrides {
		name, value, ok := strings.Cut(raw, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --var %q: expected key=value", raw)
		}
		if !render.ValidName(name) {
			return nil, fmt.Errorf("invalid variable name %q", name)
		}
		ctx[name] = value
	}

	if _, ok := ctx["project_name"]; !ok && dest != "" {
		abs, err := filepath.Abs(dest)
		if err != nil {
			return nil, fmt.Errorf("resolve destination: %w", err)
		}
		ctx["project_name"] = filepath.Base(abs)
	}

	return ctx, nil
}
