package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stencildev/stencil/internal/config"
	"github.com/stencildev/stencil/internal/engine"
	"github.com/stencildev/stencil/internal/render"
)

var validateCmdRunner = runValidate

func newValidateCmd(root *rootFlags) *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Parse and validate a manifest without scaffolding",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateManifestPath(manifestPath); err != nil {
				return err
			}
			return validateCmdRunner(cmd, manifestPath)
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "Path to manifest file")
	cmd.MarkFlagRequired("manifest") //nolint:errcheck

	return cmd
}

func runValidate(cmd *cobra.Command, manifestPath string) error {
	m, err := config.ParseManifest(manifestPath)
	if err != nil {
		return err
	}

	// Schema validation happens during parsing; entry path and duplicate
	// checks are the engine's validation phase.
	if err := engine.ValidateEntries(m); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d entries, ok\n", m.Name, len(m.Entries))
	if vars := referencedVariables(m); len(vars) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "variables: %s\n", strings.Join(vars, ", "))
	}
	return nil
}

// referencedVariables lists every placeholder the manifest's templates use,
// in order of first appearance.
func referencedVariables(m *config.Manifest) []string {
	seen := make(map[string]struct{})
	var names []string
	for i := range m.Entries {
		if m.Entries[i].File == nil {
			continue
		}
		for _, name := range render.Variables(m.Entries[i].File.Body()) {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}
