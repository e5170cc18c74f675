package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stencildev/stencil/internal/config"
	"github.com/stencildev/stencil/internal/engine"
)

type planOptions struct {
	ManifestPath string
	Destination  string
	Vars         []string
	Verbose      bool
	NoColor      bool
}

var planCmdRunner = runPlan

func newPlanCmd(root *rootFlags) *cobra.Command {
	opts := planOptions{}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Preview what a scaffold run would create, without writing",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose
			opts.NoColor = root.noColor

			if err := validateManifestPath(opts.ManifestPath); err != nil {
				return err
			}
			if err := validateDestination(opts.Destination); err != nil {
				return err
			}

			return planCmdRunner(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ManifestPath, "manifest", "m", "", "Path to manifest file")
	cmd.Flags().StringVarP(&opts.Destination, "dest", "d", "", "Destination root the plan is computed against")
	cmd.Flags().StringArrayVar(&opts.Vars, "var", nil, "Context variable as key=value (repeatable)")
	cmd.MarkFlagRequired("manifest") //nolint:errcheck
	cmd.MarkFlagRequired("dest")     //nolint:errcheck

	return cmd
}

func runPlan(ctx context.Context, opts planOptions) error {
	m, err := config.ParseManifest(opts.ManifestPath)
	if err != nil {
		return err
	}

	vars, err := buildContext(m, opts.Vars, opts.Destination)
	if err != nil {
		return err
	}

	log, err := newLogger(opts.Verbose, opts.NoColor)
	if err != nil {
		return err
	}

	eng := engine.New(log)
	plan, err := eng.Plan(ctx, opts.Destination, m, vars)
	if err != nil {
		return err
	}

	fmt.Fprint(os.Stdout, renderPlan(plan))
	return nil
}
