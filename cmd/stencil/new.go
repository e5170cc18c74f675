package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/stencildev/stencil/internal/config"
	"github.com/stencildev/stencil/internal/engine"
	"github.com/stencildev/stencil/internal/logger"
	"github.com/stencildev/stencil/internal/repo"
)

type newOptions struct {
	ManifestPath string
	Destination  string
	Vars         []string
	Force        bool
	GitInit      bool
	Verbose      bool
	NoColor      bool
}

var newCmdRunner = runNew

func newNewCmd(root *rootFlags) *cobra.Command {
	opts := newOptions{}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Scaffold a project from a manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose
			opts.NoColor = root.noColor

			if err := validateManifestPath(opts.ManifestPath); err != nil {
				return err
			}
			if err := validateDestination(opts.Destination); err != nil {
				return err
			}

			return newCmdRunner(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ManifestPath, "manifest", "m", "", "Path to manifest file")
	cmd.Flags().StringVarP(&opts.Destination, "dest", "d", "", "Destination root to scaffold into")
	cmd.Flags().StringArrayVar(&opts.Vars, "var", nil, "Context variable as key=value (repeatable)")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Remove an existing destination before scaffolding (destructive)")
	cmd.Flags().BoolVar(&opts.GitInit, "git-init", false, "Initialize a git repository in the destination")
	cmd.MarkFlagRequired("manifest") //nolint:errcheck
	cmd.MarkFlagRequired("dest")     //nolint:errcheck

	return cmd
}

func runNew(ctx context.Context, opts newOptions) error {
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
	result, err := eng.Scaffold(ctx, opts.Destination, m, vars, engine.Options{Overwrite: opts.Force})
	if err != nil {
		if result != nil {
			fmt.Fprint(os.Stderr, renderPartial(result))
		}
		return err
	}

	if m.Settings.GitInit || opts.GitInit {
		if err := repo.Init(result.Root, m.Name, log); err != nil {
			log.Error(err, "git init failed; scaffolded files are intact")
		}
	}

	fmt.Fprint(os.Stdout, renderSummary(result))
	return nil
}

func newLogger(verbose, noColor bool) (*logger.Logger, error) {
	level := "info"
	if verbose {
		level = "debug"
	}

	return logger.New(logger.Options{
		Level:   level,
		Pretty:  term.IsTerminal(int(os.Stderr.Fd())),
		NoColor: noColor,
	})
}
