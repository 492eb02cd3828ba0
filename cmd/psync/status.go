package main

import (
	"github.com/lerenn/project-sync/cmd/psync/internal/cli"
	"github.com/lerenn/project-sync/pkg/registry"
	"github.com/spf13/cobra"
)

func createStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [name|path]",
		Short: "Refresh and show the status of projects",
		Long: `Recompute the status of one project, or of every active project.

When fetch_before_status is enabled, origin is fetched first so that
needs-pull and diverged reflect the remote.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.NewApp()
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.RequireGit(); err != nil {
				return err
			}

			var projects []registry.Project
			if len(args) == 1 {
				p, err := app.Projects.RefreshStatus(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				projects = []registry.Project{*p}
			} else if projects, err = app.Projects.RefreshAll(cmd.Context()); err != nil {
				return err
			}

			if len(projects) == 0 {
				return errNoProjects
			}
			cli.PrintProjects(cmd.OutOrStdout(), projects)
			return nil
		},
	}
}
