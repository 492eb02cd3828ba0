package main

import (
	"fmt"

	"github.com/lerenn/project-sync/cmd/psync/internal/cli"
	"github.com/spf13/cobra"
)

func createListCmd() *cobra.Command {
	var all bool

	listCmd := &cobra.Command{
		Use:     "list [--all]",
		Aliases: []string{"ls"},
		Short:   "List registered projects",
		Long: `List registered projects with their cached status.

The status is the one computed by the last sync or status run; use
'psync status' to refresh it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := cli.NewApp()
			if err != nil {
				return err
			}
			defer app.Close()

			projects, err := app.Projects.List(all)
			if err != nil {
				return fmt.Errorf("failed to list projects: %w", err)
			}
			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No projects found. Add one with 'psync add' or run 'psync scan'.")
				return nil
			}

			cli.PrintProjects(cmd.OutOrStdout(), projects)
			return nil
		},
	}

	listCmd.Flags().BoolVarP(&all, "all", "a", false, "Include removed projects")

	return listCmd
}
