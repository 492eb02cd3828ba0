package main

import (
	"fmt"

	"github.com/lerenn/project-sync/cmd/psync/internal/cli"
	"github.com/spf13/cobra"
)

func createScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Register the repositories found in the base folder",
		Long: `Look for git repositories directly under the base folder and register the
ones psync does not know yet. Removed projects are left alone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := cli.NewApp()
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.RequireGit(); err != nil {
				return err
			}

			added, err := app.Projects.Scan(cmd.Context())
			if err != nil {
				return err
			}
			if len(added) > 0 && !cli.Quiet {
				cli.PrintProjects(cmd.OutOrStdout(), added)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d projects added\n", len(added))
			return nil
		},
	}
}
