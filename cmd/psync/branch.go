package main

import (
	"github.com/lerenn/project-sync/cmd/psync/internal/cli"
	"github.com/spf13/cobra"
)

func createBranchCmd() *cobra.Command {
	var create bool

	branchCmd := &cobra.Command{
		Use:   "branch <name|path> <branch> [--create]",
		Short: "Switch a project to another branch and pin it",
		Long: `Check out branch in the project and pin it, so that following syncs pull it.
With --create the branch is created from the current HEAD first.

Local changes are carried over to the new branch.

Examples:
  psync branch my-project develop
  psync branch my-project feature/login --create`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.NewApp()
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.RequireGit(); err != nil {
				return err
			}

			if create {
				return cli.PrintResult(cmd.OutOrStdout(), "create "+args[1],
					app.Projects.CreateBranch(cmd.Context(), args[0], args[1]))
			}
			return cli.PrintResult(cmd.OutOrStdout(), "switch to "+args[1],
				app.Projects.SetBranch(cmd.Context(), args[0], args[1]))
		},
	}

	branchCmd.Flags().BoolVar(&create, "create", false, "Create the branch from the current HEAD")

	return branchCmd
}
