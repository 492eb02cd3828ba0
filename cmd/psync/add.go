package main

import (
	"fmt"

	"github.com/lerenn/project-sync/cmd/psync/internal/cli"
	"github.com/lerenn/project-sync/pkg/project"
	"github.com/spf13/cobra"
)

func createAddCmd() *cobra.Command {
	var params project.AddParams

	addCmd := &cobra.Command{
		Use:   "add <repository-url|owner/repo> [--name <name>] [--path <path>] [--branch <branch>]",
		Short: "Clone a repository and register it",
		Long: `Clone a repository into the base folder and register it as a project.

GitHub shorthands (owner/repo) are resolved through the GitHub API, which also
provides the default branch. Set GITHUB_TOKEN for private repositories.

Examples:
  psync add https://github.com/octocat/Hello-World.git
  psync add git@github.com:lerenn/example.git --branch develop
  psync add octocat/Hello-World --name hello --path ~/src/hello`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.NewApp()
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.RequireGit(); err != nil {
				return err
			}

			params.RemoteURL = args[0]
			p, err := app.Projects.Add(cmd.Context(), params)
			if err != nil {
				return cli.PrintResult(cmd.OutOrStdout(), "add", project.SyncResult{Err: err})
			}
			if !cli.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "✓ %s added in %s (%s) [%s]\n", p.Name, p.LocalPath, p.Branch, p.Status)
			}
			return nil
		},
	}

	// Add flags
	addCmd.Flags().StringVarP(&params.Name, "name", "n", "", "Project name (defaults to the repository name)")
	addCmd.Flags().StringVarP(&params.LocalPath, "path", "p", "", "Clone destination (defaults to <base_folder>/<name>)")
	addCmd.Flags().StringVarP(&params.Branch, "branch", "b", "", "Branch to pin (defaults to the repository default branch)")

	return addCmd
}
