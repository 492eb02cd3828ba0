package main

import (
	"errors"
	"fmt"

	"github.com/lerenn/project-sync/cmd/psync/internal/cli"
	"github.com/lerenn/project-sync/pkg/git"
	"github.com/lerenn/project-sync/pkg/project"
	"github.com/spf13/cobra"
)

func createHistoryCmd() *cobra.Command {
	var params project.HistoryParams

	historyCmd := &cobra.Command{
		Use:   "history [name|path] [-n count] [-o file]",
		Short: "Show or export the commit history of a project",
		Long: `Print the commit history of the current branch, one "<hash> <date> <subject>"
line per commit, or write it to a file with --output.

Without argument, the project is picked interactively.

Examples:
  psync history my-project -n 20
  psync history my-project -o ~/reports/commit_history.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if params.Limit < 0 {
				return errors.New("--limit must not be negative")
			}
			app, err := cli.NewApp()
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.RequireGit(); err != nil {
				return err
			}

			ref, err := resolveRef(app, args)
			if err != nil {
				return err
			}
			commits, err := app.Projects.History(cmd.Context(), ref, params)
			if err != nil {
				return err
			}

			if params.Output != "" {
				if !cli.Quiet {
					fmt.Fprintf(cmd.OutOrStdout(), "History exported to %s (%d commits)\n", params.Output, len(commits))
				}
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), git.FormatHistory(commits))
			return nil
		},
	}

	historyCmd.Flags().IntVarP(&params.Limit, "limit", "n", 0, "Show only the last n commits")
	historyCmd.Flags().StringVarP(&params.Output, "output", "o", "", "Write the history to this file")

	return historyCmd
}
