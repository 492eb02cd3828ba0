// Package main provides the command-line interface for psync.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lerenn/project-sync/cmd/psync/internal/cli"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "psync",
		Short: "Project Sync - keep a fleet of git projects in sync",
		Long: `psync keeps a registry of local git projects and synchronizes them with their remotes.

It recovers from the usual git hiccups on its own: directories rejected for
dubious ownership are trusted, local edits are stashed around pulls and
checkouts, and every operation is retried at most once.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")

	rootCmd.AddCommand(
		createInitCmd(),
		createAddCmd(),
		createListCmd(),
		createRemoveCmd(),
		createRestoreCmd(),
		createSyncCmd(),
		createPushCmd(),
		createStatusCmd(),
		createScanCmd(),
		createBranchCmd(),
		createHistoryCmd(),
		createWatchCmd(),
		createConfigCmd(),
	)
	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, cli.ErrReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		stop()
		os.Exit(1)
	}
}
