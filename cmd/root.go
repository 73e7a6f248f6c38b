package cmd

import (
	"fmt"
	"os"

	"cursorchat/internal"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	storagePath string
	version     string = "dev"
	commit      string = "unknown"
	date        string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cursorchat",
	Short: "Extract and export Cursor IDE chat history",
	Long: `A CLI tool to extract chat transcripts from Cursor's per-workspace storage.

Chats are read from the workspaceStorage SQLite databases and can be listed,
viewed, exported (json, md, html, txt, yaml) or browsed interactively.

Chats are addressed by a 1-based list index, a full or partial chat id, or a
request id; when nothing matches, a raw scan over all stored values is used
as a last resort.

Quick Start:
  cursorchat list                  # List all chats
  cursorchat show 1                # View the most recent chat
  cursorchat export --format md    # Export everything as Markdown
  cursorchat browse                # Interactive browser`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// storageRoot resolves the storage root from flag, config file or platform
// default, in that order.
func storageRoot() (string, error) {
	root, err := internal.ResolveStorageRoot(storagePath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve storage root: %w", err)
	}
	return root, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&storagePath, "storage", "", "Custom storage root (workspaceStorage directory)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
