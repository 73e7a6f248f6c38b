package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"cursorchat/internal"
	"cursorchat/internal/browser"
)

var browseIncludeEmpty bool

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse chats interactively",
	Long:  `Open an interactive terminal browser over all chats. Read-only.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := storageRoot()
		if err != nil {
			return err
		}

		chats, err := internal.LoadAllChats(root, browseIncludeEmpty)
		if err != nil {
			return fmt.Errorf("failed to load chats: %w", err)
		}

		if len(chats) == 0 {
			fmt.Println("No chats found")
			return nil
		}

		return browser.Run(chats)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().BoolVar(&browseIncludeEmpty, "include-empty", false, "Include chats with no messages")
}
