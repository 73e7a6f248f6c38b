package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cursorchat/internal"
	"cursorchat/internal/export"
)

var (
	exportFormat       string
	exportOutDir       string
	exportIncludeEmpty bool
)

var exportCmd = &cobra.Command{
	Use:   "export [identifier]",
	Short: "Export chats to files",
	Long: `Export chat transcripts in various formats (json, md, html, txt, yaml).

With no identifier every chat is exported, one file per chat. With an
identifier only the matching chat is exported, using the same resolution
rules as 'cursorchat show'.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := storageRoot()
		if err != nil {
			return err
		}

		exporter, err := export.NewExporter(exportFormat)
		if err != nil {
			return err
		}

		var chats []internal.Chat
		if len(args) == 1 {
			chat, err := internal.FindByIdentifier(root, args[0])
			if err != nil {
				return fmt.Errorf("failed to resolve chat %q: %w", args[0], err)
			}
			chats = []internal.Chat{*chat}
		} else {
			chats, err = internal.LoadAllChats(root, exportIncludeEmpty)
			if err != nil {
				return fmt.Errorf("failed to load chats: %w", err)
			}
		}

		if len(chats) == 0 {
			fmt.Println("No chats to export")
			return nil
		}

		if err := os.MkdirAll(exportOutDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		exported := 0
		for i := range chats {
			chat := &chats[i]
			name := fmt.Sprintf("chat_%s.%s", chat.ID, exporter.Extension())
			path := filepath.Join(exportOutDir, name)

			if err := writeExport(exporter, chat, path); err != nil {
				internal.LogError("Failed to export chat %s: %v", chat.ID, err)
				continue
			}
			exported++
		}

		fmt.Printf("Export complete: %d chat(s) written to %s\n", exported, exportOutDir)
		return nil
	},
}

func writeExport(exporter export.Exporter, chat *internal.Chat, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := exporter.Export(chat, file); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "md", "Export format (json, md, html, txt, yaml)")
	exportCmd.Flags().StringVarP(&exportOutDir, "out", "o", "./exports", "Output directory")
	exportCmd.Flags().BoolVar(&exportIncludeEmpty, "include-empty", false, "Also export chats with no messages")
}
