package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"cursorchat/internal"
)

var listIncludeEmpty bool

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available chats",
	Long:  `List all chats found in workspace storage, newest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := storageRoot()
		if err != nil {
			return err
		}

		chats, err := internal.LoadAllChats(root, listIncludeEmpty)
		if err != nil {
			return fmt.Errorf("failed to load chats: %w", err)
		}

		displayChats(chats)
		return nil
	},
}

func displayChats(chats []internal.Chat) {
	if len(chats) == 0 {
		fmt.Println(headerStyle.Render("No chats found"))
		return
	}

	header := headerStyle.Render(fmt.Sprintf("Found %d chat(s)", len(chats)))
	fmt.Println(header)
	fmt.Println()

	w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', 0)

	_, _ = fmt.Fprintln(w, titleStyle.Render("#")+"\t"+titleStyle.Render("ID")+"\t"+
		titleStyle.Render("Title")+"\t"+titleStyle.Render("Messages")+"\t"+titleStyle.Render("Last activity")+"\t")

	for i, chat := range chats {
		title := chat.DisplayTitle()
		if len(title) > 50 {
			title = title[:47] + "..."
		}

		msgCount := countStyle.Render(strconv.Itoa(len(chat.Messages)))

		last := formatLastActivity(chat.LastMessageTime())

		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t\n",
			i+1, idStyle.Render(chat.ID), title, msgCount, dateStyle.Render(last))
	}

	_ = w.Flush()
	fmt.Println()
	fmt.Println(idStyle.Render("Tip: `cursorchat show <#|id|request-id>` to view a chat"))
}

func formatLastActivity(t time.Time) string {
	if t.IsZero() {
		return "—"
	}

	diff := time.Since(t)
	switch {
	case diff < 24*time.Hour:
		return t.Format("Today 15:04")
	case diff < 7*24*time.Hour:
		return t.Format("Mon 15:04")
	case diff < 365*24*time.Hour:
		return t.Format("Jan 02 15:04")
	default:
		return t.Format("2006-01-02")
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listIncludeEmpty, "include-empty", false, "Include chats with no messages")
}
