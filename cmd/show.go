package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"cursorchat/internal"
)

var showLimit int

var (
	// Styles for show command
	chatHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(0, 1).
			MarginBottom(1)

	chatMetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			MarginBottom(1)

	userMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")).
				Bold(true).
				Padding(0, 1)

	assistantMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("135")).
				Bold(true).
				Padding(0, 1)

	messageContentStyle = lipgloss.NewStyle().
				Padding(0, 2).
				MarginBottom(1)

	timestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

var showCmd = &cobra.Command{
	Use:   "show <identifier>",
	Short: "Show messages for a specific chat",
	Long: `Display one chat, addressed by list index, chat id (full or partial) or
request id. When no parsed chat matches, the raw stored values are scanned
as a last resort.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		identifier := args[0]

		root, err := storageRoot()
		if err != nil {
			return err
		}

		chat, err := internal.FindByIdentifier(root, identifier)
		if err != nil {
			var oob *internal.IndexOutOfRangeError
			if errors.As(err, &oob) {
				return fmt.Errorf("chat %s: %w", identifier, err)
			}
			if errors.Is(err, internal.ErrNotFound) {
				return fmt.Errorf("no chat matched %q", identifier)
			}
			return fmt.Errorf("failed to resolve chat: %w", err)
		}

		displayChatHeader(chat)

		messages := chat.Messages
		total := len(messages)
		if showLimit > 0 && showLimit < total {
			messages = messages[:showLimit]
		}

		for i, msg := range messages {
			displayMessage(i+1, msg, total)
		}

		if showLimit > 0 && showLimit < total {
			fmt.Println()
			fmt.Println(timestampStyle.Render(fmt.Sprintf("... (%d more message(s))", total-showLimit)))
		}

		return nil
	},
}

func displayChatHeader(chat *internal.Chat) {
	fmt.Println(chatHeaderStyle.Render(chat.DisplayTitle()))

	metaParts := []string{fmt.Sprintf("ID: %s", chat.ID)}
	if chat.RequestID != "" {
		metaParts = append(metaParts, fmt.Sprintf("Request ID: %s", chat.RequestID))
	}
	metaParts = append(metaParts, fmt.Sprintf("Messages: %d", len(chat.Messages)))

	fmt.Println(chatMetaStyle.Render(strings.Join(metaParts, " • ")))
	fmt.Println()
}

func displayMessage(index int, msg internal.Message, total int) {
	var roleRender string
	switch msg.Role {
	case internal.RoleUser:
		roleRender = userMessageStyle.Render("User")
	case internal.RoleAssistant:
		roleRender = assistantMessageStyle.Render("Assistant")
	default:
		roleRender = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Render(msg.Role)
	}

	header := roleRender + " " + timestampStyle.Render(fmt.Sprintf("[%d/%d]", index, total))
	if !msg.Timestamp.IsZero() {
		header += " " + timestampStyle.Render(msg.Timestamp.Format("15:04:05"))
	}
	fmt.Println(header)

	content := strings.TrimSpace(msg.Content)
	if content != "" {
		fmt.Println(messageContentStyle.Render(content))
	} else {
		fmt.Println(messageContentStyle.Foreground(lipgloss.Color("240")).Render("(empty message)"))
	}

	fmt.Println()
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().IntVarP(&showLimit, "limit", "n", 0, "Limit number of messages to show")
}
