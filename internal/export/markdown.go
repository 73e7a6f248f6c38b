package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"cursorchat/internal"
)

// MarkdownExporter exports chats in Markdown format
type MarkdownExporter struct{}

// Export exports a chat to Markdown format
func (e *MarkdownExporter) Export(chat *internal.Chat, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# %s\n\n", chat.DisplayTitle())

	if chat.RequestID != "" {
		_, _ = fmt.Fprintf(w, "**Request ID:** %s  \n", chat.RequestID)
	}
	_, _ = fmt.Fprintf(w, "**Messages:** %d\n\n", len(chat.Messages))

	_, _ = fmt.Fprintf(w, "---\n\n")

	for i, msg := range chat.Messages {
		timestamp := ""
		if !msg.Timestamp.IsZero() {
			timestamp = fmt.Sprintf(" (%s)", msg.Timestamp.Format(time.RFC3339))
		}

		content := escapeMarkdown(msg.Content)

		_, _ = fmt.Fprintf(w, "**%s:**%s\n\n%s\n\n", msg.Role, timestamp, content)

		if i < len(chat.Messages)-1 {
			_, _ = fmt.Fprintf(w, "---\n\n")
		}
	}

	return nil
}

// escapeMarkdown escapes markdown special characters outside code blocks
func escapeMarkdown(text string) string {
	lines := strings.Split(text, "\n")
	var result []string
	inCodeBlock := false

	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			inCodeBlock = !inCodeBlock
			result = append(result, line)
		} else if inCodeBlock {
			result = append(result, line)
		} else {
			line = strings.ReplaceAll(line, "**", "\\*\\*")
			line = strings.ReplaceAll(line, "__", "\\_\\_")
			result = append(result, line)
		}
	}

	return strings.Join(result, "\n")
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
