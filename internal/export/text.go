package export

import (
	"fmt"
	"io"
	"time"

	"cursorchat/internal"
)

// TextExporter writes a plain-text transcript
type TextExporter struct{}

// Export exports a chat as plain text
func (e *TextExporter) Export(chat *internal.Chat, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "%s\n", chat.DisplayTitle())
	if chat.RequestID != "" {
		_, _ = fmt.Fprintf(w, "Request ID: %s\n", chat.RequestID)
	}
	_, _ = fmt.Fprintf(w, "Messages: %d\n\n", len(chat.Messages))

	for _, msg := range chat.Messages {
		if msg.Timestamp.IsZero() {
			_, _ = fmt.Fprintf(w, "[%s]\n", msg.Role)
		} else {
			_, _ = fmt.Fprintf(w, "[%s] %s\n", msg.Role, msg.Timestamp.Format(time.RFC3339))
		}
		_, _ = fmt.Fprintf(w, "%s\n\n", msg.Content)
	}

	return nil
}

// Extension returns the file extension for this format
func (e *TextExporter) Extension() string {
	return "txt"
}
