package internal

import "time"

// Roles produced by the parser. The stored schema has used boolean is-user
// flags, string roles, and nothing at all across IDE versions, so every
// message is normalized to one of these.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Chat is one conversation extracted from workspace storage.
type Chat struct {
	ID        string    `json:"id"`
	Title     string    `json:"title,omitempty"`
	RequestID string    `json:"requestId,omitempty"`
	Messages  []Message `json:"messages"`
}

// Message is a single turn in a chat.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// LastMessageTime returns the timestamp of the final message, or the zero
// time for a chat with no messages. Used only for list ordering.
func (c *Chat) LastMessageTime() time.Time {
	if len(c.Messages) == 0 {
		return time.Time{}
	}
	return c.Messages[len(c.Messages)-1].Timestamp
}

// DisplayTitle returns the stored title, or a "Chat <id>" placeholder for
// untitled chats. The placeholder is a presentation concern; Title itself
// stays empty.
func (c *Chat) DisplayTitle() string {
	if c.Title != "" {
		return c.Title
	}
	return "Chat " + c.ID
}

// WithRequestID returns a copy of the chat with RequestID overridden. The
// receiver is never modified; the unenriched value may still be referenced
// elsewhere.
func (c Chat) WithRequestID(requestID string) Chat {
	c.RequestID = requestID
	return c
}
