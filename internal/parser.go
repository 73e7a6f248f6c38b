package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// chatPayload is the decoded form of one stored value: exactly one of the
// known schema variants. normalize folds either variant into a Chat, so a
// future third variant only touches the decodePayload dispatch.
type chatPayload interface {
	normalize(chatID string) *Chat
}

// flatPromptPayload is the legacy aiService.prompts shape: a bare JSON
// array of message objects.
type flatPromptPayload []rawMessage

// nestedChatPayload is the current chatdata shape: a metadata block plus a
// message array.
type nestedChatPayload struct {
	Title     string       `json:"title"`
	ChatTitle string       `json:"chatTitle"`
	RequestID string       `json:"requestId"`
	Messages  []rawMessage `json:"messages"`
}

// rawMessage tolerates every historical per-message field spelling.
type rawMessage struct {
	Role      string `json:"role"`
	Type      string `json:"type"`
	IsUser    *bool  `json:"isUser"`
	Text      string `json:"text"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

// ParseChat converts one stored value into a Chat. Any decode problem —
// malformed JSON, a shape matching neither known variant — yields nil; the
// caller treats that as "no chat at this row", never as a scan failure.
func ParseChat(chatID, rawValue string) *Chat {
	chat, err := parseChat(chatID, rawValue)
	if err != nil {
		LogDebug("skipping record %s: %v", chatID, err)
		return nil
	}
	return chat
}

// parseChat keeps the soft-fail contract explicit: decode errors stay
// internal and collapse to nil at the ParseChat boundary.
func parseChat(chatID, rawValue string) (*Chat, error) {
	payload, err := decodePayload(rawValue)
	if err != nil {
		return nil, &ParseError{ChatID: chatID, Err: err}
	}
	return payload.normalize(chatID), nil
}

// decodePayload dispatches on JSON shape: a top-level array is the legacy
// flat prompt list, an object carrying a messages key is nested chat data.
// Anything else matches no known variant.
func decodePayload(rawValue string) (chatPayload, error) {
	trimmed := strings.TrimSpace(rawValue)
	if trimmed == "" {
		return nil, errors.New("empty value")
	}

	switch trimmed[0] {
	case '[':
		var flat flatPromptPayload
		if err := json.Unmarshal([]byte(trimmed), &flat); err != nil {
			return nil, fmt.Errorf("flat prompt array: %w", err)
		}
		return flat, nil
	case '{':
		var nested nestedChatPayload
		if err := json.Unmarshal([]byte(trimmed), &nested); err != nil {
			return nil, fmt.Errorf("nested chat data: %w", err)
		}
		if nested.Messages == nil {
			return nil, errors.New("object carries no messages array")
		}
		return nested, nil
	default:
		return nil, errors.New("value is neither array nor object")
	}
}

func (p flatPromptPayload) normalize(chatID string) *Chat {
	return &Chat{
		ID:       chatID,
		Messages: normalizeMessages(p),
	}
}

func (p nestedChatPayload) normalize(chatID string) *Chat {
	title := p.Title
	if title == "" {
		title = p.ChatTitle
	}
	return &Chat{
		ID:        chatID,
		Title:     title,
		RequestID: p.RequestID,
		Messages:  normalizeMessages(p.Messages),
	}
}

// normalizeMessages preserves the original array order from the payload.
func normalizeMessages(raw []rawMessage) []Message {
	messages := make([]Message, 0, len(raw))
	for _, m := range raw {
		messages = append(messages, Message{
			Role:      normalizeRole(m),
			Content:   messageContent(m),
			Timestamp: timeFromMillis(m.Timestamp),
		})
	}
	return messages
}

// normalizeRole folds the historical role spellings into the recognized
// roles. An explicit string field wins over the boolean is-user flag; with
// neither present the message is attributed to the assistant.
func normalizeRole(m rawMessage) string {
	role := m.Role
	if role == "" {
		role = m.Type
	}
	switch strings.ToLower(role) {
	case "user", "human":
		return RoleUser
	case "assistant", "ai", "bot":
		return RoleAssistant
	}

	if m.IsUser != nil {
		if *m.IsUser {
			return RoleUser
		}
		return RoleAssistant
	}

	return RoleAssistant
}

// messageContent prefers the older text field over content; missing both
// yields an empty string, never null.
func messageContent(m rawMessage) string {
	if m.Text != "" {
		return m.Text
	}
	return m.Content
}

// timeFromMillis converts a milliseconds-since-epoch value, returning the
// zero time when the field was absent. Older schema variants carry no
// timestamps at all; guessing "now" would corrupt list ordering.
func timeFromMillis(ms int64) time.Time {
	if ms <= 0 {
		return time.Time{}
	}
	return time.Unix(0, ms*int64(time.Millisecond))
}
