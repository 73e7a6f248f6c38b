package internal

import (
	"testing"
	"time"
)

func TestParseChat_FlatPromptArray(t *testing.T) {
	value := `[
		{"text":"Hello","isUser":true,"timestamp":1700000000000},
		{"text":"Hi there","isUser":false,"timestamp":1700000001000}
	]`

	chat := ParseChat("ws1_1", value)
	if chat == nil {
		t.Fatal("ParseChat() returned nil for valid flat array")
	}

	if chat.ID != "ws1_1" {
		t.Errorf("ID = %q, want ws1_1", chat.ID)
	}
	if chat.Title != "" {
		t.Errorf("Title = %q, want empty (flat arrays carry no metadata)", chat.Title)
	}
	if chat.RequestID != "" {
		t.Errorf("RequestID = %q, want empty", chat.RequestID)
	}
	if len(chat.Messages) != 2 {
		t.Fatalf("len(Messages) = %d, want 2", len(chat.Messages))
	}

	if chat.Messages[0].Role != RoleUser {
		t.Errorf("Messages[0].Role = %q, want %q", chat.Messages[0].Role, RoleUser)
	}
	if chat.Messages[1].Role != RoleAssistant {
		t.Errorf("Messages[1].Role = %q, want %q", chat.Messages[1].Role, RoleAssistant)
	}
	if chat.Messages[0].Content != "Hello" {
		t.Errorf("Messages[0].Content = %q, want Hello", chat.Messages[0].Content)
	}

	want := time.Unix(0, 1700000000000*int64(time.Millisecond))
	if !chat.Messages[0].Timestamp.Equal(want) {
		t.Errorf("Messages[0].Timestamp = %v, want %v", chat.Messages[0].Timestamp, want)
	}
}

func TestParseChat_NestedChatData(t *testing.T) {
	value := `{
		"title":"My chat",
		"requestId":"abc-123",
		"messages":[
			{"role":"user","content":"question"},
			{"role":"assistant","content":"answer","timestamp":1700000002000}
		]
	}`

	chat := ParseChat("ws2_1", value)
	if chat == nil {
		t.Fatal("ParseChat() returned nil for valid nested object")
	}

	if chat.Title != "My chat" {
		t.Errorf("Title = %q, want My chat", chat.Title)
	}
	if chat.RequestID != "abc-123" {
		t.Errorf("RequestID = %q, want abc-123", chat.RequestID)
	}
	if len(chat.Messages) != 2 {
		t.Fatalf("len(Messages) = %d, want 2", len(chat.Messages))
	}
	if chat.Messages[0].Content != "question" {
		t.Errorf("Messages[0].Content = %q, want question", chat.Messages[0].Content)
	}
	if !chat.Messages[0].Timestamp.IsZero() {
		t.Errorf("missing timestamp should be the zero time, got %v", chat.Messages[0].Timestamp)
	}
}

func TestParseChat_ChatTitleFallback(t *testing.T) {
	chat := ParseChat("c", `{"chatTitle":"older title field","messages":[]}`)
	if chat == nil {
		t.Fatal("ParseChat() returned nil")
	}
	if chat.Title != "older title field" {
		t.Errorf("Title = %q, want chatTitle value", chat.Title)
	}
}

// Any malformed or schema-mismatched input yields nil, never a panic.
func TestParseChat_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not json", "not valid json"},
		{"empty", ""},
		{"whitespace", "   \n\t "},
		{"bare number", "42"},
		{"bare string", `"hello"`},
		{"bool", "true"},
		{"object without messages", `{"title":"x","foo":1}`},
		{"messages is null", `{"title":"x","messages":null}`},
		{"messages wrong type", `{"messages":"nope"}`},
		{"array of scalars", `[1,2,3]`},
		{"truncated object", `{"messages":[{"role":"user"`},
		{"truncated array", `[{"text":"hi"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if chat := ParseChat("id", tt.value); chat != nil {
				t.Errorf("ParseChat(%q) = %+v, want nil", tt.value, chat)
			}
		})
	}
}

// Role detection is deterministic across every historical payload shape.
func TestNormalizeRole(t *testing.T) {
	boolPtr := func(b bool) *bool { return &b }

	tests := []struct {
		name string
		msg  rawMessage
		want string
	}{
		{"role user", rawMessage{Role: "user"}, RoleUser},
		{"role human", rawMessage{Role: "human"}, RoleUser},
		{"role uppercase", rawMessage{Role: "User"}, RoleUser},
		{"role assistant", rawMessage{Role: "assistant"}, RoleAssistant},
		{"role ai", rawMessage{Role: "ai"}, RoleAssistant},
		{"role bot", rawMessage{Role: "bot"}, RoleAssistant},
		{"type field", rawMessage{Type: "user"}, RoleUser},
		{"isUser true", rawMessage{IsUser: boolPtr(true)}, RoleUser},
		{"isUser false", rawMessage{IsUser: boolPtr(false)}, RoleAssistant},
		{"unknown role falls back to isUser", rawMessage{Role: "tool", IsUser: boolPtr(true)}, RoleUser},
		{"role wins over isUser", rawMessage{Role: "user", IsUser: boolPtr(false)}, RoleUser},
		{"nothing present", rawMessage{}, RoleAssistant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeRole(tt.msg); got != tt.want {
				t.Errorf("normalizeRole() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseChat_DefensiveFieldExtraction(t *testing.T) {
	chat := ParseChat("c", `{"messages":[{}]}`)
	if chat == nil {
		t.Fatal("ParseChat() returned nil")
	}
	if len(chat.Messages) != 1 {
		t.Fatalf("len(Messages) = %d, want 1", len(chat.Messages))
	}

	msg := chat.Messages[0]
	if msg.Role != RoleAssistant {
		t.Errorf("missing role should default to assistant, got %q", msg.Role)
	}
	if msg.Content != "" {
		t.Errorf("missing content should be empty string, got %q", msg.Content)
	}
	if !msg.Timestamp.IsZero() {
		t.Errorf("missing timestamp should be the zero time, got %v", msg.Timestamp)
	}
}

func TestParseChat_ContentFieldPreference(t *testing.T) {
	chat := ParseChat("c", `{"messages":[{"text":"from text","content":"from content"}]}`)
	if chat == nil {
		t.Fatal("ParseChat() returned nil")
	}
	if chat.Messages[0].Content != "from text" {
		t.Errorf("Content = %q, want the text field to win", chat.Messages[0].Content)
	}
}

// A chat with zero messages is a valid value; the parser must not drop it.
func TestParseChat_EmptyMessages(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"nested empty", `{"title":"untouched","messages":[]}`},
		{"flat empty", `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chat := ParseChat("c", tt.value)
			if chat == nil {
				t.Fatal("ParseChat() returned nil for empty-but-valid chat")
			}
			if len(chat.Messages) != 0 {
				t.Errorf("len(Messages) = %d, want 0", len(chat.Messages))
			}
		})
	}
}

func TestParseChat_PreservesOrder(t *testing.T) {
	value := `[
		{"text":"first","isUser":true},
		{"text":"second","isUser":false},
		{"text":"third","isUser":true}
	]`

	chat := ParseChat("c", value)
	if chat == nil {
		t.Fatal("ParseChat() returned nil")
	}

	want := []string{"first", "second", "third"}
	for i, content := range want {
		if chat.Messages[i].Content != content {
			t.Errorf("Messages[%d].Content = %q, want %q", i, chat.Messages[i].Content, content)
		}
	}
}

func TestTimeFromMillis(t *testing.T) {
	if !timeFromMillis(0).IsZero() {
		t.Error("timeFromMillis(0) should be the zero time")
	}
	if !timeFromMillis(-5).IsZero() {
		t.Error("timeFromMillis(-5) should be the zero time")
	}
	got := timeFromMillis(1700000000000)
	if got.UnixMilli() != 1700000000000 {
		t.Errorf("timeFromMillis() = %v, want 1700000000000ms", got)
	}
}
