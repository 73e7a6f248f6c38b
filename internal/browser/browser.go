package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"cursorchat/internal"
)

type pane int

const (
	paneList pane = iota
	paneTranscript
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62")).Padding(0, 1)
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	rowStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	userStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	roleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135"))
	filterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	helpBarStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).MarginTop(1)
)

// Model is the bubbletea model for the chat browser. It is a read-only
// consumer of the chat list; it never writes back into storage.
type Model struct {
	chats   []internal.Chat
	visible []int // indices into chats after filtering
	cursor  int

	pane      pane
	filtering bool
	filter    string

	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

// New builds a browser over an already-loaded chat list.
func New(chats []internal.Chat) Model {
	m := Model{chats: chats}
	m.applyFilter()
	return m
}

// Run loads the browser into an alt-screen bubbletea program and blocks
// until the user quits.
func Run(chats []internal.Chat) error {
	_, err := tea.NewProgram(New(chats), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport = viewport.New(msg.Width, msg.Height-2)
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		if m.pane == paneTranscript {
			return m.updateTranscript(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter = ""
		m.applyFilter()
	case tea.KeyEnter:
		m.filtering = false
	case tea.KeyBackspace:
		if m.filter != "" {
			m.filter = m.filter[:len(m.filter)-1]
			m.applyFilter()
		}
	case tea.KeyRunes:
		m.filter += string(msg.Runes)
		m.applyFilter()
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case "/":
		m.filtering = true
		m.filter = ""
		m.applyFilter()
	case "enter":
		if chat := m.selected(); chat != nil && m.ready {
			m.viewport.SetContent(renderTranscript(chat, m.width))
			m.viewport.GotoTop()
			m.pane = paneTranscript
		}
	}
	return m, nil
}

func (m Model) updateTranscript(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.pane = paneList
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// chatSource adapts the chat list for fuzzy matching over title, id and
// request id.
type chatSource []internal.Chat

func (s chatSource) String(i int) string {
	return s[i].DisplayTitle() + " " + s[i].ID + " " + s[i].RequestID
}

func (s chatSource) Len() int {
	return len(s)
}

func (m *Model) applyFilter() {
	if m.filter == "" {
		m.visible = make([]int, len(m.chats))
		for i := range m.chats {
			m.visible[i] = i
		}
	} else {
		matches := fuzzy.FindFrom(m.filter, chatSource(m.chats))
		m.visible = make([]int, 0, len(matches))
		for _, match := range matches {
			m.visible = append(m.visible, match.Index)
		}
	}

	if m.cursor >= len(m.visible) {
		m.cursor = 0
	}
}

func (m *Model) selected() *internal.Chat {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return nil
	}
	return &m.chats[m.visible[m.cursor]]
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.pane == paneTranscript {
		return m.viewport.View() + "\n" + helpBarStyle.Render("esc back • ↑/↓ scroll • ctrl+c quit")
	}
	return m.listView()
}

func (m Model) listView() string {
	var b strings.Builder

	header := titleStyle.Render(fmt.Sprintf("Chats (%d)", len(m.visible)))
	if m.filtering || m.filter != "" {
		header += " " + filterStyle.Render("/"+m.filter)
	}
	b.WriteString(header + "\n\n")

	maxRows := m.height - 5
	if maxRows < 1 {
		maxRows = 1
	}

	start := 0
	if m.cursor >= maxRows {
		start = m.cursor - maxRows + 1
	}

	for i := start; i < len(m.visible) && i < start+maxRows; i++ {
		chat := m.chats[m.visible[i]]

		line := fmt.Sprintf("%s  %s", chat.DisplayTitle(), dimStyle.Render(chatSummary(&chat)))
		if i == m.cursor {
			line = cursorStyle.Render("> " + line)
		} else {
			line = rowStyle.Render("  " + line)
		}
		b.WriteString(line + "\n")
	}

	if len(m.visible) == 0 {
		b.WriteString(dimStyle.Render("  no chats match") + "\n")
	}

	b.WriteString(helpBarStyle.Render("enter view • / filter • q quit"))
	return b.String()
}

func chatSummary(chat *internal.Chat) string {
	last := chat.LastMessageTime()
	if last.IsZero() {
		return fmt.Sprintf("%d message(s)", len(chat.Messages))
	}
	return fmt.Sprintf("%d message(s), %s", len(chat.Messages), last.Format("2006-01-02 15:04"))
}

// renderTranscript formats a full conversation for the viewport.
func renderTranscript(chat *internal.Chat, width int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(chat.DisplayTitle()) + "\n")
	if chat.RequestID != "" {
		b.WriteString(dimStyle.Render("Request ID: "+chat.RequestID) + "\n")
	}
	b.WriteString("\n")

	for _, msg := range chat.Messages {
		style := roleStyle
		if msg.Role == internal.RoleUser {
			style = userStyle
		}

		header := style.Render(msg.Role)
		if !msg.Timestamp.IsZero() {
			header += " " + dimStyle.Render(msg.Timestamp.Format("15:04:05"))
		}
		b.WriteString(header + "\n")
		b.WriteString(msg.Content + "\n\n")
	}

	if len(chat.Messages) == 0 {
		b.WriteString(dimStyle.Render("(empty chat)") + "\n")
	}

	return b.String()
}
