package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	ctrlC    = tea.KeyMsg{Type: tea.KeyCtrlC}
	ctrlG    = tea.KeyMsg{Type: tea.KeyCtrlG}
	ctrlS    = tea.KeyMsg{Type: tea.KeyCtrlS}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
)

// exec runs cmd and returns its message.
func exec(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

// navigation runs cmd and expects a NavigateTo.
func navigation(t *testing.T, cmd tea.Cmd) NavigateTo {
	t.Helper()
	nav, ok := exec(t, cmd).(NavigateTo)
	require.True(t, ok, "expected NavigateTo")
	return nav
}

// stubPage records the messages it receives.
type stubPage struct {
	name     string
	received []tea.Msg
}

func (s *stubPage) Init() tea.Cmd { return nil }

func (s *stubPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	s.received = append(s.received, msg)
	return s, nil
}

func (s *stubPage) View() string { return "page " + s.name }
