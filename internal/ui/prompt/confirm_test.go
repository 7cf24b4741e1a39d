package prompt

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyPress(key string) tea.KeyMsg {
	switch key {
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func TestConfirmModel_Update(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		key       string
		confirmed bool
		cancelled bool
	}{
		{"y confirms", "y", true, false},
		{"Y confirms", "Y", true, false},
		{"n declines", "n", false, false},
		{"N declines", "N", false, false},
		{"enter defaults to no", "enter", false, false},
		{"ctrl+c cancels", "ctrl+c", false, true},
		{"q cancels", "q", false, true},
		{"esc cancels", "esc", false, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			model, cmd := confirmModel{prompt: "Delete?"}.Update(keyPress(tt.key))
			m := model.(confirmModel)

			if !m.done {
				t.Fatal("done = false after key press")
			}
			if cmd == nil {
				t.Error("expected tea.Quit command")
			}
			if m.confirmed != tt.confirmed {
				t.Errorf("confirmed = %v, want %v", m.confirmed, tt.confirmed)
			}
			if m.cancelled != tt.cancelled {
				t.Errorf("cancelled = %v, want %v", m.cancelled, tt.cancelled)
			}
		})
	}
}

func TestConfirmModel_IgnoresOtherKeys(t *testing.T) {
	t.Parallel()

	model, _ := confirmModel{prompt: "Delete?"}.Update(keyPress("x"))
	if model.(confirmModel).done {
		t.Error("unrelated key should not finish the prompt")
	}
}

func TestConfirmModel_View(t *testing.T) {
	t.Parallel()

	m := confirmModel{prompt: "Remove worktree?"}
	if got := m.View(); got != "Remove worktree? [y/N] " {
		t.Errorf("View() = %q", got)
	}

	m.done = true
	if got := m.View(); got != "" {
		t.Errorf("View() after done = %q, want empty", got)
	}
}

func TestSelectModel_Cancel(t *testing.T) {
	t.Parallel()

	model, _ := selectModel{}.Update(keyPress("esc"))
	m := model.(selectModel)
	if !m.cancelled {
		t.Error("cancelled = false after esc")
	}
	if !m.done {
		t.Error("done = false after esc")
	}
}
