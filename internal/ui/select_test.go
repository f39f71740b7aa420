package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestSelectModelNavigation(t *testing.T) {
	m := selectModel{title: "Pick one:", options: []string{"first", "second", "third"}}

	next, _ := m.Update(key("down"))
	m = next.(selectModel)
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}

	next, _ = m.Update(key("down"))
	m = next.(selectModel)
	next, _ = m.Update(key("down"))
	m = next.(selectModel)
	if m.cursor != 2 {
		t.Errorf("cursor should clamp at last option, got %d", m.cursor)
	}

	next, _ = m.Update(key("up"))
	m = next.(selectModel)
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1 after up", m.cursor)
	}

	next, _ = m.Update(key("enter"))
	m = next.(selectModel)
	if !m.done {
		t.Error("enter should mark the model done")
	}
}

func TestSelectModelClampAtTop(t *testing.T) {
	m := selectModel{options: []string{"a", "b"}}
	next, _ := m.Update(key("up"))
	m = next.(selectModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}

func TestSelectModelAbort(t *testing.T) {
	m := selectModel{options: []string{"a", "b"}}
	next, _ := m.Update(key("esc"))
	m = next.(selectModel)
	if !m.aborted {
		t.Error("esc should abort")
	}
}

func TestSelectModelViewMarksCursor(t *testing.T) {
	m := selectModel{title: "Pick:", options: []string{"alpha", "beta"}}
	view := m.View()
	if !strings.Contains(view, "alpha") || !strings.Contains(view, "beta") {
		t.Errorf("view should list all options:\n%s", view)
	}
	if !strings.Contains(view, "Pick:") {
		t.Errorf("view should include the title:\n%s", view)
	}
}

func TestSelectModelViewEmptyWhenDone(t *testing.T) {
	m := selectModel{options: []string{"a"}, done: true}
	if m.View() != "" {
		t.Error("done model should render nothing")
	}
}
