package ui

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// ErrAborted is returned when the user cancels an interactive prompt.
var ErrAborted = fmt.Errorf("aborted")

// selectModel is a bubbletea model for choosing one option from a list.
type selectModel struct {
	title   string
	options []string
	cursor  int
	done    bool
	aborted bool
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m selectModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n")
	for i, opt := range m.options {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> ") + selectedStyle.Render(opt) + "\n")
		} else {
			b.WriteString("  " + opt + "\n")
		}
	}
	b.WriteString("\n(arrows to move, enter to confirm, esc to cancel)\n")
	return b.String()
}

// Select presents a numbered menu on the terminal and returns the chosen index.
// It fails when stdin is not a terminal, so non-interactive callers must
// resolve their choice up front (e.g., via a flag).
func Select(title string, options []string) (int, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return -1, fmt.Errorf("stdin is not a terminal")
	}

	final, err := tea.NewProgram(selectModel{title: title, options: options}).Run()
	if err != nil {
		return -1, fmt.Errorf("running prompt: %w", err)
	}

	m := final.(selectModel)
	if m.aborted {
		return -1, ErrAborted
	}
	return m.cursor, nil
}
