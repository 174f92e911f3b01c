package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// chooseModel is a single-choice menu driven by arrow keys.
type chooseModel struct {
	title    string
	options  []string
	cursor   int
	chosen   bool
	canceled bool
}

func newChoose(title string, options []string) *chooseModel {
	return &chooseModel{title: title, options: options}
}

func (m *chooseModel) Init() tea.Cmd { return nil }

func (m *chooseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc", "q":
			m.canceled = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		case "enter":
			m.chosen = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *chooseModel) View() string {
	if m.chosen || m.canceled {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n\n")
	for i, opt := range m.options {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> ") + selectedStyle.Render(opt) + "\n")
		} else {
			b.WriteString("  " + opt + "\n")
		}
	}
	b.WriteString("\n" + dimStyle.Render("up/down: move • enter: choose • q: abort") + "\n")
	return b.String()
}

// Choose presents options and returns the index picked by the user.
func Choose(title string, options []string) (int, error) {
	m := newChoose(title, options)
	if _, err := run(m); err != nil {
		return 0, fmt.Errorf("prompt failed: %w", err)
	}
	if m.canceled {
		return 0, ErrCancelled
	}
	return m.cursor, nil
}

// Confirm asks a yes/no question and returns true for yes.
func Confirm(title string) (bool, error) {
	idx, err := Choose(title, []string{"Yes", "No"})
	if err != nil {
		return false, err
	}
	return idx == 0, nil
}
