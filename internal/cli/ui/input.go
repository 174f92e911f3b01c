package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputModel is a one-line free-text prompt with a default value.
type inputModel struct {
	title    string
	fallback string
	ti       textinput.Model
	done     bool
	canceled bool
}

func newInput(title, fallback string) *inputModel {
	ti := textinput.New()
	ti.Placeholder = fallback
	ti.CharLimit = 64
	ti.Width = 32
	ti.Focus()
	return &inputModel{title: title, fallback: fallback, ti: ti}
}

func (m *inputModel) Init() tea.Cmd { return textinput.Blink }

func (m *inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.canceled = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *inputModel) View() string {
	if m.done || m.canceled {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n\n")
	b.WriteString(m.ti.View() + "\n")
	b.WriteString("\n" + dimStyle.Render("enter: accept • esc: abort") + "\n")
	return b.String()
}

// Value returns the entered text, falling back to the default when the user
// accepts an empty input.
func (m *inputModel) Value() string {
	v := strings.TrimSpace(m.ti.Value())
	if v == "" {
		return m.fallback
	}
	return v
}

// Input prompts for one line of text, pre-filling fallback as the default.
func Input(title, fallback string) (string, error) {
	m := newInput(title, fallback)
	if _, err := run(m); err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	if m.canceled {
		return "", ErrCancelled
	}
	return m.Value(), nil
}
