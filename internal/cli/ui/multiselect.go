package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// multiModel is a multi-choice menu. Submitting an empty selection is
// rejected inline; the prompt never resolves to zero entries.
type multiModel struct {
	title    string
	options  []string
	cursor   int
	selected map[int]struct{}
	warning  string
	done     bool
	canceled bool
}

func newMulti(title string, options []string) *multiModel {
	return &multiModel{
		title:    title,
		options:  options,
		selected: make(map[int]struct{}),
	}
}

func (m *multiModel) Init() tea.Cmd { return nil }

func (m *multiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
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
	case " ":
		m.warning = ""
		if _, ok := m.selected[m.cursor]; ok {
			delete(m.selected, m.cursor)
		} else {
			m.selected[m.cursor] = struct{}{}
		}
	case "a":
		m.warning = ""
		if len(m.selected) == len(m.options) {
			m.selected = make(map[int]struct{})
		} else {
			for i := range m.options {
				m.selected[i] = struct{}{}
			}
		}
	case "enter":
		if len(m.selected) == 0 {
			m.warning = "select at least one entry"
			return m, nil
		}
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *multiModel) View() string {
	if m.done || m.canceled {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n\n")
	for i, opt := range m.options {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		check := "[ ]"
		if _, ok := m.selected[i]; ok {
			check = checkedStyle.Render("[x]")
		}
		line := fmt.Sprintf("%s%s %s", cursor, check, opt)
		if i == m.cursor {
			line = fmt.Sprintf("%s%s %s", cursor, check, selectedStyle.Render(opt))
		}
		b.WriteString(line + "\n")
	}
	if m.warning != "" {
		b.WriteString("\n" + warnStyle.Render(m.warning) + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("space: toggle • a: toggle all • enter: confirm • q: abort") + "\n")
	return b.String()
}

// MultiSelect presents options and returns the indices toggled by the user,
// in option order. The result is never empty.
func MultiSelect(title string, options []string) ([]int, error) {
	m := newMulti(title, options)
	if _, err := run(m); err != nil {
		return nil, fmt.Errorf("prompt failed: %w", err)
	}
	if m.canceled {
		return nil, ErrCancelled
	}
	picked := make([]int, 0, len(m.selected))
	for i := range m.options {
		if _, ok := m.selected[i]; ok {
			picked = append(picked, i)
		}
	}
	return picked, nil
}
