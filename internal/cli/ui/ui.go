// Package ui implements the interactive prompt sequence: selection mode,
// folder/file multi-select, output strategy, suffix input, and confirmation.
// Each prompt is a small bubbletea model run to completion on its own.
package ui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user backs out of a prompt (ctrl+c, esc
// or q). Callers treat it as a clean abort, not a failure.
var ErrCancelled = errors.New("cancelled by user")

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	checkedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
)

// run executes one prompt model to completion. The models use pointer
// receivers, so callers read the outcome from the model they passed in.
func run(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m).Run()
}
