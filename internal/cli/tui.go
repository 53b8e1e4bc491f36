package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// barWidth is the character width of the TUI progress bar.
const barWidth = 30

// progressMsg carries one engine progress update into the TUI.
type progressMsg struct {
	index    int
	total    int
	location string
}

// doneMsg signals that the pipeline finished.
type doneMsg struct{}

// progressModel is the bubbletea model showing per-location generation
// progress during a generate run.
type progressModel struct {
	processed   int
	total       int
	location    string
	quitting    bool
	interrupted bool
}

func newProgressModel() progressModel {
	return progressModel{}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.processed = msg.index
		m.total = msg.total
		m.location = msg.location
		return m, nil
	case doneMsg:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			m.interrupted = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.quitting {
		return ""
	}
	if m.total == 0 {
		return StyleDim.Render("Preparing labels...") + "\n"
	}

	filled := m.processed * barWidth / m.total
	bar := styleProgressBar.Render(strings.Repeat("▰", filled)) +
		StyleDim.Render(strings.Repeat("▱", barWidth-filled))

	status := fmt.Sprintf("Processing location %d/%d", m.processed+1, m.total)
	if m.location != "" {
		status += ": " + StyleValue.Render(m.location)
	}
	return fmt.Sprintf("%s\n%s\n", bar, StyleDim.Render(status))
}
