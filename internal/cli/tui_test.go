package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestProgressModelUpdate(t *testing.T) {
	m := newProgressModel()

	next, cmd := m.Update(progressMsg{index: 2, total: 8, location: "12M R 0 2 A 1"})
	if cmd != nil {
		t.Error("progress updates should not emit a command")
	}
	pm := next.(progressModel)
	if pm.processed != 2 || pm.total != 8 || pm.location != "12M R 0 2 A 1" {
		t.Errorf("model = %+v", pm)
	}

	view := pm.View()
	if !strings.Contains(view, "3/8") {
		t.Errorf("view missing position: %q", view)
	}
	if !strings.Contains(view, "12M R 0 2 A 1") {
		t.Errorf("view missing location: %q", view)
	}
}

func TestProgressModelDone(t *testing.T) {
	m := newProgressModel()

	next, cmd := m.Update(doneMsg{})
	pm := next.(progressModel)
	if !pm.quitting {
		t.Error("done message should quit")
	}
	if pm.interrupted {
		t.Error("done is not an interrupt")
	}
	if cmd == nil {
		t.Fatal("done message should emit a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("done command is not tea.Quit")
	}
	if pm.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestProgressModelInterrupt(t *testing.T) {
	// Ctrl+C quits the TUI while the pipeline may still be running; the
	// interrupted flag is what tells execute to cancel and wait instead
	// of reading its result.
	m := newProgressModel()

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	pm := next.(progressModel)
	if !pm.interrupted || !pm.quitting {
		t.Errorf("ctrl+c should interrupt and quit, got %+v", pm)
	}
	if cmd == nil {
		t.Fatal("ctrl+c should emit a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c command is not tea.Quit")
	}
}
