package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHandleTextInputAppendsRunes(t *testing.T) {
	m := newTestModel(t, defaultTestEnv(), 0, 0)
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")}) {
		t.Fatalf("expected key press to be handled")
	}
	if m.level.Filter != "abc" {
		t.Fatalf("expected filter 'abc', got %q", m.level.Filter)
	}
	if pos := m.level.FilterCursorPos(); pos != 3 {
		t.Fatalf("expected cursor at end, got %d", pos)
	}
	if m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b"), Alt: true}) {
		t.Fatalf("expected alt runes to be left alone")
	}
}

func TestHandleTextInputCursorMovement(t *testing.T) {
	m := newTestModel(t, defaultTestEnv(), 0, 0)
	m.level.SetFilter("abc", 3)

	if !m.handleTextInput(press(tea.KeyLeft)) {
		t.Fatalf("expected left arrow to be handled")
	}
	if pos := m.level.FilterCursorPos(); pos != 2 {
		t.Fatalf("expected cursor at 2 after left, got %d", pos)
	}
	if !m.handleTextInput(press(tea.KeyRight)) {
		t.Fatalf("expected right arrow to be handled")
	}
	if pos := m.level.FilterCursorPos(); pos != 3 {
		t.Fatalf("expected cursor back at 3, got %d", pos)
	}
	if m.handleTextInput(press(tea.KeyRight)) {
		t.Fatalf("expected right arrow at end to fall through")
	}
	if !m.handleTextInput(press(tea.KeyCtrlA)) || m.level.FilterCursorPos() != 0 {
		t.Fatalf("expected ctrl+a to move to start")
	}
	if !m.handleTextInput(press(tea.KeyCtrlE)) || m.level.FilterCursorPos() != 3 {
		t.Fatalf("expected ctrl+e to move to end")
	}
}

func TestHandleTextInputDeletes(t *testing.T) {
	m := newTestModel(t, defaultTestEnv(), 0, 0)
	m.level.SetFilter("work/site", len("work/site"))

	if !m.handleTextInput(press(tea.KeyBackspace)) || m.level.Filter != "work/sit" {
		t.Fatalf("expected backspace to drop a rune, got %q", m.level.Filter)
	}
	if !m.handleTextInput(press(tea.KeyCtrlW)) || m.level.Filter != "work/" {
		t.Fatalf("expected ctrl+w to drop a path segment, got %q", m.level.Filter)
	}
	if !m.handleTextInput(press(tea.KeyCtrlU)) || m.level.Filter != "" {
		t.Fatalf("expected ctrl+u to clear, got %q", m.level.Filter)
	}
	if m.handleTextInput(press(tea.KeyCtrlU)) {
		t.Fatalf("expected ctrl+u on empty filter to fall through")
	}
}

func TestHandleTextInputLeavesNavigationKeys(t *testing.T) {
	m := newTestModel(t, defaultTestEnv(), 0, 0)
	for _, k := range []tea.KeyMsg{press(tea.KeyEnter), press(tea.KeyTab), press(tea.KeyEsc), press(tea.KeyUp), {Type: tea.KeyEnter, Alt: true}} {
		if m.handleTextInput(k) {
			t.Fatalf("expected %q to be left to navigation", k.String())
		}
	}
}

func TestFilterPromptPlaceholder(t *testing.T) {
	m := newTestModel(t, defaultTestEnv(), 0, 0)
	if prompt := m.filterPrompt(); !strings.Contains(prompt, "type to search") {
		t.Fatalf("expected placeholder in prompt, got %q", prompt)
	}

	h := newTestHarness(t, defaultTestEnv())
	h.Send(press(tea.KeyDown))
	h.Send(press(tea.KeyEnter))
	h.Send(tea.KeyMsg{Type: tea.KeyEnter, Alt: true})
	if h.Model().level.ID != "add/choose-file-name" {
		t.Fatalf("expected file name step, got %q", h.Model().level.ID)
	}
	if prompt := h.Model().filterPrompt(); !strings.Contains(prompt, "type a name") {
		t.Fatalf("expected free text placeholder, got %q", prompt)
	}
}
