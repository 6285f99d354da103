package ui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func TestViewShowsHeaderMessageAndEntries(t *testing.T) {
	h := newTestHarness(t, defaultTestEnv())
	h.Send(press(tea.KeyEnter))

	view := h.View()
	for _, want := range []string{"clip-keeper→copy", "Password file selection", "work/site1", "..", "» "} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q, got:\n%s", want, view)
		}
	}
}

func TestViewTopLevelHasNoMessage(t *testing.T) {
	m := newTestModel(t, defaultTestEnv(), 0, 0)
	if lines := m.messageLines(); lines != nil {
		t.Fatalf("expected no message on top level, got %v", lines)
	}
}

func TestViewWrapsMessageToWidth(t *testing.T) {
	model := newTestModel(t, defaultTestEnv(), 30, 0)
	h := NewHarness(model)
	h.Send(press(tea.KeyEnter))

	if n := len(h.Model().messageLines()); n < 2 {
		t.Fatalf("expected message wrapped over several lines, got %d", n)
	}
	for _, line := range strings.Split(h.View(), "\n") {
		if w := lipgloss.Width(line); w > 30 {
			t.Fatalf("expected line within 30 cells, got %d: %q", w, line)
		}
	}
}

func TestViewReportsNoMatches(t *testing.T) {
	h := newTestHarness(t, defaultTestEnv())
	h.Send(press(tea.KeyEnter))
	h.Type("zzz")
	if view := h.View(); !strings.Contains(view, `No matches for "zzz"`) {
		t.Fatalf("expected no matches notice, got:\n%s", view)
	}
}

func TestViewShowsFooterBindings(t *testing.T) {
	model := NewModel(newTestModel(t, defaultTestEnv(), 0, 0).machine, 0, 0, true)
	view := NewHarness(model).View()
	for _, want := range []string{"enter select", "tab complete", "alt+enter use typed text", "esc quit"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected footer to contain %q, got:\n%s", want, view)
		}
	}
}

func TestViewShowsError(t *testing.T) {
	m := newTestModel(t, defaultTestEnv(), 0, 0)
	m.errMsg = "boom"
	if view := m.View(); !strings.Contains(view, "Error: boom") {
		t.Fatalf("expected error line, got:\n%s", view)
	}
}

func TestViewPaginatesLongLists(t *testing.T) {
	env := defaultTestEnv()
	env.files = make([]string, 30)
	for i := range env.files {
		env.files[i] = fmt.Sprintf("site-%02d", i)
	}
	model := newTestModel(t, env, 40, 8)
	h := NewHarness(model)
	h.Send(press(tea.KeyEnter))
	h.Send(press(tea.KeyEnd))

	m := h.Model()
	view := h.View()
	if lines := strings.Split(view, "\n"); len(lines) > 8 {
		t.Fatalf("expected at most 8 lines, got %d:\n%s", len(lines), view)
	}
	if !strings.Contains(view, "site-29") {
		t.Fatalf("expected last entry visible after end, got:\n%s", view)
	}
	if strings.Contains(view, "site-00") {
		t.Fatalf("expected first entry scrolled out, got:\n%s", view)
	}
	if m.level.ViewportOffset == 0 {
		t.Fatalf("expected viewport to scroll")
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("abcdef", 4); got != "abc…" {
		t.Fatalf("expected abc…, got %q", got)
	}
	if got := truncateText("abc", 4); got != "abc" {
		t.Fatalf("expected unchanged text, got %q", got)
	}
	if got := truncateText("abc", 0); got != "abc" {
		t.Fatalf("expected unchanged text without width, got %q", got)
	}
}
