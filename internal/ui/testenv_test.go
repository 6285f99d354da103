package ui

import (
	"path/filepath"
	"testing"

	"github.com/atomicstack/clip-keeper/internal/logging"
	"github.com/atomicstack/clip-keeper/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

type testEnv struct {
	files []string
	dirs  []string
	err   error
}

func (e testEnv) Files() ([]string, error)       { return append([]string(nil), e.files...), e.err }
func (e testEnv) Directories() ([]string, error) { return append([]string(nil), e.dirs...), e.err }

func defaultTestEnv() testEnv {
	return testEnv{
		files: []string{"mail", "work/site1", "work/site2"},
		dirs:  []string{"personal", "work"},
	}
}

func newTestModel(t *testing.T, env testEnv, width, height int) *Model {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "clip-keeper.log"))
	m := NewModel(menu.NewMachine(env), width, height, false)
	m.clipboard = func(string) error { return nil }
	return m
}

func newTestHarness(t *testing.T, env testEnv) *Harness {
	t.Helper()
	return NewHarness(newTestModel(t, env, 0, 0))
}

func press(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func labels(l *level) []string {
	out := make([]string, len(l.Items))
	for i, item := range l.Items {
		out[i] = item.Label
	}
	return out
}
