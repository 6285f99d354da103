package ui

import (
	"fmt"

	"github.com/atomicstack/clip-keeper/internal/logging"
	"github.com/atomicstack/clip-keeper/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

type copyResultMsg struct {
	label string
	err   error
}

// copyHighlighted puts the highlighted entry's name, never its secret, on the
// clipboard.
func (m *Model) copyHighlighted() tea.Cmd {
	item, ok := m.level.Highlighted()
	if !ok || m.clipboard == nil {
		return nil
	}
	write := m.clipboard
	return func() tea.Msg {
		return copyResultMsg{label: item.Label, err: write(item.Label)}
	}
}

func (m *Model) handleCopyResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(copyResultMsg)
	if !ok {
		return nil
	}
	events.Action.Copy(res.label, res.err)
	if res.err != nil {
		err := fmt.Errorf("copy %q: %w", res.label, res.err)
		logging.Error(err)
		m.errMsg = err.Error()
		return nil
	}
	m.errMsg = ""
	info := fmt.Sprintf("Copied %s", res.label)
	m.setInfo(info)
	events.Action.Success(info)
	return nil
}
