package ui

import (
	"github.com/atomicstack/clip-keeper/internal/logging"
	"github.com/atomicstack/clip-keeper/internal/logging/events"
	"github.com/atomicstack/clip-keeper/internal/menu"
	uistate "github.com/atomicstack/clip-keeper/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.outcome.Done {
		return nil
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Cancel):
		return m.sendEvent(keyMsg.String(), menu.Cancel{})
	case key.Matches(keyMsg, m.keys.Custom):
		return m.sendEvent(keyMsg.String(), menu.CustomInput{})
	case key.Matches(keyMsg, m.keys.Accept):
		return m.handleEnterKey(keyMsg.String())
	case key.Matches(keyMsg, m.keys.Complete):
		return m.handleCompleteKey(keyMsg.String())
	case key.Matches(keyMsg, m.keys.Copy):
		return m.copyHighlighted()
	case key.Matches(keyMsg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(keyMsg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(keyMsg, m.keys.PageUp):
		m.moveCursorPage(m.level.MoveCursorPageUp)
	case key.Matches(keyMsg, m.keys.PageDown):
		m.moveCursorPage(m.level.MoveCursorPageDown)
	case key.Matches(keyMsg, m.keys.Home):
		m.moveCursorTo(m.level.MoveCursorHome)
	case key.Matches(keyMsg, m.keys.End):
		m.moveCursorTo(m.level.MoveCursorEnd)
	}
	return nil
}

// handleEnterKey confirms the highlighted entry, or submits the typed text
// when the filter hides every entry.
func (m *Model) handleEnterKey(trigger string) tea.Cmd {
	if item, ok := m.level.Highlighted(); ok {
		return m.sendEvent(trigger, menu.Confirm{Index: item.Index})
	}
	return m.sendEvent(trigger, menu.CustomInput{})
}

func (m *Model) handleCompleteKey(trigger string) tea.Cmd {
	item, ok := m.level.Highlighted()
	return m.sendEvent(trigger, menu.Autocomplete{Selected: item.Index, HasSelected: ok})
}

// sendEvent feeds ev to the machine with the current filter text as input and
// applies the directive it returns.
func (m *Model) sendEvent(trigger string, ev menu.Event) tea.Cmd {
	events.UI.Key(m.level.ID, trigger, ev.Name())
	res, err := m.machine.React(ev, m.level.Filter)
	if err != nil {
		logging.Error(err)
		events.Action.Error(err)
		m.errMsg = err.Error()
		m.outcome = Outcome{Err: err, Done: true}
		return tea.Quit
	}
	switch res.Directive {
	case menu.Reload:
		m.reload(res.Input)
	case menu.Exit:
		m.outcome = Outcome{Result: res, Done: true}
		events.UI.Exit(m.level.ID, res.Invocation == nil && res.Record == nil && res.Echo == "")
		return tea.Quit
	default:
		events.UI.Fallback(m.level.ID, ev.Name())
	}
	return nil
}

// reload redraws the machine's current list. A new menu gets a fresh level;
// the same menu keeps its cursor and only has its filter replaced by input.
func (m *Model) reload(input string) {
	id := m.machine.Menu().String()
	items := uistate.ItemsFromLabels(m.machine.Entries())
	if m.level == nil || m.level.ID != id {
		m.level = uistate.NewLevel(id, levelTitle(m.machine.Menu()), items, m.matchEntry)
		m.errMsg = ""
		m.forceClearInfo()
	} else {
		m.level.UpdateItems(items)
	}
	before := m.level.FilterCursorPos()
	m.level.SetFilter(input, len([]rune(input)))
	m.noteFilterCursorChange(m.level, before)
	m.syncViewport(m.level)
	events.UI.Reload(id, len(items), input)
}

func (m *Model) matchEntry(index int, query string) bool {
	return m.machine.Matches(index, func(entry string) bool {
		return uistate.MatchLabel(entry, query)
	})
}

func (m *Model) moveCursor(delta int) {
	if m.level.MoveCursor(delta, true) {
		events.UI.MenuCursor(m.level.ID, m.level.Cursor)
	}
	m.syncViewport(m.level)
}

func (m *Model) moveCursorPage(move func(int) bool) {
	if move(m.maxVisibleItems()) {
		events.UI.MenuCursor(m.level.ID, m.level.Cursor)
	}
	m.syncViewport(m.level)
}

func (m *Model) moveCursorTo(move func() bool) {
	if move() {
		events.UI.MenuCursor(m.level.ID, m.level.Cursor)
	}
	m.syncViewport(m.level)
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}

func levelTitle(mn menu.Menu) string {
	if _, ok := mn.(menu.Initial); ok {
		return defaultRootTitle
	}
	return mn.String()
}
