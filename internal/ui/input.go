package ui

import (
	"unicode"

	"github.com/atomicstack/clip-keeper/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(l *level, before int) {
	if l == nil {
		return
	}
	if before != l.FilterCursorPos() {
		m.filterCursorDirty = true
	}
}

// handleTextInput applies filter editing keys. It reports false for keys it
// leaves to navigation.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	current := m.level
	if current == nil {
		return false
	}
	switch msg.String() {
	case "ctrl+u":
		if current.Filter == "" {
			return false
		}
		before := current.FilterCursorPos()
		current.SetFilter("", 0)
		m.filterEdited(current, before)
		events.Filter.Cleared(current.ID)
		return true
	case "ctrl+w":
		before := current.FilterCursorPos()
		if !current.DeleteFilterWordBackward() {
			return false
		}
		m.filterEdited(current, before)
		events.Filter.WordBackspace(current.ID, current.Filter)
		return true
	case "ctrl+a":
		return m.moveFilterCursor(current, current.MoveFilterCursorStart, events.Filter.Cursor)
	case "ctrl+e":
		return m.moveFilterCursor(current, current.MoveFilterCursorEnd, events.Filter.Cursor)
	case "alt+b":
		return m.moveFilterCursor(current, current.MoveFilterCursorWordBackward, events.Filter.CursorWord)
	case "alt+f":
		return m.moveFilterCursor(current, current.MoveFilterCursorWordForward, events.Filter.CursorWord)
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.removeFilterRune()
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) || unicode.IsSpace(r) {
				return false
			}
		}
		return m.appendToFilter(string(msg.Runes))
	case tea.KeySpace:
		return m.appendToFilter(" ")
	case tea.KeyLeft:
		return m.moveFilterCursor(current, current.MoveFilterCursorRuneBackward, events.Filter.Cursor)
	case tea.KeyRight:
		return m.moveFilterCursor(current, current.MoveFilterCursorRuneForward, events.Filter.Cursor)
	}
	return false
}

func (m *Model) moveFilterCursor(current *level, move func() bool, trace func(string, int)) bool {
	before := current.FilterCursorPos()
	if !move() {
		return false
	}
	m.noteFilterCursorChange(current, before)
	trace(current.ID, current.FilterCursor)
	return true
}

// filterEdited resets transient messages after the filter text changed.
func (m *Model) filterEdited(current *level, before int) {
	m.noteFilterCursorChange(current, before)
	m.forceClearInfo()
	m.errMsg = ""
	m.syncViewport(current)
}

func (m *Model) appendToFilter(text string) bool {
	if text == "" {
		return false
	}
	current := m.level
	if current == nil {
		return false
	}
	before := current.FilterCursorPos()
	if !current.InsertFilterText(text) {
		return false
	}
	m.filterEdited(current, before)
	events.Filter.Append(current.ID, current.Filter)
	return true
}

func (m *Model) removeFilterRune() bool {
	current := m.level
	if current == nil {
		return false
	}
	before := current.FilterCursorPos()
	if !current.DeleteFilterRuneBackward() {
		return false
	}
	m.filterEdited(current, before)
	events.Filter.Backspace(current.ID, current.Filter)
	return true
}

func (m *Model) filterPrompt() string {
	current := m.level
	if current == nil {
		return "> "
	}
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	text := current.Filter
	if text == "" {
		placeholder := placeholderFor(current)
		runes := []rune(placeholder)
		var caretRune string
		var rest string
		if len(runes) > 0 {
			caretRune = string(runes[0])
			rest = string(runes[1:])
		}
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(caretRune)
		return prompt + caret + render(styles.FilterPlaceholder, rest)
	}
	runes := []rune(text)
	pos := current.FilterCursorPos()
	before := render(styles.Filter, string(runes[:pos]))
	caretRune, after := " ", ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.filterCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}

// placeholderFor hints at free text on lists that only take typed input.
func placeholderFor(l *level) string {
	if len(l.Full) == 0 {
		return "(type a name)"
	}
	return "(type to search)"
}
