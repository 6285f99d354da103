package ui

import (
	"reflect"
	"strings"
	"time"

	"github.com/atomicstack/clip-keeper/internal/menu"
	"github.com/atomicstack/clip-keeper/internal/theme"
	uistate "github.com/atomicstack/clip-keeper/internal/ui/state"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

const (
	menuHeaderSeparator = "→"
	defaultRootTitle    = "clip-keeper"
)

var styles = theme.Default()

var headerSegmentCleaner = strings.NewReplacer("_", " ", "-", " ")

type msgHandler func(tea.Msg) tea.Cmd

// Outcome is how a session ended. Done is false until the machine exits or
// fails.
type Outcome struct {
	Result menu.Result
	Err    error
	Done   bool
}

// Model implements the Bubble Tea model that renders a menu.Machine.
type Model struct {
	machine           *menu.Machine
	level             *level
	outcome           Outcome
	errMsg            string
	infoMsg           string
	infoExpire        time.Time
	width             int
	height            int
	fixedWidth        bool
	fixedHeight       bool
	showFooter        bool
	keys              keyMap
	filterCursor      cursor.Model
	filterCursorDirty bool
	clipboard         func(string) error

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the UI around machine, showing its current menu.
func NewModel(machine *menu.Machine, width, height int, showFooter bool) *Model {
	m := &Model{
		machine:    machine,
		showFooter: showFooter,
		keys:       defaultKeyMap(),
		clipboard:  clipboard.WriteAll,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.reload(machine.Input())
	m.registerHandlers()
	return m
}

// Outcome reports how the session ended.
func (m *Model) Outcome() Outcome {
	return m.outcome
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(copyResultMsg{}):     m.handleCopyResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
