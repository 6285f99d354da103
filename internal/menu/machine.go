package menu

import "github.com/atomicstack/clip-keeper/internal/logging/events"

// Machine holds one session's State and exposes it to a host.
type Machine struct {
	state State
	env   Env
}

// NewMachine starts a session at the top-level menu.
func NewMachine(env Env) *Machine {
	return &Machine{state: NewState(), env: env}
}

// Len returns the number of entries in the current list.
func (m *Machine) Len() int {
	return len(m.state.Entries)
}

// EntryAt returns the entry at i or an error wrapping ErrIndexOutOfRange.
func (m *Machine) EntryAt(i int) (string, error) {
	return m.state.EntryAt(i)
}

// Entries returns a copy of the current list.
func (m *Machine) Entries() []string {
	return append([]string(nil), m.state.Entries...)
}

// Matches applies the host's matcher to the entry at i. Out of range indices
// never match.
func (m *Machine) Matches(i int, match func(string) bool) bool {
	entry, err := m.state.EntryAt(i)
	if err != nil || match == nil {
		return false
	}
	return match(entry)
}

// Message returns the hint for the current menu.
func (m *Machine) Message() string {
	return Message(m.state.Menu)
}

func (m *Machine) Menu() Menu {
	return m.state.Menu
}

// Input returns the input text as of the last event.
func (m *Machine) Input() string {
	return m.state.Input
}

// State returns a snapshot of the session.
func (m *Machine) State() State {
	s := m.state
	s.Entries = m.Entries()
	return s
}

// React applies ev and keeps the new state. After an error the state is
// left as it was.
func (m *Machine) React(ev Event, input string) (Result, error) {
	from := m.state.Menu
	next, res, err := Step(m.state, ev, input, m.env)
	if err != nil {
		events.Menu.Error(from.String(), err)
		return res, err
	}
	m.state = next
	events.Menu.React(from.String(), ev.Name(), input, res.Directive.String())
	if _, ok := ev.(Autocomplete); ok && res.Directive == Reload {
		events.Menu.Complete(input, m.state.PreviousOutput, res.Input)
	}
	if next.Menu != from {
		events.Menu.Transition(from.String(), next.Menu.String(), len(next.Entries))
	}
	return res, nil
}
