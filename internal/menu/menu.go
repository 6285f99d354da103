// Package menu implements the clip-keeper navigation state machine. It is
// independent of any renderer: a host feeds it Events and acts on the
// returned Result.
package menu

import "errors"

// Labels shown on the top-level menu, in display order.
const (
	CopyLabel   = "Copy password"
	AddLabel    = "Add new password"
	ChangeLabel = "Change password"
	QuitLabel   = "Quit"
)

// Labels offered when choosing how a password is created.
const (
	InputLabel    = "Input"
	GenerateLabel = "Generate"
)

// Back is the sentinel entry that returns to the top-level menu.
const Back = ".."

// ErrIndexOutOfRange is returned when an event refers to an entry that is not
// in the current list.
var ErrIndexOutOfRange = errors.New("entry index out of range")

// TopLevel returns a fresh copy of the top-level entries.
func TopLevel() []string {
	return []string{CopyLabel, AddLabel, ChangeLabel, QuitLabel}
}

// EntryTypes returns a fresh copy of the entry creation choices.
func EntryTypes() []string {
	return []string{InputLabel, GenerateLabel}
}

// Menu identifies the current navigation position. The concrete types are
// Initial, CopyPass, AddPass and ChangePass; all are comparable.
type Menu interface {
	String() string
	isMenu()
}

// Initial is the top-level menu.
type Initial struct{}

// CopyPass lists every entry for copying.
type CopyPass struct{}

// AddStep is the position inside the add flow.
type AddStep int

const (
	ChooseDir AddStep = iota
	ChooseFileName
	ChooseEntryType
)

// AddPass files a new entry.
type AddPass struct {
	Step AddStep
}

// ChangeStep is the position inside the change flow.
type ChangeStep int

const (
	ChooseFile ChangeStep = iota
	ChooseNewPassEntryType
)

// ChangePass replaces an existing entry.
type ChangePass struct {
	Step ChangeStep
}

func (Initial) isMenu()    {}
func (CopyPass) isMenu()   {}
func (AddPass) isMenu()    {}
func (ChangePass) isMenu() {}

func (Initial) String() string  { return "initial" }
func (CopyPass) String() string { return "copy" }

func (m AddPass) String() string {
	switch m.Step {
	case ChooseDir:
		return "add/choose-dir"
	case ChooseFileName:
		return "add/choose-file-name"
	case ChooseEntryType:
		return "add/choose-entry-type"
	}
	return "add/unknown"
}

func (m ChangePass) String() string {
	switch m.Step {
	case ChooseFile:
		return "change/choose-file"
	case ChooseNewPassEntryType:
		return "change/choose-entry-type"
	}
	return "change/unknown"
}

// HasBack reports whether lists installed for m start with the Back sentinel.
func HasBack(m Menu) bool {
	switch m := m.(type) {
	case Initial:
		return false
	case CopyPass:
		return true
	case AddPass:
		return m.Step == ChooseDir
	case ChangePass:
		return m.Step == ChooseFile
	}
	return false
}

// EntryType records how the user wants a password created.
type EntryType int

const (
	UserInput EntryType = iota
)

func (t EntryType) String() string {
	switch t {
	case UserInput:
		return "UserInput"
	}
	return "Unknown"
}
